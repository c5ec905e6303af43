package session

import (
	"context"
	"fmt"
	"time"

	"fitness-bot/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Sweeper drops sessions idle for longer than the given duration.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

// Janitor runs Sweep on a cron schedule.
type Janitor struct {
	cron *cron.Cron
}

// NewJanitor schedules sweeps; schedule accepts cron specs and descriptors such as "@every 10m".
func NewJanitor(store Sweeper, schedule string, idle time.Duration, log *logger.Logger) (*Janitor, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		if n := store.Sweep(idle); n > 0 {
			log.Infow("evicted idle sessions", "count", n, "idle", idle.String())
		}
	})
	if err != nil {
		return nil, fmt.Errorf("session/janitor: bad schedule %q: %w", schedule, err)
	}

	return &Janitor{cron: c}, nil
}

func (j *Janitor) Start() { j.cron.Start() }

// Stop stops scheduling and waits for a running sweep, or for ctx.
func (j *Janitor) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
}
