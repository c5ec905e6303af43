package session

import (
	"context"
	"testing"
	"time"

	"fitness-bot/internal/dialog"
	"fitness-bot/internal/models"
	"fitness-bot/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_DefaultAndRoundTrip(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	s, err := st.Load(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, dialog.Default(), s)

	want := dialog.State{Kind: dialog.KindAddingTraining, UserID: uuid.New(), Category: models.TrainingGym}
	require.NoError(t, st.Save(ctx, 1, want))

	got, err := st.Load(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, st.Delete(ctx, 1))
	got, err = st.Load(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, dialog.Default(), got)
}

func TestMemoryStore_Sweep(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	require.NoError(t, st.Save(ctx, 1, dialog.State{Kind: dialog.KindMainMenu}))
	require.NoError(t, st.Save(ctx, 2, dialog.State{Kind: dialog.KindDietMenu}))

	now = now.Add(30 * time.Minute)
	_, err := st.Load(ctx, 2)
	require.NoError(t, err)

	now = now.Add(40 * time.Minute)
	require.Equal(t, 1, st.Sweep(time.Hour))
	require.Equal(t, 1, st.Len())

	s, err := st.Load(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, dialog.Default(), s)
}

func TestJanitor_BadSchedule(t *testing.T) {
	_, err := NewJanitor(NewMemoryStore(), "every now and then", time.Hour, logger.NewNop())
	require.Error(t, err)
}

type countingSweeper struct{ calls chan time.Duration }

func (c countingSweeper) Sweep(idle time.Duration) int {
	c.calls <- idle
	return 1
}

func TestJanitor_RunsSweep(t *testing.T) {
	sw := countingSweeper{calls: make(chan time.Duration, 4)}
	j, err := NewJanitor(sw, "@every 1s", 5*time.Minute, logger.NewNop())
	require.NoError(t, err)

	j.Start()
	defer j.Stop(context.Background())

	select {
	case idle := <-sw.calls:
		require.Equal(t, 5*time.Minute, idle)
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run")
	}
}
