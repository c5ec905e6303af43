package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitness-bot/internal/bot"
	"fitness-bot/internal/chart"
	"fitness-bot/internal/config"
	"fitness-bot/internal/db"
	"fitness-bot/internal/dialog"
	"fitness-bot/internal/gpt"
	"fitness-bot/internal/metrics"
	"fitness-bot/internal/server"
	"fitness-bot/internal/session"
	"fitness-bot/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatalw("Failed to load config", "error", err)
	}

	l := logger.Select(cfg.Log.Level, cfg.Telegram.Debug)
	defer func() { _ = l.Sync() }()
	l.Info("Starting Fitness Bot...")

	if err := cfg.Validate(); err != nil {
		l.Fatalw("Invalid configuration", "error", err)
	}

	ctx := context.Background()

	// Postgres may still be starting next to us.
	var storage db.Storage
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		storage, err = db.New(ctx, cfg.Storage.Backend, cfg.DB)
		if err == nil {
			break
		}
		l.Errorw("Failed to open storage, retrying...", "backend", cfg.Storage.Backend, "attempt", i+1, "error", err)
		time.Sleep(time.Duration(i+1) * time.Second)
	}
	if storage == nil {
		l.Fatalw("Failed to open storage after multiple attempts", "error", err)
	}
	defer storage.Close()

	sessions, janitor, closeSessions, err := newSessionStore(ctx, cfg.Session, l)
	if err != nil {
		l.Fatalw("Failed to create session store", "backend", cfg.Session.Backend, "error", err)
	}
	defer closeSessions()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	engine := dialog.NewEngine(
		storage,
		gpt.NewClient(cfg.OpenAI),
		chart.NewRenderer(cfg.Chart.Dir),
		l,
		metrics.New(registry),
	)

	telegramBot, err := bot.NewTelegramBot(cfg.Telegram.Token, cfg.Telegram.Debug, engine, sessions, l)
	if err != nil {
		l.Fatalw("Failed to create Telegram bot", "error", err)
	}

	if err := telegramBot.Start(ctx); err != nil {
		l.Fatalw("Failed to start Telegram bot", "error", err)
	}
	l.Info("Telegram bot started successfully")

	if janitor != nil {
		janitor.Start()
	}

	httpServer := server.NewServer(cfg.Server.Port, registry, l)
	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatalw("Failed to start HTTP server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("Shutting down bot...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		l.Errorw("Error during HTTP server shutdown", "error", err)
	}

	if err := telegramBot.Stop(shutdownCtx); err != nil {
		l.Errorw("Error during bot shutdown", "error", err)
	}

	if janitor != nil {
		janitor.Stop(shutdownCtx)
	}

	l.Info("Bot stopped successfully")
}

// newSessionStore picks the conversation state backend. The janitor is nil
// for redis, which expires keys on its own.
func newSessionStore(ctx context.Context, cfg config.Session, l *logger.Logger) (session.Store, *session.Janitor, func(), error) {
	switch cfg.Backend {
	case config.BackendRedis:
		store, err := session.NewRedisStore(ctx, cfg.RedisURL, cfg.IdleTimeout)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, nil, func() {
			if err := store.Close(); err != nil {
				l.Warnw("Failed to close redis session store", "error", err)
			}
		}, nil

	default:
		store := session.NewMemoryStore()
		janitor, err := session.NewJanitor(store, cfg.SweepSchedule, cfg.IdleTimeout, l)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, janitor, func() {}, nil
	}
}
