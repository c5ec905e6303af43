package db

import (
	"context"
	"fmt"

	"fitness-bot/internal/config"
)

// New opens the backend selected by backend and, for postgres, applies the schema.
func New(ctx context.Context, backend string, cfg config.DB) (Storage, error) {
	switch backend {
	case config.BackendMemory:
		return NewMemoryDB(), nil
	case config.BackendPostgres:
		pg, err := NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}
}
