package db

import (
	"context"
	"fmt"

	"fitness-bot/internal/models"

	"github.com/google/uuid"
)

// SaveTraining replaces the stored plan for (user, category); the row id and
// created_at survive the replacement.
func (db *PostgresDB) SaveTraining(ctx context.Context, userID uuid.UUID, category models.TrainingCategory, content string) (*models.Training, error) {
	const op = "db/postgres/SaveTraining"

	if !category.Valid() {
		return nil, fmt.Errorf("%s: unknown training category %q", op, category)
	}

	query := `
        INSERT INTO trainings (id, user_id, category, content)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, category) DO UPDATE
        SET content = EXCLUDED.content, updated_at = NOW()
        RETURNING id, user_id, category, content, created_at, updated_at
    `

	var t models.Training
	err := db.pool.QueryRow(ctx, query, uuid.New(), userID, string(category), content).Scan(
		&t.ID, &t.UserID, &t.Category, &t.Content, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(op, err)
	}
	return &t, nil
}

func (db *PostgresDB) Training(ctx context.Context, userID uuid.UUID, category models.TrainingCategory) (*models.Training, error) {
	const op = "db/postgres/Training"

	query := `
        SELECT id, user_id, category, content, created_at, updated_at
        FROM trainings
        WHERE user_id = $1 AND category = $2
    `

	var t models.Training
	err := db.pool.QueryRow(ctx, query, userID, string(category)).Scan(
		&t.ID, &t.UserID, &t.Category, &t.Content, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(op, err)
	}
	return &t, nil
}

func (db *PostgresDB) DeleteTraining(ctx context.Context, userID uuid.UUID, category models.TrainingCategory) error {
	const op = "db/postgres/DeleteTraining"

	tag, err := db.pool.Exec(ctx, `DELETE FROM trainings WHERE user_id = $1 AND category = $2`, userID, string(category))
	if err != nil {
		return mapErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func (db *PostgresDB) SaveDiet(ctx context.Context, userID uuid.UUID, content string) (*models.Diet, error) {
	const op = "db/postgres/SaveDiet"

	query := `
        INSERT INTO diets (id, user_id, content)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id) DO UPDATE
        SET content = EXCLUDED.content, updated_at = NOW()
        RETURNING id, user_id, content, created_at, updated_at
    `

	var d models.Diet
	err := db.pool.QueryRow(ctx, query, uuid.New(), userID, content).Scan(
		&d.ID, &d.UserID, &d.Content, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(op, err)
	}
	return &d, nil
}

func (db *PostgresDB) Diet(ctx context.Context, userID uuid.UUID) (*models.Diet, error) {
	const op = "db/postgres/Diet"

	var d models.Diet
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, content, created_at, updated_at FROM diets WHERE user_id = $1`, userID,
	).Scan(&d.ID, &d.UserID, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, mapErr(op, err)
	}
	return &d, nil
}

func (db *PostgresDB) DeleteDiet(ctx context.Context, userID uuid.UUID) error {
	const op = "db/postgres/DeleteDiet"

	tag, err := db.pool.Exec(ctx, `DELETE FROM diets WHERE user_id = $1`, userID)
	if err != nil {
		return mapErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
