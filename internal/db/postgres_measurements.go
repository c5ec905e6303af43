package db

import (
	"context"

	"fitness-bot/internal/models"

	"github.com/google/uuid"
)

const measurementColumns = `id, user_id, chest, waist, hips, arm_biceps, leg_biceps, calf, created_at`

func (db *PostgresDB) AddMeasurement(ctx context.Context, m *models.Measurement) error {
	const op = "db/postgres/AddMeasurement"

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	query := `
        INSERT INTO measurements (id, user_id, chest, waist, hips, arm_biceps, leg_biceps, calf)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at
    `

	err := db.pool.QueryRow(ctx, query,
		m.ID, m.UserID, m.Chest, m.Waist, m.Hips, m.ArmBiceps, m.LegBiceps, m.Calf,
	).Scan(&m.CreatedAt)
	if err != nil {
		return mapErr(op, err)
	}
	return nil
}

func (db *PostgresDB) LatestMeasurement(ctx context.Context, userID uuid.UUID) (*models.Measurement, error) {
	const op = "db/postgres/LatestMeasurement"

	query := `SELECT ` + measurementColumns + ` FROM measurements
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT 1`

	var m models.Measurement
	err := db.pool.QueryRow(ctx, query, userID).Scan(
		&m.ID, &m.UserID, &m.Chest, &m.Waist, &m.Hips,
		&m.ArmBiceps, &m.LegBiceps, &m.Calf, &m.CreatedAt,
	)
	if err != nil {
		return nil, mapErr(op, err)
	}
	return &m, nil
}

func (db *PostgresDB) Measurements(ctx context.Context, userID uuid.UUID) ([]models.Measurement, error) {
	const op = "db/postgres/Measurements"

	query := `SELECT ` + measurementColumns + ` FROM measurements
        WHERE user_id = $1
        ORDER BY created_at ASC`

	rows, err := db.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapErr(op, err)
	}
	defer rows.Close()

	var history []models.Measurement
	for rows.Next() {
		var m models.Measurement
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Chest, &m.Waist, &m.Hips,
			&m.ArmBiceps, &m.LegBiceps, &m.Calf, &m.CreatedAt,
		); err != nil {
			return nil, mapErr(op, err)
		}
		history = append(history, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(op, err)
	}
	return history, nil
}
