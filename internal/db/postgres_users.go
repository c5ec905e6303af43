package db

import (
	"context"
	"fmt"
	"strings"

	"fitness-bot/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

const userColumns = `id, telegram_id, name, phone_number, email, age, height, weight, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(
		&u.ID, &u.TelegramID, &u.Name, &u.PhoneNumber,
		&u.Email, &u.Age, &u.Height, &u.Weight,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (db *PostgresDB) CreateUser(ctx context.Context, user *models.User) error {
	const op = "db/postgres/CreateUser"

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	query := `
        INSERT INTO users (id, telegram_id, name, phone_number, email, age, height, weight)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at, updated_at
    `

	err := db.pool.QueryRow(ctx, query,
		user.ID, user.TelegramID, user.Name, user.PhoneNumber,
		user.Email, user.Age, user.Height, user.Weight,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return mapErr(op, err)
	}

	return nil
}

func (db *PostgresDB) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "db/postgres/UserByID"

	user, err := scanUser(db.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, mapErr(op, err)
	}
	return user, nil
}

func (db *PostgresDB) UserByPhone(ctx context.Context, phone string) (*models.User, error) {
	const op = "db/postgres/UserByPhone"

	user, err := scanUser(db.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE phone_number = $1`, phone))
	if err != nil {
		return nil, mapErr(op, err)
	}
	return user, nil
}

func (db *PostgresDB) UserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	const op = "db/postgres/UserByTelegramID"

	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1 ORDER BY created_at LIMIT 1`

	user, err := scanUser(db.pool.QueryRow(ctx, query, telegramID))
	if err != nil {
		return nil, mapErr(op, err)
	}
	return user, nil
}

func (db *PostgresDB) UserExists(ctx context.Context, telegramID int64) (bool, error) {
	const op = "db/postgres/UserExists"

	var exists bool
	err := db.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE telegram_id = $1)`, telegramID).Scan(&exists)
	if err != nil {
		return false, mapErr(op, err)
	}
	return exists, nil
}

func (db *PostgresDB) UpdateUser(ctx context.Context, id uuid.UUID, update ProfileUpdate) error {
	const op = "db/postgres/UpdateUser"

	if update.empty() {
		return nil
	}

	sets := []string{"updated_at = NOW()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if update.Email != nil {
		add("email", *update.Email)
	}
	if update.Age != nil {
		add("age", *update.Age)
	}
	if update.Height != nil {
		add("height", *update.Height)
	}
	if update.Weight != nil {
		add("weight", *update.Weight)
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $1 RETURNING id`, strings.Join(sets, ", "))

	var updated uuid.UUID
	if err := db.pool.QueryRow(ctx, query, args...).Scan(&updated); err != nil {
		return mapErr(op, err)
	}
	return nil
}
