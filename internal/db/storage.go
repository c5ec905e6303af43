// Package db is the persistence gateway: typed CRUD over users, body measurements,
// saved trainings and saved diets. It holds no business rules.
package db

import (
	"context"
	"errors"

	"fitness-bot/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned on a unique constraint conflict (phone number).
	ErrAlreadyExists = errors.New("already exists")
)

// ProfileUpdate is a partial profile update: only non-nil fields are written.
type ProfileUpdate struct {
	Email  *string
	Age    *int
	Height *int
	Weight *int
}

func (u ProfileUpdate) empty() bool {
	return u.Email == nil && u.Age == nil && u.Height == nil && u.Weight == nil
}

// Users is the profile part of the gateway.
type Users interface {
	// CreateUser inserts a profile. A zero ID is replaced with a fresh one.
	CreateUser(ctx context.Context, user *models.User) error
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UserByPhone(ctx context.Context, phone string) (*models.User, error)
	UserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	UserExists(ctx context.Context, telegramID int64) (bool, error)
	// UpdateUser writes every non-nil field of update in one statement.
	UpdateUser(ctx context.Context, id uuid.UUID, update ProfileUpdate) error
}

// Measurements is the append-only body-size history.
type Measurements interface {
	AddMeasurement(ctx context.Context, m *models.Measurement) error
	LatestMeasurement(ctx context.Context, userID uuid.UUID) (*models.Measurement, error)
	// Measurements returns the whole history, oldest first.
	Measurements(ctx context.Context, userID uuid.UUID) ([]models.Measurement, error)
}

// Plans keeps at most one training per (user, category) and one diet per user.
type Plans interface {
	SaveTraining(ctx context.Context, userID uuid.UUID, category models.TrainingCategory, content string) (*models.Training, error)
	Training(ctx context.Context, userID uuid.UUID, category models.TrainingCategory) (*models.Training, error)
	// DeleteTraining returns ErrNotFound when there was nothing to delete.
	DeleteTraining(ctx context.Context, userID uuid.UUID, category models.TrainingCategory) error
	SaveDiet(ctx context.Context, userID uuid.UUID, content string) (*models.Diet, error)
	Diet(ctx context.Context, userID uuid.UUID) (*models.Diet, error)
	DeleteDiet(ctx context.Context, userID uuid.UUID) error
}

//go:generate mockgen -destination=../../mocks/storage.go -package=mocks fitness-bot/internal/db Storage

// Storage is the full gateway consumed by the conversation engine.
type Storage interface {
	Users
	Measurements
	Plans
	Close()
}
