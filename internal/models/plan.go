package models

import (
	"time"

	"github.com/google/uuid"
)

type TrainingCategory string

const (
	TrainingHome TrainingCategory = "home"
	TrainingGym  TrainingCategory = "gym"
)

func (c TrainingCategory) Valid() bool {
	return c == TrainingHome || c == TrainingGym
}

// Training is the latest generated plan for a (user, category) pair.
type Training struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Category  TrainingCategory `json:"category"`
	Content   string           `json:"content"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
}

// Diet is the latest generated diet for a user.
type Diet struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
