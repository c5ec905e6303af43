package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the durable profile created when a contact is shared.
type User struct {
	ID          uuid.UUID `json:"id"`
	TelegramID  int64     `json:"telegram_id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Email       *string   `json:"email,omitempty"`
	Age         *int      `json:"age,omitempty"`
	Height      *int      `json:"height,omitempty"`
	Weight      *int      `json:"weight,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Measurement is one body-size snapshot, in centimetres. Rows are append-only.
type Measurement struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Chest     int       `json:"chest"`
	Waist     int       `json:"waist"`
	Hips      int       `json:"hips"`
	ArmBiceps int       `json:"arm_biceps"`
	LegBiceps int       `json:"leg_biceps"`
	Calf      int       `json:"calf"`
	CreatedAt time.Time `json:"created_at"`
}

// Values returns the six figures in display order: chest, waist, hips, arm, leg, calf.
func (m Measurement) Values() [6]int {
	return [6]int{m.Chest, m.Waist, m.Hips, m.ArmBiceps, m.LegBiceps, m.Calf}
}
