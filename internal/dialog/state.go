// Package dialog is the conversation engine: it maps (state, event) to replies and
// the next state, calling the persistence and generation gateways on the way.
package dialog

import (
	"fmt"

	"fitness-bot/internal/models"

	"github.com/google/uuid"
)

type Kind string

const (
	KindStart                Kind = "start"
	KindAwaitingPhoneNumber  Kind = "awaiting_phone_number"
	KindAwaitingEmail        Kind = "awaiting_email"
	KindAwaitingAge          Kind = "awaiting_age"
	KindAwaitingHeightWeight Kind = "awaiting_height_weight"
	KindMainMenu             Kind = "main_menu"
	KindHomeTrainingMenu     Kind = "home_training_menu"
	KindGymTrainingMenu      Kind = "gym_training_menu"
	KindDietMenu             Kind = "diet_menu"
	KindDataMenu             Kind = "data_menu"
	KindAddingTraining       Kind = "adding_training"
	KindAddingDiet           Kind = "adding_diet"
	KindAwaitingDataUpdate   Kind = "awaiting_data_update"
	KindAwaitingSizeUpdate   Kind = "awaiting_size_update"
)

// State is where a chat is in the conversation. Every kind past
// AwaitingPhoneNumber carries the profile id; AddingTraining also carries the category.
type State struct {
	Kind     Kind                    `json:"kind"`
	UserID   uuid.UUID               `json:"user_id,omitempty"`
	Category models.TrainingCategory `json:"category,omitempty"`
}

// Default is the state of a chat the bot has never seen.
func Default() State {
	return State{Kind: KindStart}
}

func (s State) String() string {
	if s.Kind == KindAddingTraining {
		return fmt.Sprintf("%s(%s)", s.Kind, s.Category)
	}
	return string(s.Kind)
}

// HasUser reports whether the kind is expected to carry a profile id.
func (s State) HasUser() bool {
	switch s.Kind {
	case KindStart, KindAwaitingPhoneNumber:
		return false
	default:
		return true
	}
}

// trainingCategory returns the category a training menu or AddingTraining refers to.
func (s State) trainingCategory() models.TrainingCategory {
	switch s.Kind {
	case KindHomeTrainingMenu:
		return models.TrainingHome
	case KindGymTrainingMenu:
		return models.TrainingGym
	default:
		return s.Category
	}
}

func trainingMenuKind(c models.TrainingCategory) Kind {
	if c == models.TrainingHome {
		return KindHomeTrainingMenu
	}
	return KindGymTrainingMenu
}
