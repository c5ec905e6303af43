package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitness-bot/internal/models"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

// Navigation events. Each one names an edge of the static graph below.
const (
	evStart           = "start"
	evCancel          = "cancel"
	evKnownContact    = "known_contact"
	evNewContact      = "new_contact"
	evEmailSaved      = "email_saved"
	evAgeSaved        = "age_saved"
	evRegistered      = "registered"
	evOpenGym         = "open_gym"
	evOpenHome        = "open_home"
	evOpenDiet        = "open_diet"
	evOpenData        = "open_data"
	evAddTraining     = "add_training"
	evTrainingSaved   = "training_saved"
	evAddDiet         = "add_diet"
	evDietSaved       = "diet_saved"
	evUpdateData      = "update_data"
	evUpdateSize      = "update_size"
	evDataUpdated     = "data_updated"
	evSizeUpdated     = "size_updated"
	evBack            = "back"
	addingTrainingPfx = string(KindAddingTraining) + "_"
)

var (
	nodeAddingHome = addingTrainingPfx + string(models.TrainingHome)
	nodeAddingGym  = addingTrainingPfx + string(models.TrainingGym)

	allNodes = []string{
		string(KindStart), string(KindAwaitingPhoneNumber), string(KindAwaitingEmail),
		string(KindAwaitingAge), string(KindAwaitingHeightWeight), string(KindMainMenu),
		string(KindHomeTrainingMenu), string(KindGymTrainingMenu), string(KindDietMenu),
		string(KindDataMenu), nodeAddingHome, nodeAddingGym, string(KindAddingDiet),
		string(KindAwaitingDataUpdate), string(KindAwaitingSizeUpdate),
	}
)

// navigation is the whole conversation graph, including every go-back edge.
var navigation = fsm.Events{
	{Name: evStart, Src: allNodes, Dst: string(KindAwaitingPhoneNumber)},
	{Name: evCancel, Src: allNodes, Dst: string(KindStart)},

	{Name: evKnownContact, Src: []string{string(KindAwaitingPhoneNumber)}, Dst: string(KindMainMenu)},
	{Name: evNewContact, Src: []string{string(KindAwaitingPhoneNumber)}, Dst: string(KindAwaitingEmail)},
	{Name: evEmailSaved, Src: []string{string(KindAwaitingEmail)}, Dst: string(KindAwaitingAge)},
	{Name: evAgeSaved, Src: []string{string(KindAwaitingAge)}, Dst: string(KindAwaitingHeightWeight)},
	{Name: evRegistered, Src: []string{string(KindAwaitingHeightWeight)}, Dst: string(KindMainMenu)},

	{Name: evOpenGym, Src: []string{string(KindMainMenu)}, Dst: string(KindGymTrainingMenu)},
	{Name: evOpenHome, Src: []string{string(KindMainMenu)}, Dst: string(KindHomeTrainingMenu)},
	{Name: evOpenDiet, Src: []string{string(KindMainMenu)}, Dst: string(KindDietMenu)},
	{Name: evOpenData, Src: []string{string(KindMainMenu)}, Dst: string(KindDataMenu)},

	{Name: evAddTraining, Src: []string{string(KindHomeTrainingMenu)}, Dst: nodeAddingHome},
	{Name: evAddTraining, Src: []string{string(KindGymTrainingMenu)}, Dst: nodeAddingGym},
	{Name: evTrainingSaved, Src: []string{nodeAddingHome}, Dst: string(KindHomeTrainingMenu)},
	{Name: evTrainingSaved, Src: []string{nodeAddingGym}, Dst: string(KindGymTrainingMenu)},

	{Name: evAddDiet, Src: []string{string(KindDietMenu)}, Dst: string(KindAddingDiet)},
	{Name: evDietSaved, Src: []string{string(KindAddingDiet)}, Dst: string(KindDietMenu)},

	{Name: evUpdateData, Src: []string{string(KindDataMenu)}, Dst: string(KindAwaitingDataUpdate)},
	{Name: evUpdateSize, Src: []string{string(KindDataMenu)}, Dst: string(KindAwaitingSizeUpdate)},
	{Name: evDataUpdated, Src: []string{string(KindAwaitingDataUpdate)}, Dst: string(KindDataMenu)},
	{Name: evSizeUpdated, Src: []string{string(KindAwaitingSizeUpdate)}, Dst: string(KindDataMenu)},

	{Name: evBack, Src: []string{
		string(KindMainMenu), string(KindHomeTrainingMenu), string(KindGymTrainingMenu),
		string(KindDietMenu), string(KindDataMenu),
	}, Dst: string(KindMainMenu)},
	{Name: evBack, Src: []string{nodeAddingHome}, Dst: string(KindHomeTrainingMenu)},
	{Name: evBack, Src: []string{nodeAddingGym}, Dst: string(KindGymTrainingMenu)},
	{Name: evBack, Src: []string{string(KindAddingDiet)}, Dst: string(KindDietMenu)},
	{Name: evBack, Src: []string{string(KindAwaitingDataUpdate), string(KindAwaitingSizeUpdate)}, Dst: string(KindDataMenu)},
}

func node(s State) string {
	if s.Kind == KindAddingTraining {
		return addingTrainingPfx + string(s.Category)
	}
	return string(s.Kind)
}

func fromNode(n string, userID uuid.UUID) State {
	if c, ok := strings.CutPrefix(n, addingTrainingPfx); ok {
		return State{Kind: KindAddingTraining, UserID: userID, Category: models.TrainingCategory(c)}
	}
	return State{Kind: Kind(n), UserID: userID}
}

// navigate follows event from s. Start and Cancel drop the user id; a self
// transition is not an error.
func navigate(ctx context.Context, s State, event string, userID uuid.UUID) (State, error) {
	machine := fsm.NewFSM(node(s), navigation, fsm.Callbacks{})

	if err := machine.Event(ctx, event); err != nil {
		var noTransition fsm.NoTransitionError
		if !errors.As(err, &noTransition) {
			return s, fmt.Errorf("dialog: %s from %s: %w", event, s, err)
		}
	}

	next := fromNode(machine.Current(), userID)
	if !next.HasUser() {
		next.UserID = uuid.Nil
	}
	return next, nil
}

// Parent is the state the go-back label leads to from s.
func Parent(s State) (State, error) {
	return navigate(context.Background(), s, evBack, s.UserID)
}
