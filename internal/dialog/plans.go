package dialog

import (
	"context"
	"errors"

	"fitness-bot/internal/db"
	"fitness-bot/internal/gpt"
	"fitness-bot/internal/models"
)

func (e *Engine) handleMainMenu(ctx context.Context, s State, ev Event) (Result, error) {
	if ev.Kind != EventText {
		return notUnderstood(s), nil
	}

	var event string
	switch parseMainMenu(ev.Text) {
	case ActionOpenGym:
		event = evOpenGym
	case ActionOpenHome:
		event = evOpenHome
	case ActionOpenDiet:
		event = evOpenDiet
	case ActionOpenData:
		event = evOpenData
	case ActionBack:
		return back(ctx, s)
	default:
		return notUnderstood(s), nil
	}

	next, err := navigate(ctx, s, event, s.UserID)
	if err != nil {
		return Result{}, err
	}
	return Result{Next: next, Replies: []Reply{menuReply(next.Kind)}}, nil
}

func (e *Engine) handleTrainingMenu(ctx context.Context, s State, ev Event) (Result, error) {
	if ev.Kind != EventText {
		return notUnderstood(s), nil
	}

	category := s.trainingCategory()

	switch parseTrainingMenu(ev.Text) {
	case ActionAdd:
		return move(ctx, s, evAddTraining, withKeyboard(msgContraindicate+"тренування)", []string{LabelBack}))

	case ActionShow:
		var training *models.Training
		err := e.call(ev, "db", "Training", func() (err error) {
			training, err = e.store.Training(ctx, s.UserID, category)
			return err
		})
		if errors.Is(err, db.ErrNotFound) {
			return stay(s, withKeyboard(msgTrainingMissing, trainingMenuLabels)), nil
		}
		if err != nil {
			return Result{}, err
		}
		return stay(s, withKeyboard(msgTrainingShow+training.Content, trainingMenuLabels)), nil

	case ActionDelete:
		err := e.call(ev, "db", "DeleteTraining", func() error {
			return e.store.DeleteTraining(ctx, s.UserID, category)
		})
		if errors.Is(err, db.ErrNotFound) {
			return stay(s, withKeyboard(msgTrainingNotThere, trainingMenuLabels)), nil
		}
		if err != nil {
			return Result{}, err
		}
		return stay(s, withKeyboard(msgTrainingDeleted, trainingMenuLabels)), nil

	case ActionBack:
		return back(ctx, s)

	default:
		return notUnderstood(s), nil
	}
}

func trainingPrompts(c models.TrainingCategory) (withArgs, withoutArgs string) {
	if c == models.TrainingHome {
		return gpt.HomeTrainingWithArgs, gpt.HomeTrainingWithoutArgs
	}
	return gpt.GymTrainingWithArgs, gpt.GymTrainingWithoutArgs
}

func (e *Engine) handleAddingTraining(ctx context.Context, s State, ev Event) (Result, error) {
	if ev.Kind != EventText {
		return stay(s, text(msgNotUnderstood)), nil
	}
	if ev.Text == LabelBack {
		return back(ctx, s)
	}

	user, err := e.user(ctx, s, ev)
	if err != nil {
		return Result{}, err
	}

	withArgs, withoutArgs := trainingPrompts(s.Category)
	content, err := e.generate(ctx, ev, gpt.FormatPrompt(&ev.Text, withArgs, withoutArgs, user))
	if err != nil {
		return Result{}, err
	}

	err = e.call(ev, "db", "SaveTraining", func() error {
		_, err := e.store.SaveTraining(ctx, s.UserID, s.Category, content)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	return move(ctx, s, evTrainingSaved, withKeyboard(msgTrainingAdded+content, trainingMenuLabels))
}

func (e *Engine) handleDietMenu(ctx context.Context, s State, ev Event) (Result, error) {
	if ev.Kind != EventText {
		return notUnderstood(s), nil
	}

	switch parseDietMenu(ev.Text) {
	case ActionAdd:
		return move(ctx, s, evAddDiet, withKeyboard(msgContraindicate+"дієту)", []string{LabelBack}))

	case ActionShow:
		var diet *models.Diet
		err := e.call(ev, "db", "Diet", func() (err error) {
			diet, err = e.store.Diet(ctx, s.UserID)
			return err
		})
		if errors.Is(err, db.ErrNotFound) {
			return stay(s, withKeyboard(msgDietMissing, dietMenuLabels)), nil
		}
		if err != nil {
			return Result{}, err
		}
		return stay(s, withKeyboard(msgDietShow+diet.Content, dietMenuLabels)), nil

	case ActionDelete:
		err := e.call(ev, "db", "DeleteDiet", func() error {
			return e.store.DeleteDiet(ctx, s.UserID)
		})
		if errors.Is(err, db.ErrNotFound) {
			return stay(s, withKeyboard(msgDietNotThere, dietMenuLabels)), nil
		}
		if err != nil {
			return Result{}, err
		}
		return stay(s, withKeyboard(msgDietDeleted, dietMenuLabels)), nil

	case ActionBack:
		return back(ctx, s)

	default:
		return notUnderstood(s), nil
	}
}

func (e *Engine) handleAddingDiet(ctx context.Context, s State, ev Event) (Result, error) {
	if ev.Kind != EventText {
		return stay(s, text(msgNotUnderstood)), nil
	}
	if ev.Text == LabelBack {
		return back(ctx, s)
	}

	user, err := e.user(ctx, s, ev)
	if err != nil {
		return Result{}, err
	}

	content, err := e.generate(ctx, ev, gpt.FormatPrompt(&ev.Text, gpt.DietWithArgs, gpt.DietWithoutArgs, user))
	if err != nil {
		return Result{}, err
	}

	err = e.call(ev, "db", "SaveDiet", func() error {
		_, err := e.store.SaveDiet(ctx, s.UserID, content)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	return move(ctx, s, evDietSaved, withKeyboard(msgDietAdded+content, dietMenuLabels))
}
