package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitness-bot/internal/db"
	"fitness-bot/internal/models"
)

func (e *Engine) handleDataMenu(ctx context.Context, s State, ev Event) (Result, error) {
	if ev.Kind != EventText {
		return notUnderstood(s), nil
	}

	switch parseDataMenu(ev.Text) {
	case ActionUpdateData:
		return move(ctx, s, evUpdateData, withKeyboard(msgAskDataUpdate, []string{LabelBack}))
	case ActionUpdateSize:
		return move(ctx, s, evUpdateSize, withKeyboard(msgAskSizeUpdate, []string{LabelBack}))
	case ActionShowData:
		return e.showData(ctx, s, ev)
	case ActionShowStatistics:
		return e.showStatistics(ctx, s, ev)
	case ActionBack:
		return back(ctx, s)
	default:
		return notUnderstood(s), nil
	}
}

func (e *Engine) showData(ctx context.Context, s State, ev Event) (Result, error) {
	user, err := e.user(ctx, s, ev)
	if err != nil {
		return Result{}, err
	}

	var latest *models.Measurement
	err = e.call(ev, "db", "LatestMeasurement", func() (err error) {
		latest, err = e.store.LatestMeasurement(ctx, s.UserID)
		return err
	})
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return Result{}, err
	}

	if latest == nil {
		return stay(s,
			text(formatProfile(user)),
			withKeyboard(msgNoSizes, dataMenuLabels),
		), nil
	}
	return stay(s, withKeyboard(formatProfile(user)+"\n"+formatSizes(latest), dataMenuLabels)), nil
}

func (e *Engine) showStatistics(ctx context.Context, s State, ev Event) (Result, error) {
	var history []models.Measurement
	err := e.call(ev, "db", "Measurements", func() (err error) {
		history, err = e.store.Measurements(ctx, s.UserID)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	if len(history) == 0 {
		return stay(s, withKeyboard(msgNoHistory, dataMenuLabels)), nil
	}

	var path string
	err = e.call(ev, "chart", "Render", func() (err error) {
		path, err = e.charts.Render(history)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	return stay(s, Reply{Text: msgStatsCaption, Keyboard: dataMenuLabels, ImagePath: path}), nil
}

func (e *Engine) handleDataUpdate(ctx context.Context, s State, ev Event) (Result, error) {
	if ev.Kind != EventText {
		return stay(s, text(msgNotUnderstood)), nil
	}
	if ev.Text == LabelBack {
		return back(ctx, s)
	}

	u, err := ParseDataUpdate(ev.Text)
	if err != nil {
		return Result{}, err
	}

	err = e.call(ev, "db", "UpdateUser", func() error {
		return e.store.UpdateUser(ctx, s.UserID, db.ProfileUpdate{Age: &u.Age, Height: &u.Height, Weight: &u.Weight})
	})
	if err != nil {
		return Result{}, err
	}
	return move(ctx, s, evDataUpdated, withKeyboard(msgDataUpdated, dataMenuLabels))
}

func (e *Engine) handleSizeUpdate(ctx context.Context, s State, ev Event) (Result, error) {
	if ev.Kind != EventText {
		return stay(s, text(msgNotUnderstood)), nil
	}
	if ev.Text == LabelBack {
		return back(ctx, s)
	}

	sizes, err := ParseSizeUpdate(ev.Text)
	if err != nil {
		return Result{}, err
	}

	m := &models.Measurement{
		UserID:    s.UserID,
		Chest:     sizes[0],
		Waist:     sizes[1],
		Hips:      sizes[2],
		ArmBiceps: sizes[3],
		LegBiceps: sizes[4],
		Calf:      sizes[5],
	}
	err = e.call(ev, "db", "AddMeasurement", func() error {
		return e.store.AddMeasurement(ctx, m)
	})
	if err != nil {
		return Result{}, err
	}
	return move(ctx, s, evSizeUpdated, withKeyboard(msgSizeUpdated, dataMenuLabels))
}

func formatProfile(u *models.User) string {
	var b strings.Builder
	b.WriteString("Ваші дані: \n\n")
	fmt.Fprintf(&b, "Вік: %s \n", orDash(u.Age))
	fmt.Fprintf(&b, "Зріст: %s \n", orDash(u.Height))
	fmt.Fprintf(&b, "Вага: %s ", orDash(u.Weight))
	return b.String()
}

func formatSizes(m *models.Measurement) string {
	return fmt.Sprintf(
		"Розмір грудей: %d \nРозмір талії: %d \nРозмір бедер: %d \n"+
			"Розмір біцепсу руки: %d \nРозмір біцепсу ноги: %d \nРозмір ікри: %d",
		m.Chest, m.Waist, m.Hips, m.ArmBiceps, m.LegBiceps, m.Calf,
	)
}

func orDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}
