package dialog

import (
	"context"
	"errors"
	"strings"

	"fitness-bot/internal/db"
	"fitness-bot/internal/models"
)

func (e *Engine) handleContact(ctx context.Context, s State, ev Event) (Result, error) {
	// A contact without a platform id is not the sender's own number.
	if ev.Kind != EventContact || ev.Contact.PlatformID == 0 {
		return stay(s, Reply{
			Text:           msgSendContact,
			Keyboard:       []string{LabelSendContact},
			RequestContact: true,
		}), nil
	}

	contact := ev.Contact
	phone := strings.TrimSpace(contact.PhoneNumber)

	existing, err := e.findRegistered(ctx, ev, contact.PlatformID, phone)
	if err != nil {
		return Result{}, err
	}
	if existing != nil {
		s.UserID = existing.ID
		return move(ctx, s, evKnownContact, withKeyboard(msgAlreadyWithUs, mainMenuLabels))
	}

	user := &models.User{
		TelegramID:  contact.PlatformID,
		Name:        contact.DisplayName,
		PhoneNumber: phone,
	}
	err = e.call(ev, "db", "CreateUser", func() error {
		return e.store.CreateUser(ctx, user)
	})
	if errors.Is(err, db.ErrAlreadyExists) {
		// Registered concurrently from another chat with the same number.
		existing, err = e.findRegistered(ctx, ev, 0, phone)
		if err != nil {
			return Result{}, err
		}
		if existing != nil {
			s.UserID = existing.ID
			return move(ctx, s, evKnownContact, withKeyboard(msgAlreadyWithUs, mainMenuLabels))
		}
		return Result{}, db.ErrAlreadyExists
	}
	if err != nil {
		return Result{}, err
	}

	s.UserID = user.ID
	return move(ctx, s, evNewContact, Reply{Text: msgNewUser, RemoveKeyboard: true})
}

// findRegistered looks the profile up by platform id first and by phone second.
// A nil user with a nil error means the contact is new.
func (e *Engine) findRegistered(ctx context.Context, ev Event, platformID int64, phone string) (*models.User, error) {
	var user *models.User

	if platformID != 0 {
		err := e.call(ev, "db", "UserByTelegramID", func() (err error) {
			user, err = e.store.UserByTelegramID(ctx, platformID)
			return err
		})
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, db.ErrNotFound) {
			return nil, err
		}
	}

	err := e.call(ev, "db", "UserByPhone", func() (err error) {
		user, err = e.store.UserByPhone(ctx, phone)
		return err
	})
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, db.ErrNotFound):
		return nil, nil
	default:
		return nil, err
	}
}

func (e *Engine) handleEmail(ctx context.Context, s State, ev Event) (Result, error) {
	if ev.Kind != EventText {
		return stay(s, text(msgNotUnderstood)), nil
	}

	email := strings.TrimSpace(ev.Text)
	if err := ValidateEmail(email); err != nil {
		return Result{}, err
	}

	err := e.call(ev, "db", "UpdateUser", func() error {
		return e.store.UpdateUser(ctx, s.UserID, db.ProfileUpdate{Email: &email})
	})
	if err != nil {
		return Result{}, err
	}
	return move(ctx, s, evEmailSaved, text(msgEmailSaved))
}

func (e *Engine) handleAge(ctx context.Context, s State, ev Event) (Result, error) {
	if ev.Kind != EventText {
		return stay(s, text(msgNotUnderstood)), nil
	}

	age, err := ParseAge(ev.Text)
	if err != nil {
		return Result{}, err
	}

	err = e.call(ev, "db", "UpdateUser", func() error {
		return e.store.UpdateUser(ctx, s.UserID, db.ProfileUpdate{Age: &age})
	})
	if err != nil {
		return Result{}, err
	}
	return move(ctx, s, evAgeSaved, text(msgAgeSaved))
}

func (e *Engine) handleHeightWeight(ctx context.Context, s State, ev Event) (Result, error) {
	if ev.Kind != EventText {
		return stay(s, text(msgNotUnderstood)), nil
	}

	height, weight, err := ParseHeightWeight(ev.Text)
	if err != nil {
		return Result{}, err
	}

	err = e.call(ev, "db", "UpdateUser", func() error {
		return e.store.UpdateUser(ctx, s.UserID, db.ProfileUpdate{Height: &height, Weight: &weight})
	})
	if err != nil {
		return Result{}, err
	}
	return move(ctx, s, evRegistered, withKeyboard(msgRegistered, mainMenuLabels))
}
