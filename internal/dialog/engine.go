package dialog

import (
	"context"
	"errors"
	"time"

	"fitness-bot/internal/db"
	"fitness-bot/internal/gpt"
	"fitness-bot/internal/metrics"
	"fitness-bot/internal/models"
	"fitness-bot/pkg/logger"
)

// Renderer draws a measurement history into an image file and returns its path.
type Renderer interface {
	Render(history []models.Measurement) (string, error)
}

type Engine struct {
	store   db.Storage
	gen     gpt.Generator
	charts  Renderer
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewEngine(store db.Storage, gen gpt.Generator, charts Renderer, log *logger.Logger, m *metrics.Metrics) *Engine {
	return &Engine{
		store:   store,
		gen:     gen,
		charts:  charts,
		log:     log,
		metrics: m,
	}
}

// Handle processes one event. It never fails: gateway and validation errors
// become replies and leave the state as it was.
func (e *Engine) Handle(ctx context.Context, s State, ev Event) Result {
	res, err := e.dispatch(ctx, s, ev)
	if err != nil {
		res = e.failure(s, ev, err)
	}

	if res.Next != s {
		e.log.Infow("state transition",
			"chat_id", ev.ChatID,
			"from", s.String(),
			"to", res.Next.String(),
			"event", ev.Kind.String(),
		)
		e.metrics.Transition(node(s), node(res.Next))
	}
	return res
}

func (e *Engine) dispatch(ctx context.Context, s State, ev Event) (Result, error) {
	if ev.Kind == EventCommand {
		return e.handleCommand(ctx, s, ev)
	}

	switch s.Kind {
	case KindStart:
		return stay(s, text(msgUseHelp)), nil
	case KindAwaitingPhoneNumber:
		return e.handleContact(ctx, s, ev)
	case KindAwaitingEmail:
		return e.handleEmail(ctx, s, ev)
	case KindAwaitingAge:
		return e.handleAge(ctx, s, ev)
	case KindAwaitingHeightWeight:
		return e.handleHeightWeight(ctx, s, ev)
	case KindMainMenu:
		return e.handleMainMenu(ctx, s, ev)
	case KindHomeTrainingMenu, KindGymTrainingMenu:
		return e.handleTrainingMenu(ctx, s, ev)
	case KindAddingTraining:
		return e.handleAddingTraining(ctx, s, ev)
	case KindDietMenu:
		return e.handleDietMenu(ctx, s, ev)
	case KindAddingDiet:
		return e.handleAddingDiet(ctx, s, ev)
	case KindDataMenu:
		return e.handleDataMenu(ctx, s, ev)
	case KindAwaitingDataUpdate:
		return e.handleDataUpdate(ctx, s, ev)
	case KindAwaitingSizeUpdate:
		return e.handleSizeUpdate(ctx, s, ev)
	default:
		// Unknown persisted state, e.g. after a schema change of the session store.
		return Result{Next: Default(), Replies: []Reply{text(msgUseHelp)}}, nil
	}
}

func (e *Engine) handleCommand(ctx context.Context, s State, ev Event) (Result, error) {
	switch ev.Command {
	case "start":
		next, err := navigate(ctx, s, evStart, s.UserID)
		if err != nil {
			return Result{}, err
		}
		return Result{Next: next, Replies: []Reply{{
			Text:           msgWelcome,
			Keyboard:       []string{LabelSendContact},
			RequestContact: true,
		}}}, nil
	case "cancel":
		next, err := navigate(ctx, s, evCancel, s.UserID)
		if err != nil {
			return Result{}, err
		}
		return Result{Next: next, Replies: []Reply{{Text: msgCancelled, RemoveKeyboard: true}}}, nil
	case "help":
		return stay(s, text(msgHelp)), nil
	default:
		return stay(s, text(msgUseHelp)), nil
	}
}

// failure turns an error into a reply and keeps the current state.
func (e *Engine) failure(s State, ev Event, err error) Result {
	var validation *ValidationError
	switch {
	case errors.As(err, &validation):
		e.log.Infow("invalid input", "chat_id", ev.ChatID, "state", s.String(), "fields", validation.Fields)
		return stay(s, withKeyboard(validation.Message, MenuLabels(s.Kind)))
	case errors.Is(err, db.ErrNotFound):
		e.log.Warnw("profile not found", "chat_id", ev.ChatID, "state", s.String(), "user_id", s.UserID, "error", err)
		return stay(s, text(msgProfileNotFound))
	default:
		e.log.Errorw("failed to handle event", "chat_id", ev.ChatID, "state", s.String(), "error", err)
		return stay(s, withKeyboard(msgSomethingWrong, MenuLabels(s.Kind)))
	}
}

// call runs one gateway operation and records it.
func (e *Engine) call(ev Event, gateway, operation string, fn func() error) error {
	err := fn()
	e.metrics.GatewayCall(gateway, operation, err)

	switch {
	case err == nil:
		e.log.Infow("gateway call", "chat_id", ev.ChatID, "gateway", gateway, "operation", operation)
	case errors.Is(err, db.ErrNotFound):
		e.log.Infow("gateway call: not found", "chat_id", ev.ChatID, "gateway", gateway, "operation", operation)
	default:
		e.log.Errorw("gateway call failed", "chat_id", ev.ChatID, "gateway", gateway, "operation", operation, "error", err)
	}
	return err
}

func (e *Engine) user(ctx context.Context, s State, ev Event) (*models.User, error) {
	var user *models.User
	err := e.call(ev, "db", "UserByID", func() (err error) {
		user, err = e.store.UserByID(ctx, s.UserID)
		return err
	})
	return user, err
}

func (e *Engine) generate(ctx context.Context, ev Event, prompt string) (string, error) {
	var content string
	started := time.Now()
	err := e.call(ev, "gpt", "Complete", func() (err error) {
		content, err = e.gen.Complete(ctx, prompt)
		return err
	})
	e.metrics.ObserveGeneration(time.Since(started))
	return content, err
}

// move follows a navigation edge and attaches replies.
func move(ctx context.Context, s State, event string, replies ...Reply) (Result, error) {
	next, err := navigate(ctx, s, event, s.UserID)
	if err != nil {
		return Result{}, err
	}
	return Result{Next: next, Replies: replies}, nil
}

// back follows the go-back edge and shows the parent menu.
func back(ctx context.Context, s State) (Result, error) {
	next, err := navigate(ctx, s, evBack, s.UserID)
	if err != nil {
		return Result{}, err
	}
	return Result{Next: next, Replies: []Reply{menuReply(next.Kind)}}, nil
}

func stay(s State, replies ...Reply) Result {
	return Result{Next: s, Replies: replies}
}

// notUnderstood keeps the state and repeats the current menu keyboard, if any.
func notUnderstood(s State) Result {
	return stay(s, withKeyboard(msgNotUnderstood, MenuLabels(s.Kind)))
}
