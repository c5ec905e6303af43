package bot

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf16"

	"fitness-bot/internal/dialog"
	"fitness-bot/internal/session"
	"fitness-bot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram rejects longer messages, counted in UTF-16 code units.
const maxMessageLen = 4096

const msgTryLater = "Щось пішло не так, спробуй ще раз пізніше"

// Handler is the conversation engine as seen by the transport.
type Handler interface {
	Handle(ctx context.Context, s dialog.State, ev dialog.Event) dialog.Result
}

// sender is the part of *tgbotapi.BotAPI used to answer.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramBot struct {
	bot      *tgbotapi.BotAPI
	sender   sender
	engine   Handler
	sessions session.Store
	locks    *session.Locker
	logger   *logger.Logger
	stopping chan struct{}
	stopOnce sync.Once
	loop     sync.WaitGroup
	inFlight sync.WaitGroup
}

func NewTelegramBot(token string, debug bool, engine Handler, sessions session.Store, logger *logger.Logger) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	bot.Debug = debug

	logger.Infow("Authorized on Telegram", "username", bot.Self.UserName)

	t := newTelegramBot(bot, engine, sessions, logger)
	t.bot = bot
	return t, nil
}

func newTelegramBot(s sender, engine Handler, sessions session.Store, logger *logger.Logger) *TelegramBot {
	return &TelegramBot{
		sender:   s,
		engine:   engine,
		sessions: sessions,
		locks:    session.NewLocker(),
		logger:   logger,
		stopping: make(chan struct{}),
	}
}

// Start begins receiving updates from Telegram via polling
func (t *TelegramBot) Start(ctx context.Context) error {
	// Polling does not work while a webhook is set.
	t.logger.Info("Removing any existing webhook")
	_, err := t.bot.Request(tgbotapi.DeleteWebhookConfig{
		DropPendingUpdates: false,
	})
	if err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := t.bot.GetUpdatesChan(updateConfig)

	t.logger.Info("Started receiving Telegram updates")

	t.run(ctx, updates)

	return nil
}

func (t *TelegramBot) run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	t.loop.Add(1)
	go func() {
		defer t.loop.Done()
		t.handleUpdates(ctx, updates)
	}()
}

// handleUpdates runs every update in its own goroutine; the per-chat lock keeps
// updates of one chat in order of lock acquisition.
func (t *TelegramBot) handleUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-t.stopping:
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			// The client still flushes its last batch after StopReceivingUpdates.
			select {
			case <-t.stopping:
				return
			default:
			}

			t.inFlight.Add(1)
			go func(update tgbotapi.Update) {
				defer t.inFlight.Done()
				defer func() {
					if r := recover(); r != nil {
						t.logger.Errorw("Recovered from panic while processing update", "update_id", update.UpdateID, "error", r)
					}
				}()

				t.handleUpdate(ctx, update)
			}(update)
		}
	}
}

func (t *TelegramBot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	message := update.Message
	if message == nil || message.Chat == nil {
		t.logger.Debugw("Skipping update without message", "update_id", update.UpdateID)
		return
	}

	chatID := message.Chat.ID
	ev := toEvent(message)

	t.logger.Infow("Received message",
		"update_id", update.UpdateID,
		"chat_id", chatID,
		"event", ev.Kind.String(),
	)

	unlock := t.locks.Lock(chatID)
	defer unlock()

	state, err := t.sessions.Load(ctx, chatID)
	if err != nil {
		t.logger.Errorw("Failed to load session", "chat_id", chatID, "error", err)
		t.send(chatID, dialog.Reply{Text: msgTryLater})
		return
	}

	res := t.engine.Handle(ctx, state, ev)

	// The state is saved before anything is sent.
	if err := t.sessions.Save(ctx, chatID, res.Next); err != nil {
		t.logger.Errorw("Failed to save session", "chat_id", chatID, "state", res.Next.String(), "error", err)
	}

	for _, reply := range res.Replies {
		t.send(chatID, reply)
	}
}

func toEvent(message *tgbotapi.Message) dialog.Event {
	chatID := message.Chat.ID

	if message.IsCommand() {
		return dialog.CommandEvent(chatID, message.Command())
	}

	if c := message.Contact; c != nil {
		// Only the request_contact button sends the sender's own card with
		// user_id set. Phone-book and forwarded cards get a zero PlatformID.
		var platformID int64
		if message.From != nil && c.UserID != 0 && c.UserID == message.From.ID {
			platformID = c.UserID
		}
		return dialog.ContactEvent(chatID, dialog.Contact{
			PhoneNumber: c.PhoneNumber,
			DisplayName: strings.TrimSpace(c.FirstName + " " + c.LastName),
			PlatformID:  platformID,
		})
	}

	// Stickers, photos and the like arrive as empty text and get the
	// "not understood" answer of the current state.
	return dialog.TextEvent(chatID, message.Text)
}

func (t *TelegramBot) send(chatID int64, reply dialog.Reply) {
	markup := replyMarkup(reply)

	if reply.ImagePath != "" {
		t.sendPhoto(chatID, reply, markup)
		return
	}

	chunks := splitText(reply.Text, maxMessageLen)
	for i, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if i == len(chunks)-1 && markup != nil {
			msg.ReplyMarkup = markup
		}
		if _, err := t.sender.Send(msg); err != nil {
			t.logger.Errorw("Failed to send message", "chat_id", chatID, "error", err)
			return
		}
	}
}

func (t *TelegramBot) sendPhoto(chatID int64, reply dialog.Reply, markup interface{}) {
	defer func() {
		if err := os.Remove(reply.ImagePath); err != nil && !os.IsNotExist(err) {
			t.logger.Warnw("Failed to remove chart file", "path", reply.ImagePath, "error", err)
		}
	}()

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(reply.ImagePath))
	photo.Caption = reply.Text
	if markup != nil {
		photo.ReplyMarkup = markup
	}
	if _, err := t.sender.Send(photo); err != nil {
		t.logger.Errorw("Failed to send photo", "chat_id", chatID, "error", err)
	}
}

// Stop stops polling and waits for in-flight updates or ctx.
func (t *TelegramBot) Stop(ctx context.Context) error {
	t.stopOnce.Do(func() { close(t.stopping) })
	if t.bot != nil {
		t.bot.StopReceivingUpdates()
	}

	done := make(chan struct{})
	go func() {
		// No update is started once the loop has returned.
		t.loop.Wait()
		t.inFlight.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// splitText cuts s into pieces of at most limit UTF-16 code units, which is
// how Telegram measures message length. Line breaks are preferred as cut points.
func splitText(s string, limit int) []string {
	if utf16Len(s) <= limit {
		return []string{s}
	}

	var chunks []string
	runes := []rune(s)
	for len(runes) > 0 {
		units, end, lastBreak := 0, 0, 0
		for end < len(runes) {
			n := utf16.RuneLen(runes[end])
			if n < 0 {
				n = 1
			}
			if units+n > limit {
				break
			}
			units += n
			end++
			if runes[end-1] == '\n' {
				lastBreak = end
			}
		}
		if end < len(runes) && lastBreak > end/2 {
			end = lastBreak
		}
		chunks = append(chunks, string(runes[:end]))
		runes = runes[end:]
	}
	return chunks
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
