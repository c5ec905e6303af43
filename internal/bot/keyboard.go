package bot

import (
	"fitness-bot/internal/dialog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BuildKeyboard puts all labels into a single row.
func BuildKeyboard(labels []string) tgbotapi.ReplyKeyboardMarkup {
	row := make([]tgbotapi.KeyboardButton, 0, len(labels))
	for _, label := range labels {
		row = append(row, tgbotapi.NewKeyboardButton(label))
	}

	keyboard := tgbotapi.NewReplyKeyboard(row)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func contactKeyboard(label string) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact(label)),
	)
	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = true
	return keyboard
}

// replyMarkup returns nil when the reply leaves the current keyboard alone.
func replyMarkup(r dialog.Reply) interface{} {
	switch {
	case r.RequestContact:
		label := dialog.LabelSendContact
		if len(r.Keyboard) > 0 {
			label = r.Keyboard[0]
		}
		return contactKeyboard(label)
	case len(r.Keyboard) > 0:
		return BuildKeyboard(r.Keyboard)
	case r.RemoveKeyboard:
		return tgbotapi.NewRemoveKeyboard(true)
	default:
		return nil
	}
}
