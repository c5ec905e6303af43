package gpt

import (
	"strconv"
	"strings"

	"fitness-bot/internal/models"
)

const unknownValue = "невідомо"

// FormatPrompt builds the generation prompt. A nil userText and a lone "." both
// mean "no contraindications" and select withoutArgs. The user text is embedded as is.
func FormatPrompt(userText *string, withArgs, withoutArgs string, user *models.User) string {
	var b strings.Builder

	if text, ok := contraindications(userText); ok {
		b.WriteString(withArgs)
		b.WriteString(text)
	} else {
		b.WriteString(withoutArgs)
	}

	b.WriteString("\nДані користувача: ")
	b.WriteString(Profile(user))
	return b.String()
}

// Profile renders age, height and weight; absent values become "невідомо".
func Profile(user *models.User) string {
	var age, height, weight *int
	if user != nil {
		age, height, weight = user.Age, user.Height, user.Weight
	}
	return "вік: " + orUnknown(age) + ", зріст: " + orUnknown(height) + ", вага: " + orUnknown(weight)
}

func contraindications(userText *string) (string, bool) {
	if userText == nil {
		return "", false
	}
	text := strings.TrimSpace(*userText)
	if text == "." {
		return "", false
	}
	return text, true
}

func orUnknown(v *int) string {
	if v == nil {
		return unknownValue
	}
	return strconv.Itoa(*v)
}
