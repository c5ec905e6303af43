package gpt

import (
	"testing"

	"fitness-bot/internal/models"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func TestFormatPrompt_DotEqualsNone(t *testing.T) {
	user := &models.User{Age: intPtr(30), Height: intPtr(180), Weight: intPtr(75)}

	withDot := FormatPrompt(strPtr("."), "A:", "B.", user)
	withNil := FormatPrompt(nil, "A:", "B.", user)

	require.Equal(t, withNil, withDot)
	require.Equal(t, "B.\nДані користувача: вік: 30, зріст: 180, вага: 75", withNil)

	require.Equal(t, withNil, FormatPrompt(strPtr("  .  "), "A:", "B.", user))
}

func TestFormatPrompt_WithContraindications(t *testing.T) {
	user := &models.User{Age: intPtr(40)}

	got := FormatPrompt(strPtr("болить коліно"), "Протипоказання: ", "B", user)
	require.Equal(t, "Протипоказання: болить коліно\nДані користувача: вік: 40, зріст: невідомо, вага: невідомо", got)
}

func TestProfile_NilUser(t *testing.T) {
	require.Equal(t, "вік: невідомо, зріст: невідомо, вага: невідомо", Profile(nil))
}
