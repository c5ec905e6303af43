package dialog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	for _, ok := range []string{"user@example.com", "first.last+tag@mail.co.ua", " user@example.com "} {
		require.NoError(t, ValidateEmail(ok), ok)
	}
	for _, bad := range []string{"user@@example", "user.com", "", "user@example", "@example.com"} {
		require.Error(t, ValidateEmail(bad), bad)
	}
}

func TestParseAge(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want int
	}{{"1", 1}, {"99", 99}, {" 30 ", 30}} {
		got, err := ParseAge(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"0", "100", "-5", "abc", ""} {
		_, err := ParseAge(bad)
		var v *ValidationError
		require.ErrorAs(t, err, &v, bad)
	}
}

func TestParseHeightWeight(t *testing.T) {
	h, w, err := ParseHeightWeight("185 90")
	require.NoError(t, err)
	require.Equal(t, 185, h)
	require.Equal(t, 90, w)

	_, _, err = ParseHeightWeight("185")
	require.EqualError(t, err, "Висота та вага не валідні!")

	_, _, err = ParseHeightWeight("185 ninety")
	require.EqualError(t, err, "Вага не валідна!")

	_, _, err = ParseHeightWeight("high 90")
	require.EqualError(t, err, "Висота не валідна!")

	_, _, err = ParseHeightWeight("185 90 1")
	require.Error(t, err)
}

func TestParseDataUpdate(t *testing.T) {
	got, err := ParseDataUpdate("вік: 21, зріст: 185, вага: 112")
	require.NoError(t, err)
	require.Equal(t, DataUpdate{Age: 21, Height: 185, Weight: 112}, got)

	got, err = ParseDataUpdate("Вага:112,ВІК:21 , зріст : 185")
	require.NoError(t, err)
	require.Equal(t, DataUpdate{Age: 21, Height: 185, Weight: 112}, got)

	_, err = ParseDataUpdate("вік: 21, вага: 112")
	var v *ValidationError
	require.ErrorAs(t, err, &v)
	require.Equal(t, []string{"height"}, v.Fields)

	_, err = ParseDataUpdate("")
	require.ErrorAs(t, err, &v)
	require.Equal(t, []string{"age", "height", "weight"}, v.Fields)
	require.Equal(t, "Вік не валідний!\nЗріст не валідний!\nВага не валідна!", v.Message)

	_, err = ParseDataUpdate("вік: 150, зріст: 185, вага: 112")
	require.ErrorAs(t, err, &v)
	require.Equal(t, []string{"age"}, v.Fields)
}

func TestParseSizeUpdate(t *testing.T) {
	got, err := ParseSizeUpdate("108 - груди, 105 - талія, 123 - бедра, 39 - біцепс руки, 72 - біцепс ноги, 45 - ікра")
	require.NoError(t, err)
	require.Equal(t, [6]int{108, 105, 123, 39, 72, 45}, got)

	// Order and spacing do not matter.
	got, err = ParseSizeUpdate("45-ікра,72 - Біцепс  ноги, 39 - біцепс руки, 123 - бедра, 105 - талія, 108 - груди")
	require.NoError(t, err)
	require.Equal(t, [6]int{108, 105, 123, 39, 72, 45}, got)

	_, err = ParseSizeUpdate("108 - груди, 105 - талія")
	var v *ValidationError
	require.ErrorAs(t, err, &v)
	require.Equal(t, []string{"бедра", "біцепс руки", "біцепс ноги", "ікра"}, v.Fields)

	_, err = ParseSizeUpdate("abc - груди, 105 - талія, 123 - бедра, 39 - біцепс руки, 72 - біцепс ноги, 45 - ікра")
	require.ErrorAs(t, err, &v)
	require.Equal(t, "Груди не валідні!", v.Message)
}
