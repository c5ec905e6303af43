package chart

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fitness-bot/internal/models"

	"github.com/stretchr/testify/require"
)

func TestRender_WritesPNG(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)

	history := []models.Measurement{
		{Chest: 108, Waist: 105, Hips: 123, ArmBiceps: 39, LegBiceps: 72, Calf: 45},
		{Chest: 107, Waist: 100, Hips: 120, ArmBiceps: 40, LegBiceps: 73, Calf: 45},
	}

	path, err := r.Render(history)
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 1280, cfg.Width)
	require.Equal(t, 720, cfg.Height)
}

func TestRender_SingleSnapshot(t *testing.T) {
	path, err := NewRenderer(t.TempDir()).Render([]models.Measurement{{Chest: 100}})
	require.NoError(t, err)
	require.FileExists(t, path)
}

func TestRender_NoData(t *testing.T) {
	dir := t.TempDir()
	_, err := NewRenderer(dir).Render(nil)
	require.ErrorIs(t, err, ErrNoData)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
