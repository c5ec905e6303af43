// Package chart draws the body-size history as a PNG line chart.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"fitness-bot/internal/models"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	width  = 1280
	height = 720
)

// ErrNoData is returned for an empty history.
var ErrNoData = errors.New("no measurements to draw")

// Series names in models.Measurement.Values order.
var seriesNames = [6]string{"Груди", "Талія", "Стегна", "Біцепс руки", "Біцепс ноги", "Ікри"}

// Renderer writes charts into Dir; an empty Dir means the OS temp directory.
type Renderer struct {
	Dir string
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{Dir: dir}
}

// Render draws one line+scatter series per metric and returns the path of the
// written PNG. The caller owns the file and is expected to remove it.
func (r *Renderer) Render(history []models.Measurement) (string, error) {
	const op = "chart/Render"

	if len(history) == 0 {
		return "", ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Статистика розмірів"
	p.X.Label.Text = "Замір"
	p.Y.Label.Text = "См"
	p.Y.Min = 0
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, name := range seriesNames {
		points := make(plotter.XYs, len(history))
		for j, m := range history {
			points[j].X = float64(j + 1)
			points[j].Y = float64(m.Values()[i])
		}

		line, scatter, err := plotter.NewLinePoints(points)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		c := plotutil.Color(i)
		line.Color = c
		scatter.Color = c
		scatter.Shape = draw.CircleGlyph{}
		scatter.Radius = vg.Points(3)

		p.Add(line, scatter)
		p.Legend.Add(name, line, scatter)
	}

	f, err := os.CreateTemp(r.Dir, "stats_plot_*.png")
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	canvas := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(72), vgimg.UseBackgroundColor(color.White))
	p.Draw(draw.New(canvas))

	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return f.Name(), nil
}
