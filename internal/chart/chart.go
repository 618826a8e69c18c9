// Package chart renders padma spending data as PNG bar charts.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/engine"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when there is nothing non-zero to plot.
var ErrNoData = errors.New("no spending to chart")

var (
	colorSpend    = drawing.ColorFromHex("7FB77E")
	colorWarn     = drawing.ColorFromHex("E3A857")
	colorExceeded = drawing.ColorFromHex("E0625A")
	colorGoal     = drawing.ColorFromHex("7AA6DA")
	colorDay      = drawing.ColorFromHex("E07BA8")
)

// Size is the output image size in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is used when a zero Size is passed.
var DefaultSize = Size{Width: 900, Height: 420}

func (s Size) orDefault() Size {
	if s.Width <= 0 || s.Height <= 0 {
		return DefaultSize
	}
	return s
}

func barStyle(c drawing.Color) chart.Style {
	return chart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 0}
}

func summaryColor(r engine.StreamSummary) drawing.Color {
	switch {
	case r.Stream.IsGoal:
		return colorGoal
	case r.Exceeded:
		return colorExceeded
	case r.Progress >= 80:
		return colorWarn
	default:
		return colorSpend
	}
}

// StreamSpend writes a bar per stream showing how much was spent from it.
func StreamSpend(w io.Writer, rows []engine.StreamSummary, currency string, size Size) error {
	bars := make([]chart.Value, 0, len(rows))
	var total int64
	for _, r := range rows {
		total += r.Spent
		bars = append(bars, chart.Value{
			Label: r.Stream.Name,
			Value: float64(r.Spent),
			Style: barStyle(summaryColor(r)),
		})
	}
	if total == 0 {
		return ErrNoData
	}
	return render(w, "Spent per stream", bars, currency, size)
}

// DailySpend writes a bar per day.
func DailySpend(w io.Writer, days []engine.DayTotal, currency string, size Size) error {
	bars := make([]chart.Value, 0, len(days))
	var total int64
	for _, d := range days {
		total += d.Amount
		bars = append(bars, chart.Value{
			Label: d.Date.Format("02"),
			Value: float64(d.Amount),
			Style: barStyle(colorDay),
		})
	}
	if total == 0 {
		return ErrNoData
	}
	title := fmt.Sprintf("Daily spending %s to %s",
		days[0].Date.Format("Jan 02"), days[len(days)-1].Date.Format("Jan 02"))
	return render(w, title, bars, currency, size)
}

func render(w io.Writer, title string, bars []chart.Value, currency string, size Size) error {
	size = size.orDefault()

	var peak float64
	for _, b := range bars {
		peak = max(peak, b.Value)
	}
	barWidth := max(8, (size.Width-120)/len(bars)-8)

	graph := chart.BarChart{
		Title: title,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    size.Width,
		Height:   size.Height,
		BarWidth: barWidth,
		Bars:     bars,
	}
	// Bars grow from zero; an auto range would start at the smallest bar.
	graph.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: peak * 1.1}
	graph.YAxis.ValueFormatter = func(v any) string {
		if f, ok := v.(float64); ok {
			return cli.CurrencySymbol(currency) + cli.FormatCompact(int64(f))
		}
		return ""
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
