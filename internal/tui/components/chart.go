package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/padma/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []int64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak <= 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(float64(max(v, 0)) / float64(peak) * float64(len(sparkBlocks)-1))
		b.WriteRune(sparkBlocks[min(idx, len(sparkBlocks)-1)])
	}
	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}

// Bar is one row of a HorizontalBars chart.
type Bar struct {
	Label string
	Value int64
	Text  string // rendered after the bar, e.g. a formatted amount
	Color lipgloss.Color
}

// HorizontalBars renders labelled bars scaled to the largest value.
func HorizontalBars(bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	labelW, textW := 0, 0
	var peak int64 = 1
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		textW = max(textW, lipgloss.Width(b.Text))
		peak = max(peak, b.Value)
	}
	barW := max(4, width-labelW-textW-2)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	lines := make([]string, len(bars))
	for i, b := range bars {
		n := int(float64(max(b.Value, 0)) / float64(peak) * float64(barW))
		color := b.Color
		if color == "" {
			color = t.Accent
		}
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", n)) +
			strings.Repeat(" ", barW-n)
		lines[i] = fmt.Sprintf("%s %s %s",
			labelStyle.Render(padRight(b.Label, labelW)), bar, textStyle.Render(b.Text))
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, w int) string {
	return s + strings.Repeat(" ", max(0, w-lipgloss.Width(s)))
}
