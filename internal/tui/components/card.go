// Package components provides reusable TUI widgets for the padma dashboard.
package components

import (
	"strings"

	"github.com/theirongolddev/padma/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// Metric is one figure shown in a MetricCard.
type Metric struct {
	Label string
	Value string
	Note  string
	// Color tints the value; empty means primary text.
	Color lipgloss.Color
}

// MetricCard renders a small card with label, value and an optional note.
// outerWidth is the total rendered width including border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	valueColor := t.TextPrimary
	if m.Color != "" {
		valueColor = m.Color
	}

	label := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label)
	value := lipgloss.NewStyle().Foreground(valueColor).Bold(true).Render(m.Value)
	content := label + "\n" + value
	if m.Note != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Note)
	}

	return cardStyle(t.Border, outerWidth).Render(content)
}

// MetricRow renders metric cards side by side, summing to totalWidth.
func MetricRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(metrics))
	cards := make([]string, len(metrics))
	for i, m := range metrics {
		cards[i] = MetricCard(m, widths[i])
	}
	return CardRow(cards)
}

// ContentCard renders a bordered card with an optional title. A focused card
// gets the accent border.
func ContentCard(title, body string, outerWidth int, focused bool) string {
	t := theme.Active

	border := t.Border
	if focused {
		border = t.BorderAccent
	}

	content := body
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(title) + "\n" + body
	}
	return cardStyle(border, outerWidth).Render(content)
}

func cardStyle(border lipgloss.Color, outerWidth int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(10, outerWidth-2)).
		Padding(0, 1)
}

// CardRow joins pre-rendered cards horizontally, padding shorter cards so
// every column has the same height.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	tallest := 0
	for _, c := range cards {
		tallest = max(tallest, lipgloss.Height(c))
	}
	padded := make([]string, len(cards))
	for i, c := range cards {
		missing := tallest - lipgloss.Height(c)
		if missing > 0 {
			blank := strings.Repeat(" ", lipgloss.Width(c))
			c += strings.Repeat("\n"+blank, missing)
		}
		padded[i] = c
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	return max(10, outerWidth-4)
}
