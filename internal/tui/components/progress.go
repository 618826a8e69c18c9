package components

import (
	"fmt"

	"github.com/theirongolddev/padma/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// BudgetBar renders a 0-100 usage bar followed by the percentage, coloured
// green, orange or red by how close the stream is to its limit.
func BudgetBar(pct float64, width int) string {
	t := theme.Active
	pct = max(0, min(100, pct))
	color := t.ForPercent(pct)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(4, width)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return bar.ViewAs(pct/100) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}

// GoalBar renders progress towards a goal without the warning colours.
func GoalBar(pct float64, width int) string {
	t := theme.Active
	pct = max(0, min(100, pct))

	bar := progress.New(
		progress.WithSolidFill(string(t.Goal)),
		progress.WithWidth(max(4, width)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	return bar.ViewAs(pct/100) + " " +
		lipgloss.NewStyle().Foreground(t.Goal).Bold(true).Render(fmt.Sprintf("%3.0f%%", pct))
}

// HealthBadge renders a health score as a coloured "♥ 82".
func HealthBadge(score int) string {
	t := theme.Active
	return lipgloss.NewStyle().Foreground(t.ForHealth(score)).Render(fmt.Sprintf("♥ %3d", score))
}
