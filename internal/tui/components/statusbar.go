package components

import (
	"strings"

	"github.com/theirongolddev/padma/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and a message on the right.
func RenderStatusBar(width int, hints, message string) string {
	t := theme.Active

	left := " " + hints
	right := message
	if right != "" {
		right += " "
	}
	gap := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))

	return lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width).
		Render(left + strings.Repeat(" ", gap) + right)
}
