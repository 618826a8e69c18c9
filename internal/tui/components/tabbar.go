package components

import (
	"strings"

	"github.com/theirongolddev/padma/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar. The shortcut key is the
// first letter of the name.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o'},
	{Name: "Streams", Key: 's'},
	{Name: "Transactions", Key: 't'},
	{Name: "Recurring", Key: 'r'},
	{Name: "Archives", Key: 'a'},
}

// TabWidth is the rendered width of tab i.
func TabWidth(i, activeIdx int) int {
	w := len(Tabs[i].Name) + 2
	if i != activeIdx {
		w += 2 // "[" and "]" around the shortcut
	}
	return w
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tab.Name)
			continue
		}
		parts[i] = " " + dimStyle.Render("[") + keyStyle.Render(tab.Name[:1]) + dimStyle.Render("]") +
			inactiveStyle.Render(tab.Name[1:]) + " "
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(parts, " "))
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// TabAtX returns the tab under column x, or -1.
func TabAtX(x, activeIdx int) int {
	pos := 0
	for i := range Tabs {
		w := TabWidth(i, activeIdx)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1
	}
	return -1
}
