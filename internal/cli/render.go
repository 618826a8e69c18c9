package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Palette (lotus)
var (
	ColorBorder    = lipgloss.Color("#3B3340")
	ColorTextDim   = lipgloss.Color("#6E6477")
	ColorTextMuted = lipgloss.Color("#8F8599")
	ColorText      = lipgloss.Color("#F4EDF7")
	ColorAccent    = lipgloss.Color("#E07BA8")
	ColorGreen     = lipgloss.Color("#7FB77E")
	ColorOrange    = lipgloss.Color("#E3A857")
	ColorRed       = lipgloss.Color("#E0625A")
	ColorBlue      = lipgloss.Color("#7AA6DA")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	dimStyle   = lipgloss.NewStyle().Foreground(ColorTextDim)

	goodStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	warnStyle = lipgloss.NewStyle().Foreground(ColorOrange)
	badStyle  = lipgloss.NewStyle().Foreground(ColorRed)
)

// SeparatorRow inserts a horizontal rule when used as a table row.
var SeparatorRow = []string{"---"}

// Table represents a bordered text table for CLI output. The first column
// is left-aligned and the rest right-aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

func (t Table) widths() []int {
	n := len(t.Headers)
	for _, row := range t.Rows {
		n = max(n, len(row))
	}
	widths := make([]int, n)
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			widths[i] = max(widths[i], visibleWidth(cell))
		}
	}
	return widths
}

// visibleWidth is the display width of s once styling escapes are removed.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == SeparatorRow[0]
}

func rule(widths []int, left, mid, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return dimStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
}

func pad(cell string, width int, left bool) string {
	gap := strings.Repeat(" ", max(0, width-visibleWidth(cell)))
	if left {
		return " " + cell + gap + " "
	}
	return " " + gap + cell + " "
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	widths := t.widths()
	sep := dimStyle.Render("│")

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	b.WriteString(rule(widths, "╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(sep)
		for i, w := range widths {
			h := ""
			if i < len(t.Headers) {
				h = t.Headers[i]
			}
			b.WriteString(headerStyle.Render(pad(h, w, true)) + sep)
		}
		b.WriteString("\n")
		b.WriteString(rule(widths, "├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(rule(widths, "├", "┼", "┤"))
			continue
		}
		b.WriteString(sep)
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(pad(cell, w, i == 0)) + sep)
		}
		b.WriteString("\n")
	}

	b.WriteString(rule(widths, "╰", "┴", "╯"))
	return b.String()
}

// RenderKeyValues renders aligned "label  value" lines.
func RenderKeyValues(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, runewidth.StringWidth(p[0]))
	}
	var b strings.Builder
	for _, p := range pairs {
		gap := strings.Repeat(" ", width-runewidth.StringWidth(p[0]))
		fmt.Fprintf(&b, "  %s%s  %s\n", mutedStyle.Render(p[0]), gap, valueStyle.Render(p[1]))
	}
	return b.String()
}

// RenderProgressBar renders a 0-100 percentage as a text bar coloured by how
// close it is to the limit.
func RenderProgressBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	pct = max(0, min(100, pct))
	filled := int(pct / 100 * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return StatusStyle(pct).Render(bar)
}

// StatusStyle picks green, orange or red for a budget usage percentage.
func StatusStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 100:
		return badStyle
	case pct >= 80:
		return warnStyle
	default:
		return goodStyle
	}
}

// HealthStyle picks a colour for a 0-100 health score.
func HealthStyle(score int) lipgloss.Style {
	switch {
	case score >= 75:
		return goodStyle
	case score >= 50:
		return warnStyle
	default:
		return badStyle
	}
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []int64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak <= 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(float64(max(v, 0)) / float64(peak) * float64(len(blocks)-1))
		b.WriteRune(blocks[min(idx, len(blocks)-1)])
	}
	return b.String()
}

// Muted renders s in the muted text colour.
func Muted(s string) string { return mutedStyle.Render(s) }

// Warn renders s in the warning colour.
func Warn(s string) string { return warnStyle.Render(s) }

// Good renders s in the positive colour.
func Good(s string) string { return goodStyle.Render(s) }

// Bad renders s in the error colour.
func Bad(s string) string { return badStyle.Render(s) }
