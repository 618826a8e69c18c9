// Package theme defines color themes for the padma TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Surface      lipgloss.Color // card and panel backgrounds
	SurfaceHover lipgloss.Color // active tab, selected row
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // focused card
	TextDim      lipgloss.Color // hints, disabled
	TextMuted    lipgloss.Color // labels
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	Good         lipgloss.Color // under budget, healthy
	Warn         lipgloss.Color // near a limit
	Bad          lipgloss.Color // exceeded
	Goal         lipgloss.Color // savings and goal streams
}

// Lotus is the default theme: dusky purple with lotus pink accents.
var Lotus = Theme{
	Name:         "lotus",
	Surface:      lipgloss.Color("#1F1A24"),
	SurfaceHover: lipgloss.Color("#2C2533"),
	Border:       lipgloss.Color("#3B3340"),
	BorderAccent: lipgloss.Color("#E07BA8"),
	TextDim:      lipgloss.Color("#6E6477"),
	TextMuted:    lipgloss.Color("#8F8599"),
	TextPrimary:  lipgloss.Color("#F4EDF7"),
	Accent:       lipgloss.Color("#E07BA8"),
	Good:         lipgloss.Color("#7FB77E"),
	Warn:         lipgloss.Color("#E3A857"),
	Bad:          lipgloss.Color("#E0625A"),
	Goal:         lipgloss.Color("#7AA6DA"),
}

// Monsoon is a cool slate and teal theme.
var Monsoon = Theme{
	Name:         "monsoon",
	Surface:      lipgloss.Color("#18202A"),
	SurfaceHover: lipgloss.Color("#233040"),
	Border:       lipgloss.Color("#34455A"),
	BorderAccent: lipgloss.Color("#4FB3BF"),
	TextDim:      lipgloss.Color("#5B6B7F"),
	TextMuted:    lipgloss.Color("#8A9AAE"),
	TextPrimary:  lipgloss.Color("#E6EEF5"),
	Accent:       lipgloss.Color("#4FB3BF"),
	Good:         lipgloss.Color("#8CC084"),
	Warn:         lipgloss.Color("#E8B45A"),
	Bad:          lipgloss.Color("#E06C75"),
	Goal:         lipgloss.Color("#B69CE0"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:         "terminal",
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("5"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("5"),
	Good:         lipgloss.Color("2"),
	Warn:         lipgloss.Color("3"),
	Bad:          lipgloss.Color("1"),
	Goal:         lipgloss.Color("4"),
}

// Active is the currently selected theme.
var Active = Lotus

// All available themes.
var All = []Theme{Lotus, Monsoon, Terminal}

// Names lists the theme names in All order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to Lotus.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Lotus
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// ForPercent picks the status color for a 0-100 budget usage.
func (t Theme) ForPercent(pct float64) lipgloss.Color {
	switch {
	case pct >= 100:
		return t.Bad
	case pct >= 80:
		return t.Warn
	default:
		return t.Good
	}
}

// ForHealth picks the status color for a 0-100 health score.
func (t Theme) ForHealth(score int) lipgloss.Color {
	switch {
	case score >= 75:
		return t.Good
	case score >= 50:
		return t.Warn
	default:
		return t.Bad
	}
}
