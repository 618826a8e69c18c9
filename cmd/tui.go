package cmd

import (
	"fmt"

	"github.com/theirongolddev/padma/internal/tui"
	"github.com/theirongolddev/padma/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		theme.SetActive(s.cfg.Appearance.Theme)

		// Force TrueColor so background styling always produces escapes.
		lipgloss.SetColorProfile(termenv.TrueColor)

		saveTheme := func(name string) {
			s.cfg.Appearance.Theme = name
			if err := saveConfigPrefs(s.cfg); err != nil {
				s.logger.Warn("saving theme", zap.Error(err))
			}
		}

		app := tui.NewApp(s.store, tui.WithThemeHook(saveTheme))
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	})
}
