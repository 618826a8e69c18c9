package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/config"
	"github.com/theirongolddev/padma/internal/engine"
	"github.com/theirongolddev/padma/internal/state"
	"github.com/theirongolddev/padma/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Don't ask before replacing existing data")
	rootCmd.AddCommand(setupCmd)
}

var stdin = bufio.NewReader(os.Stdin)

var errNoInput = errors.New("setup aborted: no more input")

// prompt prints label and returns the trimmed answer, or def when blank.
// It fails only once stdin is exhausted.
func prompt(label, def string) (string, error) {
	if def != "" {
		fmt.Printf("     %s [%s] > ", label, def)
	} else {
		fmt.Printf("     %s > ", label)
	}
	line, err := stdin.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		fmt.Println()
		if errors.Is(err, io.EOF) {
			return def, errNoInput
		}
		return def, fmt.Errorf("reading input: %w", err)
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// confirm asks a yes/no question, defaulting to no. --yes answers for the user.
func confirm(question string) bool {
	if flagYes {
		return true
	}
	fmt.Printf("  %s [y/N] ", question)
	line, _ := stdin.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func runSetup(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		if s.store.State().User.SetupComplete &&
			!confirm("padma is already set up. Start over with a fresh state?") {
			return nil
		}
		now := time.Now()

		fmt.Println()
		fmt.Println("  Welcome to padma!")
		fmt.Println()

		fmt.Println("  1. Monthly income")
		var income int64
		for {
			answer, err := prompt("Amount", "")
			if err != nil {
				return err
			}
			amount, err := cli.ParseAmount(answer)
			if err == nil && amount > 0 {
				income = amount
				break
			}
			fmt.Println("     Enter a positive whole amount, e.g. 50,000")
		}
		fmt.Println()

		fmt.Println("  2. Currency")
		code, err := prompt("Code", s.cfg.General.Currency)
		if err != nil {
			return err
		}
		currency := strings.ToUpper(code)
		fmt.Println()

		fmt.Println("  3. Color theme")
		names := theme.Names()
		current := 1
		for i, n := range names {
			if n == s.cfg.Appearance.Theme {
				current = i + 1
			}
			fmt.Printf("     (%d) %s\n", i+1, n)
		}
		choice, err := prompt("Choice", strconv.Itoa(current))
		if err != nil {
			return err
		}
		themeName := names[current-1]
		if i, err := strconv.Atoi(choice); err == nil && i >= 1 && i <= len(names) {
			themeName = names[i-1]
		}
		fmt.Println()

		ob := &state.Onboarding{Income: income, Currency: currency}
		fmt.Println("  4. Streams")
		fmt.Println("     Split your income into streams. Leave the name blank to finish.")
		for {
			fmt.Printf("     %s left to allocate\n", cli.FormatMoney(ob.Unallocated(), currency))
			name, err := prompt("Name", "")
			if errors.Is(err, errNoInput) || name == "" {
				break
			}
			if err != nil {
				return err
			}
			budget, err := prompt("Budget", "")
			if err != nil {
				return err
			}
			amount, err := cli.ParseAmount(budget)
			if err != nil {
				fmt.Println("     " + err.Error())
				continue
			}
			goalAnswer, err := prompt("Savings goal? (y/N)", "n")
			if err != nil {
				return err
			}
			goal := strings.HasPrefix(strings.ToLower(goalAnswer), "y")

			if _, err := ob.AddStream(name, amount, goal, now); err != nil {
				if errors.Is(err, engine.ErrExceedsIncome) {
					fmt.Println("     " + cli.Bad("That exceeds your income. Lower the amount or raise your income."))
				} else {
					fmt.Println("     " + err.Error())
				}
				continue
			}
		}
		fmt.Println()

		actions := append([]state.Action{state.ResetApp{}}, ob.Actions(now)...)
		for _, a := range actions {
			s.store.Dispatch(a)
		}

		s.cfg.General.Currency = currency
		s.cfg.Appearance.Theme = themeName
		if err := saveConfigPrefs(s.cfg); err != nil {
			return err
		}

		fmt.Printf("  All set. %d stream(s), %s unallocated goes to Savings.\n",
			len(s.store.State().Streams), cli.FormatMoney(ob.Unallocated(), currency))
		fmt.Println("  Run `padma` for a summary or `padma tui` for the dashboard.")
		fmt.Println()
		return nil
	})
}

// saveConfigPrefs persists currency and theme without writing command-line
// overrides into the file.
func saveConfigPrefs(cfg config.Config) error {
	onDisk, err := config.Load()
	if err != nil {
		onDisk = config.DefaultConfig()
	}
	onDisk.General.Currency = cfg.General.Currency
	onDisk.Appearance.Theme = cfg.Appearance.Theme
	if err := config.Save(onDisk); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
