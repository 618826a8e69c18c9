package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/engine"
	"github.com/theirongolddev/padma/internal/model"
	"github.com/theirongolddev/padma/internal/state"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income [amount]",
	Short: "Show or set monthly income",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIncome,
}

var currencyCmd = &cobra.Command{
	Use:   "currency [code]",
	Short: "Show or set the display currency",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCurrency,
}

func init() {
	rootCmd.AddCommand(incomeCmd, currencyCmd)
}

func runIncome(_ *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		if len(args) == 0 {
			fmt.Println(cli.FormatMoney(st.User.MonthlyIncome, st.User.Currency))
			return nil
		}
		amount, err := cli.ParseAmount(args[0])
		if err != nil {
			return err
		}
		st = s.store.Dispatch(state.SetIncome{Income: amount})
		info("  Monthly income set to %s", cli.FormatMoney(amount, st.User.Currency))
		warnOverAllocation(st)
		return nil
	})
}

func runCurrency(_ *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		if len(args) == 0 {
			fmt.Println(s.store.State().User.Currency)
			return nil
		}
		code := strings.ToUpper(strings.TrimSpace(args[0]))
		if len(code) != 3 {
			return fmt.Errorf("currency must be a 3-letter code, got %q", args[0])
		}
		s.store.Dispatch(state.SetCurrency{Currency: code})
		info("  Currency set to %s", code)
		return nil
	})
}

// warnOverAllocation prints the advisory when allocations exceed income.
func warnOverAllocation(st model.AppState) {
	check := engine.CheckBudgetExceedsIncome(st.User.MonthlyIncome, st.Streams)
	if check.Exceeds {
		cur := st.User.Currency
		info("  %s", cli.Warn(fmt.Sprintf("warning: allocations (%s) exceed income (%s)",
			cli.FormatMoney(check.Allocated, cur), cli.FormatMoney(check.Income, cur))))
	}
}
