package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/engine"
	"github.com/theirongolddev/padma/internal/model"
	"github.com/theirongolddev/padma/internal/recurring"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Budget overview for the current month",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		if !st.User.SetupComplete {
			fmt.Println("\n  padma is not set up yet.")
			fmt.Println("  Run `padma setup` or `padma tui` to allocate your income.")
			return nil
		}
		return printSummary(st, time.Now())
	})
}

func printSummary(st model.AppState, now time.Time) error {
	cur := st.User.Currency
	money := func(n int64) string { return cli.FormatMoney(n, cur) }
	check := engine.CheckBudgetExceedsIncome(st.User.MonthlyIncome, st.Streams)

	fmt.Println()
	fmt.Println(cli.RenderTitle("PADMA  " + cli.FormatMonth(model.MonthKey(now))))
	fmt.Println()

	fmt.Print(cli.RenderKeyValues([][2]string{
		{"Income", money(st.User.MonthlyIncome)},
		{"Allocated", money(check.Allocated)},
		{"Spent", money(engine.TotalSpent(st.Transactions))},
		{"Remaining", money(engine.RemainingToSpend(st.Streams, st.Transactions))},
		{"Savings", money(engine.SavingsAmount(st.User.MonthlyIncome, st.Streams, st.Transactions))},
		{"Savings rate", cli.FormatPercent(engine.SavingsRate(st))},
	}))
	fmt.Println()

	if err := printTable(streamTable(st)); err != nil {
		return err
	}

	if check.Exceeds {
		fmt.Println()
		fmt.Println("  " + cli.Warn(fmt.Sprintf("Allocations exceed income by %s", money(check.Allocated-check.Income))))
	}
	if due := recurring.DueTemplates(st.Templates, now); len(due) > 0 {
		fmt.Println()
		fmt.Printf("  %d recurring template(s) due. Run `padma template due`.\n", len(due))
	}
	fmt.Println()
	return nil
}

func streamTable(st model.AppState) cli.Table {
	cur := st.User.Currency
	t := cli.Table{
		Title:   "Streams",
		Headers: []string{"Stream", "Budget", "Spent", "Balance", "Used", "Health"},
	}
	for _, r := range engine.StreamSummaries(st.Streams, st.Transactions) {
		name := r.Stream.Name
		if r.Stream.IsGoal {
			name += " (goal)"
		}
		used := cli.FormatPercent(r.Progress)
		if r.Exceeded {
			used = cli.Bad(used)
		}
		t.Rows = append(t.Rows, []string{
			name,
			cli.FormatMoney(r.Stream.OriginalAmount, cur),
			cli.FormatMoney(r.Spent, cur),
			cli.FormatMoney(r.Balance, cur),
			used,
			cli.HealthStyle(r.Health).Render(fmt.Sprintf("%d", r.Health)),
		})
	}
	return t
}
