package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/engine"
	"github.com/theirongolddev/padma/internal/model"
	"github.com/theirongolddev/padma/internal/state"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [YYYY-MM]",
	Short: "Snapshot a month's figures (default: this month)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runArchive,
}

var archivesCmd = &cobra.Command{
	Use:   "archives [YYYY-MM]",
	Short: "List archived months, or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runArchives,
}

func init() {
	rootCmd.AddCommand(archiveCmd, archivesCmd)
}

func runArchive(_ *cobra.Command, args []string) error {
	now := time.Now()
	month := model.MonthKey(now)
	if len(args) == 1 {
		if _, err := time.Parse(model.MonthKeyLayout, args[0]); err != nil {
			return fmt.Errorf("invalid month %q, want YYYY-MM", args[0])
		}
		month = args[0]
	}

	return withSession(func(s *session) error {
		_, existed := s.store.State().Archives[month]
		s.store.Dispatch(state.SetAnalytics{Analytics: engine.RefreshAnalytics(s.store.State(), now)})
		st := s.store.Dispatch(state.ArchiveMonth{Month: month})

		ar := st.Archives[month]
		verb := "Archived"
		if existed {
			verb = "Re-archived"
		}
		info("  %s %s: %s spent across %d transaction(s)", verb, cli.FormatMonth(month),
			cli.FormatMoney(ar.TotalSpent, st.User.Currency), ar.TransactionCount)
		return nil
	})
}

func runArchives(_ *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		if len(args) == 1 {
			ar, ok := st.Archives[args[0]]
			if !ok {
				return fmt.Errorf("no archive for %s", args[0])
			}
			return printArchive(ar, st.User.Currency)
		}

		if len(st.Archives) == 0 {
			fmt.Println("\n  No archived months. Run `padma archive` at month end.")
			return nil
		}
		months := make([]string, 0, len(st.Archives))
		for m := range st.Archives {
			months = append(months, m)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(months)))

		cur := st.User.Currency
		t := cli.Table{
			Title:   "Archives",
			Headers: []string{"Month", "Income", "Spent", "Streams", "Txns", "Archived"},
		}
		for _, m := range months {
			ar := st.Archives[m]
			t.Rows = append(t.Rows, []string{
				cli.FormatMonth(m),
				cli.FormatMoney(ar.TotalIncome, cur),
				cli.FormatMoney(ar.TotalSpent, cur),
				cli.FormatNumber(int64(len(ar.Streams))),
				cli.FormatNumber(int64(ar.TransactionCount)),
				cli.FormatDate(ar.ArchivedAt),
			})
		}
		fmt.Println()
		return printTable(t)
	})
}

func printArchive(ar model.MonthlyArchive, cur string) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("ARCHIVE  " + cli.FormatMonth(ar.Month)))
	fmt.Println()
	fmt.Print(cli.RenderKeyValues([][2]string{
		{"Income", cli.FormatMoney(ar.TotalIncome, cur)},
		{"Spent", cli.FormatMoney(ar.TotalSpent, cur)},
		{"Transactions", cli.FormatNumber(int64(ar.TransactionCount))},
		{"Archived", cli.FormatDateTime(ar.ArchivedAt)},
	}))
	fmt.Println()

	t := cli.Table{Title: "Streams", Headers: []string{"Stream", "Budget", "Goal"}}
	for _, s := range ar.Streams {
		goal := ""
		if s.IsGoal {
			goal = "yes"
		}
		t.Rows = append(t.Rows, []string{s.Name, cli.FormatMoney(s.OriginalAmount, cur), goal})
	}
	if err := printTable(t); err != nil {
		return err
	}

	if len(ar.Insights) > 0 {
		fmt.Println()
		fmt.Println("  Insights")
		for _, line := range ar.Insights {
			fmt.Println("  • " + line)
		}
	}
	fmt.Println()
	return nil
}
