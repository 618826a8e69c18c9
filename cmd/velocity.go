package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/engine"
	"github.com/theirongolddev/padma/internal/state"

	"github.com/spf13/cobra"
)

var flagVelocityDays int

var velocityCmd = &cobra.Command{
	Use:   "velocity",
	Short: "Daily spending pace and month-end forecast",
	Args:  cobra.NoArgs,
	RunE:  runVelocity,
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Recompute and show spending insights",
	Args:  cobra.NoArgs,
	RunE:  runInsights,
}

func init() {
	velocityCmd.Flags().IntVarP(&flagVelocityDays, "days", "n", 14, "Days of history in the sparkline")
	rootCmd.AddCommand(velocityCmd, insightsCmd)
}

func runVelocity(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		now := time.Now()
		cur := st.User.Currency
		v := engine.SpendingVelocity(st.Transactions, now)

		trend := string(v.Trend)
		switch v.Trend {
		case engine.TrendIncreasing:
			trend = cli.Warn("↑ " + trend)
		case engine.TrendDecreasing:
			trend = cli.Good("↓ " + trend)
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("VELOCITY"))
		fmt.Println()
		fmt.Print(cli.RenderKeyValues([][2]string{
			{"Spent this month", cli.FormatMoney(v.MonthSpent, cur)},
			{"Daily average", cli.FormatMoney(int64(v.DailyAverage), cur)},
			{"Forecast", cli.FormatMoney(int64(v.Forecast), cur) + cli.Muted(fmt.Sprintf("  (day %d of %d)", v.DaysElapsed, v.DaysInMonth))},
			{"Last 7 days", cli.FormatMoney(v.LastWeek, cur)},
			{"Previous 7 days", cli.FormatMoney(v.PreviousWeek, cur)},
			{"Trend", trend},
		}))

		if flagVelocityDays > 0 {
			days := engine.DailySpend(st.Transactions, now.AddDate(0, 0, -(flagVelocityDays-1)), now)
			values := make([]int64, len(days))
			for i, d := range days {
				values[i] = d.Amount
			}
			fmt.Println()
			fmt.Printf("  Last %dd  %s\n", flagVelocityDays, cli.RenderSparkline(values))
		}
		fmt.Println()
		return nil
	})
}

func runInsights(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		an := engine.RefreshAnalytics(s.store.State(), time.Now())
		st := s.store.Dispatch(state.SetAnalytics{Analytics: an})

		fmt.Println()
		if len(st.Analytics.Insights) == 0 {
			fmt.Println("  Nothing stands out yet.")
		}
		for _, line := range st.Analytics.Insights {
			fmt.Println("  • " + line)
		}
		fmt.Println()
		return nil
	})
}
