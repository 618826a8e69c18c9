package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/padma/internal/chart"
	"github.com/theirongolddev/padma/internal/engine"

	"github.com/spf13/cobra"
)

var (
	flagChartKind   string
	flagChartOut    string
	flagChartDays   int
	flagChartWidth  int
	flagChartHeight int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render spending as a PNG bar chart",
	Args:  cobra.NoArgs,
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&flagChartKind, "kind", "k", "streams", "streams or daily")
	chartCmd.Flags().StringVarP(&flagChartOut, "output", "o", "padma-chart.png", "Output file")
	chartCmd.Flags().IntVarP(&flagChartDays, "days", "n", 30, "Days covered by the daily chart")
	chartCmd.Flags().IntVar(&flagChartWidth, "width", chart.DefaultSize.Width, "Image width in pixels")
	chartCmd.Flags().IntVar(&flagChartHeight, "height", chart.DefaultSize.Height, "Image height in pixels")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	if flagChartKind != "streams" && flagChartKind != "daily" {
		return fmt.Errorf("unknown chart kind %q (want streams or daily)", flagChartKind)
	}

	return withSession(func(s *session) error {
		st := s.store.State()
		size := chart.Size{Width: flagChartWidth, Height: flagChartHeight}

		f, err := os.Create(flagChartOut)
		if err != nil {
			return fmt.Errorf("creating chart file: %w", err)
		}

		if flagChartKind == "daily" {
			now := time.Now()
			days := engine.DailySpend(st.Transactions, now.AddDate(0, 0, -(flagChartDays-1)), now)
			err = chart.DailySpend(f, days, st.User.Currency, size)
		} else {
			err = chart.StreamSpend(f, engine.StreamSummaries(st.Streams, st.Transactions), st.User.Currency, size)
		}
		closeErr := f.Close()

		if errors.Is(err, chart.ErrNoData) {
			_ = os.Remove(flagChartOut)
			fmt.Println("\n  No spending to chart yet.")
			return nil
		}
		if err != nil {
			_ = os.Remove(flagChartOut)
			return err
		}
		if closeErr != nil {
			return fmt.Errorf("closing chart file: %w", closeErr)
		}
		info("  Wrote %s", flagChartOut)
		return nil
	})
}
