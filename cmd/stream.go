package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/engine"
	"github.com/theirongolddev/padma/internal/model"
	"github.com/theirongolddev/padma/internal/state"

	"github.com/spf13/cobra"
)

var (
	flagStreamGoal   bool
	flagStreamName   string
	flagStreamAmount string
)

var streamCmd = &cobra.Command{
	Use:     "stream",
	Aliases: []string{"streams"},
	Short:   "Manage budget streams",
}

var streamAddCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Add a stream",
	Args:  cobra.ExactArgs(2),
	RunE:  runStreamAdd,
}

var streamListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List streams with balances",
	Args:    cobra.NoArgs,
	RunE:    runStreamList,
}

var streamEditCmd = &cobra.Command{
	Use:   "edit <stream>",
	Short: "Rename or re-budget a stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runStreamEdit,
}

var streamRmCmd = &cobra.Command{
	Use:     "rm <stream>",
	Aliases: []string{"delete"},
	Short:   "Delete a stream and all of its transactions",
	Args:    cobra.ExactArgs(1),
	RunE:    runStreamRm,
}

var streamHealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Health score per stream",
	Args:  cobra.NoArgs,
	RunE:  runStreamHealth,
}

func init() {
	streamAddCmd.Flags().BoolVarP(&flagStreamGoal, "goal", "g", false, "Savings goal instead of a spending budget")
	streamEditCmd.Flags().StringVar(&flagStreamName, "name", "", "New name")
	streamEditCmd.Flags().StringVar(&flagStreamAmount, "amount", "", "New budget")
	streamEditCmd.Flags().BoolVarP(&flagStreamGoal, "goal", "g", false, "Mark as savings goal")

	streamCmd.AddCommand(streamAddCmd, streamListCmd, streamEditCmd, streamRmCmd, streamHealthCmd)
	rootCmd.AddCommand(streamCmd)
}

func runStreamAdd(_ *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return fmt.Errorf("stream name must not be empty")
	}
	amount, err := cli.ParseAmount(args[1])
	if err != nil {
		return err
	}

	return withSession(func(s *session) error {
		if _, ok := model.FindStreamByName(s.store.State().Streams, name); ok {
			return fmt.Errorf("stream %q already exists", name)
		}
		stream := model.NewStream(name, amount, flagStreamGoal, time.Now())
		st := s.store.Dispatch(state.AddStream{Stream: stream})
		info("  Added stream %s (%s) %s", stream.Name, cli.FormatMoney(amount, st.User.Currency), cli.ShortID(stream.ID))
		warnOverAllocation(st)
		return nil
	})
}

func runStreamList(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		if len(st.Streams) == 0 {
			fmt.Println("\n  No streams yet. Add one with `padma stream add <name> <amount>`.")
			return nil
		}
		t := streamTable(st)
		t.Headers = append([]string{"ID"}, t.Headers...)
		for i, stream := range st.Streams {
			t.Rows[i] = append([]string{cli.ShortID(stream.ID)}, t.Rows[i]...)
		}
		t.Rows = append(t.Rows, cli.SeparatorRow, []string{
			"", "Total",
			cli.FormatMoney(engine.AllocatedBudget(st.Streams), st.User.Currency),
			cli.FormatMoney(engine.TotalSpent(st.Transactions), st.User.Currency),
			cli.FormatMoney(engine.RemainingToSpend(st.Streams, st.Transactions), st.User.Currency),
			"", "",
		})
		fmt.Println()
		return printTable(t)
	})
}

func runStreamEdit(cmd *cobra.Command, args []string) error {
	var patch model.StreamPatch
	if cmd.Flags().Changed("name") {
		name := strings.TrimSpace(flagStreamName)
		if name == "" {
			return fmt.Errorf("stream name must not be empty")
		}
		patch.Name = &name
	}
	if cmd.Flags().Changed("amount") {
		amount, err := cli.ParseAmount(flagStreamAmount)
		if err != nil {
			return err
		}
		patch.OriginalAmount = &amount
	}
	if cmd.Flags().Changed("goal") {
		goal := flagStreamGoal
		patch.IsGoal = &goal
	}
	if patch == (model.StreamPatch{}) {
		return fmt.Errorf("nothing to change, pass --name, --amount or --goal")
	}

	return withSession(func(s *session) error {
		stream, err := findStream(s.store.State().Streams, args[0])
		if err != nil {
			return err
		}
		st := s.store.Dispatch(state.UpdateStream{ID: stream.ID, Patch: patch})
		info("  Updated stream %s", streamName(st.Streams, stream.ID))
		warnOverAllocation(st)
		return nil
	})
}

func runStreamRm(_ *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		stream, err := findStream(st.Streams, args[0])
		if err != nil {
			return err
		}
		n := len(model.FilterByStream(st.Transactions, stream.ID))
		s.store.Dispatch(state.DeleteStream{ID: stream.ID})
		info("  Deleted stream %s and %d transaction(s)", stream.Name, n)
		return nil
	})
}

func runStreamHealth(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		t := cli.Table{
			Title:   "Stream health",
			Headers: []string{"Stream", "Score", "Status", "Txns"},
		}
		for _, r := range engine.StreamSummaries(st.Streams, st.Transactions) {
			t.Rows = append(t.Rows, []string{
				r.Stream.Name,
				cli.HealthStyle(r.Health).Render(fmt.Sprintf("%d", r.Health)),
				healthLabel(r.Health),
				cli.FormatNumber(int64(r.TxCount)),
			})
		}
		fmt.Println()
		return printTable(t)
	})
}

func healthLabel(score int) string {
	switch {
	case score >= 75:
		return "healthy"
	case score >= 50:
		return "watch"
	default:
		return "at risk"
	}
}
