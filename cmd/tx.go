package cmd

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/engine"
	"github.com/theirongolddev/padma/internal/model"
	"github.com/theirongolddev/padma/internal/state"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

var (
	flagTxNote   string
	flagTxTags   string
	flagTxMethod string
	flagTxMood   string
	flagTxDate   string
	flagTxStream string
	flagTxAmount string
	flagTxMonth  string
	flagTxLimit  int
)

var txCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"transaction", "transactions"},
	Short:   "Record and manage transactions",
}

var txAddCmd = &cobra.Command{
	Use:   "add <stream> <amount>",
	Short: "Record a transaction against a stream",
	Args:  cobra.ExactArgs(2),
	RunE:  runTxAdd,
}

var txListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List transactions, newest first",
	Args:    cobra.NoArgs,
	RunE:    runTxList,
}

var txEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxEdit,
}

var txRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a transaction",
	Args:    cobra.ExactArgs(1),
	RunE:    runTxRm,
}

func init() {
	for _, c := range []*cobra.Command{txAddCmd, txEditCmd} {
		c.Flags().StringVar(&flagTxNote, "note", "", "Free-text note")
		c.Flags().StringVar(&flagTxTags, "tags", "", "Comma-separated tags (prefix + marks a return)")
		c.Flags().StringVar(&flagTxMethod, "method", string(model.PaymentCash), "Payment method: "+joinValues(model.PaymentMethods))
		c.Flags().StringVar(&flagTxMood, "mood", "", "Mood: "+joinValues(model.Moods))
		c.Flags().StringVar(&flagTxDate, "date", "", "Date as YYYY-MM-DD (default now)")
	}
	txEditCmd.Flags().StringVar(&flagTxStream, "stream", "", "Move to another stream")
	txEditCmd.Flags().StringVar(&flagTxAmount, "amount", "", "New amount")

	txListCmd.Flags().StringVar(&flagTxStream, "stream", "", "Only this stream")
	txListCmd.Flags().StringVar(&flagTxMonth, "month", "", "Only this month (YYYY-MM)")
	txListCmd.Flags().IntVarP(&flagTxLimit, "limit", "l", 20, "Maximum rows, 0 for all")

	txCmd.AddCommand(txAddCmd, txListCmd, txEditCmd, txRmCmd)
	rootCmd.AddCommand(txCmd)
}

func joinValues[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func parseMethod(s string) (model.PaymentMethod, error) {
	m := model.PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(model.PaymentMethods, m) {
		return "", fmt.Errorf("unknown payment method %q (want one of %s)", s, joinValues(model.PaymentMethods))
	}
	return m, nil
}

func parseMood(s string) (model.Mood, error) {
	m := model.Mood(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return "", nil
	}
	if !slices.Contains(model.Moods, m) {
		return "", fmt.Errorf("unknown mood %q (want one of %s)", s, joinValues(model.Moods))
	}
	return m, nil
}

// parseDate reads a YYYY-MM-DD day in local time, keeping now's clock so
// same-day ordering stays stable.
func parseDate(s string, now time.Time) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), now.Hour(), now.Minute(), now.Second(), 0, now.Location()), nil
}

func runTxAdd(_ *cobra.Command, args []string) error {
	amount, err := cli.ParseAmount(args[1])
	if err != nil {
		return err
	}
	method, err := parseMethod(flagTxMethod)
	if err != nil {
		return err
	}
	mood, err := parseMood(flagTxMood)
	if err != nil {
		return err
	}
	now := time.Now()
	ts := now
	if flagTxDate != "" {
		if ts, err = parseDate(flagTxDate, now); err != nil {
			return err
		}
	}

	return withSession(func(s *session) error {
		st := s.store.State()
		stream, err := findStream(st.Streams, args[0])
		if err != nil {
			return err
		}

		tx := model.NewTransaction(stream.ID, amount, strings.TrimSpace(flagTxNote), cli.ParseTags(flagTxTags), method, now)
		tx.Mood = mood
		tx.Timestamp = ts
		st = s.store.Dispatch(state.AddTransaction{Transaction: tx})

		cur := st.User.Currency
		stream, _ = model.FindStream(st.Streams, stream.ID)
		info("  Recorded %s on %s %s", cli.FormatMoney(amount, cur), stream.Name, cli.ShortID(tx.ID))
		if stream.IsGoal {
			info("  %s withdrawn from %s so far", cli.FormatMoney(engine.StreamSpent(stream, st.Transactions), cur), stream.Name)
		} else {
			info("  %s left in %s", cli.FormatMoney(engine.StreamBalance(stream, st.Transactions), cur), stream.Name)
			if engine.HasExceededBudget(stream, st.Transactions) {
				info("  %s", cli.Warn(stream.Name+" has used its entire budget"))
			}
		}
		return nil
	})
}

func runTxList(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		txs := st.Transactions

		if flagTxStream != "" {
			stream, err := findStream(st.Streams, flagTxStream)
			if err != nil {
				return err
			}
			txs = model.FilterByStream(txs, stream.ID)
		}
		if flagTxMonth != "" {
			txs = slices.DeleteFunc(slices.Clone(txs), func(t model.Transaction) bool {
				return model.MonthKey(t.Timestamp) != flagTxMonth
			})
		}
		if len(txs) == 0 {
			fmt.Println("\n  No transactions.")
			return nil
		}

		txs = slices.Clone(txs)
		sort.SliceStable(txs, func(i, j int) bool { return txs[i].Timestamp.After(txs[j].Timestamp) })
		total := engine.TotalSpent(txs)
		shown := txs
		if flagTxLimit > 0 && len(shown) > flagTxLimit {
			shown = shown[:flagTxLimit]
		}

		cur := st.User.Currency
		t := cli.Table{
			Title:   fmt.Sprintf("Transactions (%d of %d)", len(shown), len(txs)),
			Headers: []string{"ID", "Date", "Stream", "Amount", "Method", "Note", "Tags"},
		}
		for _, tx := range shown {
			note := tx.Note
			if tx.IsRecurring {
				note = "↻ " + note
			}
			t.Rows = append(t.Rows, []string{
				cli.ShortID(tx.ID),
				cli.FormatDate(tx.Timestamp),
				streamName(st.Streams, tx.StreamID),
				cli.FormatMoney(tx.Amount, cur),
				string(tx.PaymentMethod),
				note,
				cli.FormatTags(tx.Tags),
			})
		}
		t.Rows = append(t.Rows, cli.SeparatorRow, []string{"", "", "Total", cli.FormatMoney(total, cur), "", "", ""})
		fmt.Println()
		return printTable(t)
	})
}

func runTxEdit(cmd *cobra.Command, args []string) error {
	var patch model.TransactionPatch
	flags := cmd.Flags()

	if flags.Changed("amount") {
		amount, err := cli.ParseAmount(flagTxAmount)
		if err != nil {
			return err
		}
		patch.Amount = &amount
	}
	if flags.Changed("note") {
		note := strings.TrimSpace(flagTxNote)
		patch.Note = &note
	}
	if flags.Changed("tags") {
		tags := cli.ParseTags(flagTxTags)
		patch.Tags = &tags
	}
	if flags.Changed("method") {
		method, err := parseMethod(flagTxMethod)
		if err != nil {
			return err
		}
		patch.PaymentMethod = &method
	}
	if flags.Changed("mood") {
		mood, err := parseMood(flagTxMood)
		if err != nil {
			return err
		}
		patch.Mood = &mood
	}
	if flags.Changed("date") {
		ts, err := parseDate(flagTxDate, time.Now())
		if err != nil {
			return err
		}
		patch.Timestamp = &ts
	}

	return withSession(func(s *session) error {
		st := s.store.State()
		tx, err := findTransaction(st.Transactions, args[0])
		if err != nil {
			return err
		}
		if flags.Changed("stream") {
			stream, err := findStream(st.Streams, flagTxStream)
			if err != nil {
				return err
			}
			patch.StreamID = &stream.ID
		}
		if patch == (model.TransactionPatch{}) {
			return fmt.Errorf("nothing to change")
		}
		s.store.Dispatch(state.UpdateTransaction{ID: tx.ID, Patch: patch})
		info("  Updated transaction %s", cli.ShortID(tx.ID))
		return nil
	})
}

func runTxRm(_ *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		tx, err := findTransaction(st.Transactions, args[0])
		if err != nil {
			return err
		}
		s.store.Dispatch(state.DeleteTransaction{ID: tx.ID})
		info("  Deleted %s from %s", cli.FormatMoney(tx.Amount, st.User.Currency), streamName(st.Streams, tx.StreamID))
		return nil
	})
}
