package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/padma/internal/cli"
	"github.com/theirongolddev/padma/internal/model"
	"github.com/theirongolddev/padma/internal/recurring"
	"github.com/theirongolddev/padma/internal/state"

	"github.com/spf13/cobra"
)

var (
	flagTplFrequency string
	flagTplNote      string
	flagTplTags      string
	flagTplApply     bool
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"templates", "tpl"},
	Short:   "Manage recurring transaction templates",
}

var templateAddCmd = &cobra.Command{
	Use:   "add <name> <stream> <amount>",
	Short: "Create a template",
	Args:  cobra.ExactArgs(3),
	RunE:  runTemplateAdd,
}

var templateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List templates",
	Args:    cobra.NoArgs,
	RunE:    runTemplateList,
}

var templateUseCmd = &cobra.Command{
	Use:   "use <template>",
	Short: "Record a transaction from a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateUse,
}

var templateDueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show templates that are due",
	Args:  cobra.NoArgs,
	RunE:  runTemplateDue,
}

var templateRmCmd = &cobra.Command{
	Use:     "rm <template>",
	Aliases: []string{"delete"},
	Short:   "Delete a template",
	Args:    cobra.ExactArgs(1),
	RunE:    runTemplateRm,
}

func init() {
	templateAddCmd.Flags().StringVarP(&flagTplFrequency, "frequency", "f", string(model.FrequencyMonthly), "daily, weekly, monthly or yearly")
	templateAddCmd.Flags().StringVar(&flagTplNote, "note", "", "Note copied to every transaction")
	templateAddCmd.Flags().StringVar(&flagTplTags, "tags", "", "Comma-separated tags")
	templateDueCmd.Flags().BoolVar(&flagTplApply, "apply", false, "Record every due template now")

	templateCmd.AddCommand(templateAddCmd, templateListCmd, templateUseCmd, templateDueCmd, templateRmCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateAdd(_ *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return fmt.Errorf("template name must not be empty")
	}
	amount, err := cli.ParseAmount(args[2])
	if err != nil {
		return err
	}
	freq := model.Frequency(strings.ToLower(flagTplFrequency))
	if _, err := recurring.CheckerFor(freq); err != nil {
		return err
	}

	return withSession(func(s *session) error {
		st := s.store.State()
		stream, err := findStream(st.Streams, args[1])
		if err != nil {
			return err
		}
		tpl := model.NewTemplate(name, stream.ID, amount, freq, time.Now())
		tpl.Note = strings.TrimSpace(flagTplNote)
		tpl.Tags = cli.ParseTags(flagTplTags)
		s.store.Dispatch(state.AddTemplate{Template: tpl})
		info("  Added %s template %s (%s on %s)", freq, tpl.Name, cli.FormatMoney(amount, st.User.Currency), stream.Name)
		return nil
	})
}

func templateTable(st model.AppState, tpls []model.Template, now time.Time) cli.Table {
	t := cli.Table{
		Headers: []string{"ID", "Name", "Stream", "Amount", "Every", "Used", "Last used", "Due"},
	}
	for _, tpl := range tpls {
		last := "never"
		if tpl.LastUsed != nil {
			last = cli.FormatDate(*tpl.LastUsed)
		}
		due := ""
		switch {
		case !tpl.IsActive:
			due = cli.Muted("paused")
		case recurring.IsDue(tpl, now):
			due = cli.Warn("due")
		}
		t.Rows = append(t.Rows, []string{
			cli.ShortID(tpl.ID),
			tpl.Name,
			streamName(st.Streams, tpl.StreamID),
			cli.FormatMoney(tpl.Amount, st.User.Currency),
			string(tpl.Frequency),
			fmt.Sprintf("%d×", tpl.UsageCount),
			last,
			due,
		})
	}
	return t
}

func runTemplateList(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		if len(st.Templates) == 0 {
			fmt.Println("\n  No templates. Create one with `padma template add <name> <stream> <amount>`.")
			return nil
		}
		t := templateTable(st, st.Templates, time.Now())
		t.Title = "Templates"
		fmt.Println()
		return printTable(t)
	})
}

// useTemplate records tpl at now and returns the new transaction.
func useTemplate(s *session, tpl model.Template, now time.Time) model.Transaction {
	tx, patch := recurring.Apply(tpl, now)
	s.store.Dispatch(state.AddTransaction{Transaction: tx})
	s.store.Dispatch(state.UpdateTemplate{ID: tpl.ID, Patch: patch})
	return tx
}

func runTemplateUse(_ *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		tpl, err := findTemplate(st.Templates, args[0])
		if err != nil {
			return err
		}
		tx := useTemplate(s, tpl, time.Now())
		info("  Recorded %s on %s from %s", cli.FormatMoney(tx.Amount, st.User.Currency),
			streamName(st.Streams, tx.StreamID), tpl.Name)
		return nil
	})
}

func runTemplateDue(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		now := time.Now()
		due := recurring.DueTemplates(st.Templates, now)
		if len(due) == 0 {
			fmt.Println("\n  Nothing is due.")
			return nil
		}
		if !flagTplApply {
			t := templateTable(st, due, now)
			t.Title = "Due templates"
			fmt.Println()
			return printTable(t)
		}
		for _, tpl := range due {
			tx := useTemplate(s, tpl, now)
			info("  Recorded %s from %s", cli.FormatMoney(tx.Amount, st.User.Currency), tpl.Name)
		}
		return nil
	})
}

func runTemplateRm(_ *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		tpl, err := findTemplate(s.store.State().Templates, args[0])
		if err != nil {
			return err
		}
		s.store.Dispatch(state.DeleteTemplate{ID: tpl.ID})
		info("  Deleted template %s", tpl.Name)
		return nil
	})
}
