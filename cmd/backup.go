package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/theirongolddev/padma/internal/state"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagExportDir string
	flagExportOut string
	flagYes       bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a JSON backup of all data",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data with a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start over with an empty state",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored state from disk",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDir, "dir", ".", "Directory for padma-backup-YYYY-MM-DD.json")
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Write to this file instead (- for stdout)")
	for _, c := range []*cobra.Command{importCmd, resetCmd, clearCmd} {
		c.Flags().BoolVarP(&flagYes, "yes", "y", false, "Don't ask for confirmation")
	}
	rootCmd.AddCommand(exportCmd, importCmd, resetCmd, clearCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		st := s.store.State()
		switch flagExportOut {
		case "":
			path, err := s.adapter.ExportFile(st, flagExportDir)
			if err != nil {
				return err
			}
			info("  Exported to %s", path)
			return nil
		case "-":
			return s.adapter.Export(st, os.Stdout)
		}

		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		if err := s.adapter.Export(st, f); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing export file: %w", err)
		}
		info("  Exported to %s", flagExportOut)
		return nil
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	if !confirm("Import replaces all current data. Continue?") {
		return nil
	}
	return withSession(func(s *session) error {
		st, err := s.adapter.ImportFile(contextOf(cmd), args[0])
		if err != nil {
			return err
		}
		st = s.store.Dispatch(state.LoadState{State: st})
		s.logger.Info("imported backup", zap.String("path", args[0]), zap.Int("transactions", len(st.Transactions)))
		info("  Imported %d stream(s) and %d transaction(s)", len(st.Streams), len(st.Transactions))
		return nil
	})
}

func runReset(_ *cobra.Command, _ []string) error {
	if !confirm("Reset wipes all of your data. Continue?") {
		return nil
	}
	return withSession(func(s *session) error {
		s.store.Dispatch(state.ResetApp{})
		info("  Reset. Run `padma setup` to start again.")
		return nil
	})
}

func runClear(_ *cobra.Command, _ []string) error {
	if !confirm("Clear removes the stored state from disk. Continue?") {
		return nil
	}
	return withSession(func(s *session) error {
		if err := s.adapter.Clear(); err != nil {
			return err
		}
		info("  Stored state cleared.")
		return nil
	})
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
