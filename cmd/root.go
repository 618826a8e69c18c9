// Package cmd implements the padma CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/padma/internal/config"
	plog "github.com/theirongolddev/padma/internal/log"
	"github.com/theirongolddev/padma/internal/persist"
	"github.com/theirongolddev/padma/internal/state"
	"github.com/theirongolddev/padma/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagDataDir string
	flagBackend string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:          "padma",
	Short:        "Personal finance tracker",
	Long:         "Allocate your monthly income into streams, record spending and see where it goes.",
	SilenceUsage: true,
	RunE:         runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default $XDG_DATA_HOME/padma)")
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Storage backend: sqlite, file or memory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// session bundles everything a command needs to read and change state.
type session struct {
	cfg     config.Config
	logger  *zap.Logger
	adapter *persist.Adapter
	store   *state.Store
	closers []func() error
}

// openSession loads config, applies flag overrides, opens the configured
// storage backend and seeds a store from the persisted state.
func openSession() (*session, error) {
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if flagBackend != "" {
		cfg.General.Backend = flagBackend
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &session{cfg: cfg}

	s.logger, err = plog.New(cfg.Log.Level, cfg.LogPath())
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, func() error {
		_ = s.logger.Sync()
		return nil
	})

	storage, err := s.openStorage()
	if err != nil {
		s.close()
		return nil, err
	}

	s.adapter = persist.NewAdapter(storage, s.logger)
	s.store = state.NewStore(s.adapter.Load(),
		state.WithSaver(s.adapter),
		state.WithLogger(s.logger),
	)
	s.logger.Debug("session opened",
		zap.String("backend", cfg.General.Backend),
		zap.String("data_dir", cfg.DataDir()),
	)
	return s, nil
}

func (s *session) openStorage() (persist.Storage, error) {
	dir := s.cfg.DataDir()
	switch s.cfg.General.Backend {
	case config.BackendMemory:
		return persist.NewMemoryStorage(), nil
	case config.BackendFile:
		return persist.NewFileStorage(dir)
	default:
		kv, err := store.Open(filepath.Join(dir, store.DBFile))
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		s.closers = append(s.closers, kv.Close)
		return kv, nil
	}
}

// close releases storage and flushes the logger, newest first.
func (s *session) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]()
	}
	s.closers = nil
}

// withSession runs fn against a freshly opened session.
func withSession(fn func(s *session) error) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()
	return fn(s)
}

// info prints to stderr unless --quiet is set.
func info(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
