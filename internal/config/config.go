// Package config loads padma settings from a TOML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendSQLite, BackendFile, BackendMemory}

// LogLevels lists the accepted log level names.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all padma configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds storage and locale preferences.
type GeneralConfig struct {
	DataDir  string `toml:"data_dir,omitempty"`
	Backend  string `toml:"backend"`
	Currency string `toml:"currency"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `toml:"level"`
	// File is relative to the data dir unless absolute.
	File string `toml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Backend:  BackendSQLite,
			Currency: "INR",
		},
		Appearance: AppearanceConfig{
			Theme: "lotus",
		},
		Log: LogConfig{
			Level: "info",
			File:  "padma.log",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "padma")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "padma")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultDataDir returns the XDG data directory used when data_dir is unset.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "padma")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "padma")
}

// DataDir returns the configured data dir or the default one.
func (c Config) DataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	return DefaultDataDir()
}

// LogPath returns the absolute log file path, or "" when file logging is off.
func (c Config) LogPath() string {
	if c.Log.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(c.DataDir(), c.Log.File)
}

// LoadEnv reads a .env file from the working directory into the process
// environment if one exists. Variables already set win.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies PADMA_* environment overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PADMA_DATA_DIR"); v != "" {
		cfg.General.DataDir = v
	}
	if v := os.Getenv("PADMA_BACKEND"); v != "" {
		cfg.General.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("PADMA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
}

// Validate reports settings no component can act on.
func (c Config) Validate() error {
	if !slices.Contains(Backends, c.General.Backend) {
		return fmt.Errorf("unknown backend %q (want one of %s)", c.General.Backend, strings.Join(Backends, ", "))
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("unknown log level %q (want one of %s)", c.Log.Level, strings.Join(LogLevels, ", "))
	}
	if c.General.Currency == "" {
		return fmt.Errorf("currency must not be empty")
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
