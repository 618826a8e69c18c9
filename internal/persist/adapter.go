package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/padma/internal/model"

	"go.uber.org/zap"
)

// StorageKey is the key the state blob lives under.
const StorageKey = "padma-app-state"

// ExportVersion tags backup files.
const ExportVersion = "1.0"

// ErrInvalidBackup is wrapped by every import validation failure.
var ErrInvalidBackup = errors.New("invalid backup file")

var requiredBackupKeys = []string{"user", "streams", "transactions"}

// Adapter moves AppState in and out of a Storage.
type Adapter struct {
	storage Storage
	logger  *zap.Logger
	now     func() time.Time
}

// NewAdapter returns an adapter over storage. A nil logger discards logs.
func NewAdapter(storage Storage, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{storage: storage, logger: logger, now: time.Now}
}

// Load returns the persisted state. A missing blob, a blob from another
// schema version or an unreadable blob never fails: the result is a
// migrated or default state.
func (a *Adapter) Load() model.AppState {
	now := a.now()

	raw, ok, err := a.storage.Get(StorageKey)
	if err != nil {
		a.logger.Warn("reading persisted state, using defaults", zap.Error(err))
		return model.DefaultState(now)
	}
	if !ok {
		return model.DefaultState(now)
	}

	var probe struct {
		Meta struct {
			Version string `json:"version"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		a.logger.Warn("parsing persisted state, using defaults", zap.Error(err))
		return model.DefaultState(now)
	}

	if probe.Meta.Version != model.SchemaVersion {
		a.logger.Info("migrating persisted state",
			zap.String("from", probe.Meta.Version),
			zap.String("to", model.SchemaVersion),
		)
		return migrate(raw, now)
	}

	var st model.AppState
	if err := json.Unmarshal(raw, &st); err != nil {
		a.logger.Warn("decoding persisted state, using defaults", zap.Error(err))
		return model.DefaultState(now)
	}
	return normalize(st, now)
}

// Save stamps the save time and schema version on state and writes it.
func (a *Adapter) Save(state model.AppState) error {
	now := a.now()
	state.Meta.LastSavedDate = &now
	state.Meta.Version = model.SchemaVersion

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := a.storage.Set(StorageKey, data); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}

// Clear removes the persisted blob. In-memory state is not touched.
func (a *Adapter) Clear() error {
	if err := a.storage.Delete(StorageKey); err != nil {
		return fmt.Errorf("clearing state: %w", err)
	}
	return nil
}

type backup struct {
	model.AppState
	ExportedAt    time.Time `json:"exportedAt"`
	ExportVersion string    `json:"exportVersion"`
}

// Export writes state as an indented backup document.
func (a *Adapter) Export(state model.AppState, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup{
		AppState:      state,
		ExportedAt:    a.now(),
		ExportVersion: ExportVersion,
	}); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	return nil
}

// BackupFileName returns the backup file name for the given day.
func BackupFileName(day time.Time) string {
	return fmt.Sprintf("padma-backup-%s.json", day.Format("2006-01-02"))
}

// ExportFile writes a backup into dir and returns its path.
func (a *Adapter) ExportFile(state model.AppState, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, BackupFileName(a.now()))

	var buf bytes.Buffer
	if err := a.Export(state, &buf); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return path, nil
}

// Import reads a backup document. It must contain user, streams and
// transactions sections; export metadata is dropped.
func (a *Adapter) Import(r io.Reader) (model.AppState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.AppState{}, fmt.Errorf("reading backup: %w", err)
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return model.AppState{}, fmt.Errorf("%w: not a JSON object: %v", ErrInvalidBackup, err)
	}
	for _, key := range requiredBackupKeys {
		if _, ok := sections[key]; !ok {
			return model.AppState{}, fmt.Errorf("%w: missing %q section", ErrInvalidBackup, key)
		}
	}
	delete(sections, "exportedAt")
	delete(sections, "exportVersion")

	stripped, err := json.Marshal(sections)
	if err != nil {
		return model.AppState{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	var st model.AppState
	if err := json.Unmarshal(stripped, &st); err != nil {
		return model.AppState{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return normalize(st, a.now()), nil
}

// ImportFile imports the backup at path unless ctx is already done.
func (a *Adapter) ImportFile(ctx context.Context, path string) (model.AppState, error) {
	if err := ctx.Err(); err != nil {
		return model.AppState{}, err
	}
	f, err := os.Open(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return model.AppState{}, fmt.Errorf("opening backup: %w", err)
	}
	defer func() { _ = f.Close() }()
	return a.Import(f)
}
