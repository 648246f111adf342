// Package backup exports the preference store to backup files and imports them back.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mydehq/ryu/internal/types"
	"github.com/mydehq/ryu/internal/util"
)

const (
	RegistryFileName = "backup_registry.json"
	Extension        = ".ryubackup"

	// fileTimeLayout renders names like 15_October_2026-0930
	fileTimeLayout = "02_January_2006-1504"
)

// Manager handles backup operations
type Manager struct {
	store        types.PreferenceStore
	dir          string // Where exported artifacts are written
	registryPath string // <dir>/backup_registry.json
	events       types.EventHandler
	now          func() time.Time

	// mu keeps export and import exclusive per manager
	mu sync.Mutex
}

var _ types.BackupManager = (*Manager)(nil)

// Option configures a Manager
type Option func(*Manager)

// WithEvents sets the handler notified about progress and data resets
func WithEvents(h types.EventHandler) Option {
	return func(m *Manager) {
		m.events = h
	}
}

// WithClock overrides the time source used for file names and timestamps
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// New creates a backup manager for store writing into dir
func New(store types.PreferenceStore, dir string, opts ...Option) *Manager {
	m := &Manager{
		store:        store,
		dir:          dir,
		registryPath: filepath.Join(dir, RegistryFileName),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dir returns the directory exported artifacts are written to
func (m *Manager) Dir() string {
	return m.dir
}

// Export writes a new backup file and records it in the registry
func (m *Manager) Export(ctx context.Context) (*types.BackupRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update backup registry: %w", err)
	}

	now := m.now()
	a, data, err := encode(m.store, now)
	if err != nil {
		return nil, err
	}

	path := m.nextPath(now)
	m.emit(types.EventProgress, "Writing backup: "+filepath.Base(path), nil)
	if err := util.WriteFileAtomic(path, data, 0644); err != nil {
		return nil, types.ErrBackup{Op: types.BackupExport, Reason: ReasonWrite, Err: err}
	}

	record := types.BackupRecord{
		ID:        a.ID,
		Path:      path,
		Keys:      len(a.Preferences),
		Timestamp: now,
	}
	if err := m.saveRegistry(append(records, record)); err != nil {
		return nil, fmt.Errorf("failed to update backup registry: %w", err)
	}

	m.emit(types.EventSuccess, "Backup created: "+path, record)
	return &record, nil
}

// Import applies the backup file at path using mode
func (m *Manager) Import(ctx context.Context, path string, mode types.ImportMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	apply, msg := Replace, "Backup imported successfully and current data replaced!"
	switch mode {
	case types.ImportReplace:
	case types.ImportMerge:
		apply, msg = Merge, "Backup imported successfully and merged with current data!"
	default:
		return fmt.Errorf("unknown import mode: %s", mode)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return types.ErrBackup{Op: types.BackupImport, Reason: ReasonRead, Err: err}
	}

	m.emit(types.EventProgress, "Importing backup: "+filepath.Base(path), mode)
	if err := apply(m.store, data); err != nil {
		return err
	}

	m.emit(types.EventSuccess, msg, mode)
	m.emit(types.EventDataReset, "App data reset", mode)
	return nil
}

// Clean removes the exported backup with the given ID or file name
func (m *Manager) Clean(ctx context.Context, id string) error {
	records, err := m.ListAll(ctx)
	if err != nil {
		return err
	}

	var kept []types.BackupRecord
	var found *types.BackupRecord
	for i, r := range records {
		if found == nil && (r.ID == id || filepath.Base(r.Path) == id) {
			found = &records[i]
			continue
		}
		kept = append(kept, r)
	}
	if found == nil {
		return types.ErrBackupNotFound{ID: id}
	}

	if err := os.Remove(found.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove backup file: %w", err)
	}
	m.emit(types.EventInfo, "Removed: "+found.Path, nil)
	return m.saveRegistry(kept)
}

// CleanAll removes every exported backup recorded in the registry
func (m *Manager) CleanAll(ctx context.Context) error {
	records, err := m.ListAll(ctx)
	if err != nil {
		return err
	}

	var failed []types.BackupRecord
	for _, r := range records {
		if err := os.Remove(r.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			m.emit(types.EventWarning, fmt.Sprintf("Failed to remove %s: %v", r.Path, err), nil)
			failed = append(failed, r)
		}
	}

	if err := m.saveRegistry(failed); err != nil {
		return err
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to remove %d backup files", len(failed))
	}
	return nil
}

// ListAll returns all backup records from the registry
func (m *Manager) ListAll(ctx context.Context) ([]types.BackupRecord, error) {
	data, err := os.ReadFile(m.registryPath)
	if os.IsNotExist(err) {
		return []types.BackupRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	var records []types.BackupRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse registry %s: %w", m.registryPath, err)
	}
	return records, nil
}

// nextPath picks a file name for an export at t without overwriting an older one
func (m *Manager) nextPath(t time.Time) string {
	base := t.Format(fileTimeLayout)
	path := filepath.Join(m.dir, base+Extension)
	for i := 2; util.Exists(path); i++ {
		path = filepath.Join(m.dir, fmt.Sprintf("%s_%d%s", base, i, Extension))
	}
	return path
}

func (m *Manager) saveRegistry(records []types.BackupRecord) error {
	if records == nil {
		records = []types.BackupRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return util.WriteFileAtomic(m.registryPath, data, 0644)
}

func (m *Manager) emit(t types.EventType, msg string, data any) {
	if m.events != nil {
		m.events(types.Event{Type: t, Message: msg, Data: data})
	}
}

// IsBackupFile reports whether name looks like an exported backup
func IsBackupFile(name string) bool {
	return strings.HasSuffix(name, Extension)
}
