package backup

import (
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mydehq/ryu/internal/prefs"
	"github.com/mydehq/ryu/internal/types"
)

// Reasons reported by ErrBackup
const (
	ReasonInvalidFormat = "invalid backup file format"
	ReasonApply         = "could not update preferences"
	ReasonRead          = "could not read backup file"
	ReasonWrite         = "could not write backup file"
	ReasonEncode        = "could not encode preferences"
)

// Artifact is the serialized form of the preference store
type Artifact struct {
	ID          string                 `json:"id"`
	CreatedAt   time.Time              `json:"created_at"`
	Preferences map[string]prefs.Entry `json:"preferences"`
}

// Export serializes every entry of store into a backup artifact
func Export(store types.PreferenceStore) ([]byte, error) {
	_, data, err := encode(store, time.Now())
	return data, err
}

func encode(store types.PreferenceStore, now time.Time) (*Artifact, []byte, error) {
	fail := func(err error) error {
		return types.ErrBackup{Op: types.BackupExport, Reason: ReasonEncode, Err: err}
	}

	snap, err := store.All()
	if err != nil {
		return nil, nil, fail(err)
	}
	entries, err := prefs.EncodeEntries(snap)
	if err != nil {
		return nil, nil, fail(err)
	}

	a := &Artifact{
		ID:          uuid.NewString(),
		CreatedAt:   now.UTC(),
		Preferences: entries,
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, nil, fail(err)
	}
	return a, data, nil
}

// Decode validates an artifact completely and returns its entries
func Decode(data []byte) (types.Snapshot, error) {
	invalid := func(err error) error {
		return types.ErrBackup{Op: types.BackupImport, Reason: ReasonInvalidFormat, Err: err}
	}

	if !utf8.Valid(data) {
		return nil, invalid(nil)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, invalid(err)
	}
	if a.Preferences == nil {
		return nil, invalid(nil)
	}

	snap, err := prefs.DecodeEntries(a.Preferences)
	if err != nil {
		return nil, invalid(err)
	}
	return snap, nil
}

// Replace discards the store's contents and installs the artifact's entries.
// An invalid artifact leaves the store untouched.
func Replace(store types.PreferenceStore, data []byte) error {
	snap, err := Decode(data)
	if err != nil {
		return err
	}

	err = store.Batch(func(w types.PreferenceWriter) error {
		if err := w.Clear(); err != nil {
			return err
		}
		return install(w, snap)
	})
	if err != nil {
		return types.ErrBackup{Op: types.BackupImport, Reason: ReasonApply, Err: err}
	}
	return nil
}

// Merge writes the artifact's entries over the store. Keys only in the store
// are kept; on conflict the artifact wins.
func Merge(store types.PreferenceStore, data []byte) error {
	snap, err := Decode(data)
	if err != nil {
		return err
	}

	err = store.Batch(func(w types.PreferenceWriter) error {
		return install(w, snap)
	})
	if err != nil {
		return types.ErrBackup{Op: types.BackupImport, Reason: ReasonApply, Err: err}
	}
	return nil
}

func install(w types.PreferenceWriter, snap types.Snapshot) error {
	for k, v := range snap {
		if err := w.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}
