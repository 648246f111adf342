// Package types defines interfaces for ryu components.
package types

import "context"

// MediaFetcher retrieves a single media entry from the catalog
type MediaFetcher interface {
	// Fetch issues one catalog query; every call goes to the network
	Fetch(ctx context.Context, mediaID int) (*Media, error)
}

// PreferenceWriter is the mutating half of a PreferenceStore, used inside Batch
type PreferenceWriter interface {
	Set(key string, v Value) error
	Remove(key string) error
	Clear() error
}

// PreferenceStore is the persistent key to scalar mapping holding local settings
type PreferenceStore interface {
	PreferenceWriter

	// Get returns the value for key and whether it exists
	Get(key string) (Value, bool)

	// All returns a copy of every entry
	All() (Snapshot, error)

	// Batch runs fn with exclusive access to the store. Changes made through w
	// are persisted together when fn returns nil and discarded otherwise.
	Batch(fn func(w PreferenceWriter) error) error
}

// BackupManager handles export and import of local state
type BackupManager interface {
	// Export writes a new artifact and records it in the registry
	Export(ctx context.Context) (*BackupRecord, error)

	// Import applies the artifact at path to the store
	Import(ctx context.Context, path string, mode ImportMode) error

	// ListAll returns all exported artifacts
	ListAll(ctx context.Context) ([]BackupRecord, error)

	// Clean removes one exported artifact
	Clean(ctx context.Context, id string) error

	// CleanAll removes every exported artifact
	CleanAll(ctx context.Context) error
}
