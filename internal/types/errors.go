// Package types defines custom error types for ryu.
package types

import "fmt"

// FetchErrorKind classifies catalog fetch failures
type FetchErrorKind string

const (
	FetchTransport         FetchErrorKind = "transport"
	FetchEmptyResponse     FetchErrorKind = "empty_response"
	FetchMalformedResponse FetchErrorKind = "malformed_response"
)

// ErrFetch indicates a catalog fetch failed
type ErrFetch struct {
	Kind    FetchErrorKind
	MediaID int
	Err     error
}

func (e ErrFetch) Error() string {
	switch e.Kind {
	case FetchEmptyResponse:
		return fmt.Sprintf("catalog returned no data for media %d", e.MediaID)
	case FetchMalformedResponse:
		if e.Err != nil {
			return fmt.Sprintf("invalid catalog response for media %d: %v", e.MediaID, e.Err)
		}
		return fmt.Sprintf("invalid catalog response for media %d", e.MediaID)
	}
	return fmt.Sprintf("failed to reach catalog for media %d: %v", e.MediaID, e.Err)
}

func (e ErrFetch) Unwrap() error { return e.Err }

// BackupOp names the backup operation that failed
type BackupOp string

const (
	BackupExport BackupOp = "export"
	BackupImport BackupOp = "import"
)

// ErrBackup indicates a backup export or import failed
type ErrBackup struct {
	Op     BackupOp
	Reason string
	Err    error
}

func (e ErrBackup) Error() string {
	msg := "failed to create backup"
	if e.Op == BackupImport {
		msg = "failed to import backup"
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e ErrBackup) Unwrap() error { return e.Err }

// ErrPurge indicates at least one entry could not be removed.
// Entry and Err describe the first failure.
type ErrPurge struct {
	Target PurgeTarget
	Entry  string
	Failed int
	Err    error
}

func (e ErrPurge) Error() string {
	return fmt.Sprintf("failed to clear %s (%d entries left, first %s): %v", e.Target, e.Failed, e.Entry, e.Err)
}

func (e ErrPurge) Unwrap() error { return e.Err }

// ErrUnknownSetting indicates a preference key is not part of the schema
type ErrUnknownSetting struct {
	Key        string
	Suggestion string
}

func (e ErrUnknownSetting) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown setting %q (did you mean %q?)", e.Key, e.Suggestion)
	}
	return fmt.Sprintf("unknown setting %q", e.Key)
}

// ErrInvalidSetting indicates a value does not satisfy the setting's constraint
type ErrInvalidSetting struct {
	Key    string
	Value  string
	Reason string
}

func (e ErrInvalidSetting) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Key, e.Reason)
}

// ErrConfigInvalid indicates a configuration error
type ErrConfigInvalid struct {
	Path   string
	Reason string
}

func (e ErrConfigInvalid) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Path, e.Reason)
}

// ErrAPIError indicates an error from an external API
type ErrAPIError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e ErrAPIError) Error() string {
	return fmt.Sprintf("%s API error (%d): %s", e.Service, e.StatusCode, e.Message)
}

// ErrBackupNotFound indicates no exported backup matches the given ID
type ErrBackupNotFound struct {
	ID string
}

func (e ErrBackupNotFound) Error() string {
	return fmt.Sprintf("no backup found for: %s", e.ID)
}
