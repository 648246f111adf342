// Package purge empties the cache and downloads directories.
package purge

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mydehq/ryu/internal/types"
)

// Failure records one entry that could not be removed
type Failure struct {
	Entry string
	Err   error
}

// Result summarizes a purge
type Result struct {
	Target  types.PurgeTarget
	Dir     string
	Removed []string
	Failed  []Failure
}

// Purger removes every direct entry of a directory
type Purger struct {
	// Remove deletes one entry recursively; defaults to os.RemoveAll
	Remove func(path string) error

	Events types.EventHandler
}

// New returns a Purger that removes entries with os.RemoveAll
func New(events types.EventHandler) *Purger {
	return &Purger{Remove: os.RemoveAll, Events: events}
}

// Purge attempts to remove every entry of dir, continuing past failures.
// It succeeds only when every entry was removed. A missing dir is already empty.
func (p *Purger) Purge(ctx context.Context, target types.PurgeTarget, dir string) (Result, error) {
	res := Result{Target: target, Dir: dir}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return res, nil
	}
	if err != nil {
		return res, types.ErrPurge{Target: target, Entry: dir, Failed: 1, Err: err}
	}

	remove := p.Remove
	if remove == nil {
		remove = os.RemoveAll
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if err := ctx.Err(); err != nil {
			res.Failed = append(res.Failed, Failure{Entry: path, Err: err})
			continue
		}
		if err := remove(path); err != nil {
			res.Failed = append(res.Failed, Failure{Entry: path, Err: err})
			p.emit(types.EventWarning, fmt.Sprintf("Failed to remove: %s", path))
			continue
		}
		res.Removed = append(res.Removed, path)
		p.emit(types.EventProgress, "Removed: "+path)
	}

	if len(res.Failed) > 0 {
		first := res.Failed[0]
		return res, types.ErrPurge{Target: target, Entry: first.Entry, Failed: len(res.Failed), Err: first.Err}
	}
	return res, nil
}

func (p *Purger) emit(t types.EventType, msg string) {
	if p.Events != nil {
		p.Events(types.Event{Type: t, Message: msg})
	}
}
