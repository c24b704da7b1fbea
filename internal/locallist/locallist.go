// Package locallist persists small capped lists (published shares, prompt
// history) as JSON files, the way the browser app keeps them in
// origin-scoped local storage. The lists are machine-local: no sync, no
// server involvement.
package locallist

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// MaxItems is the cap callers enforce before saving. The store itself does
// not trim; it persists exactly what it is given.
const MaxItems = 50

// Fixed filenames under the data directory, one per list.
const (
	PublishedFile = "published.json"
	HistoryFile   = "history.json"
)

// Store persists one list of T at a fixed path.
type Store[T any] struct {
	path string
}

// NewStore returns a store backed by the given file path.
func NewStore[T any](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Load returns the persisted list. Missing or corrupt data yields an empty
// list, never an error: a broken file must not take the feature down.
func (s *Store[T]) Load() []T {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Debug("discarding corrupt list file", "path", s.path, "error", err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Save persists the list best-effort. Failures (quota, permissions, missing
// directory that cannot be created) are logged and swallowed; Save never
// returns an error and never blocks the caller on anything but the write
// itself.
func (s *Store[T]) Save(items []T) {
	raw, err := json.Marshal(items)
	if err != nil {
		slog.Debug("failed to marshal list", "path", s.path, "error", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		slog.Debug("failed to create list directory", "path", s.path, "error", err)
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		slog.Debug("failed to write list file", "path", s.path, "error", err)
	}
}

// Prepend inserts item at the head of items and trims to MaxItems, evicting
// the oldest entries on overflow.
func Prepend[T any](items []T, item T) []T {
	items = append([]T{item}, items...)
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	return items
}
