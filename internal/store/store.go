// Package store persists a Timesheet to disk as JSON under the project's
// .trk directory. The persisted shape mirrors the in-memory model exactly,
// so a save/load round-trip reproduces an identical sheet.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fakeyudi/trk/internal/timesheet"
)

// ErrNoTimesheet is returned by Load when no timesheet file exists on disk.
var ErrNoTimesheet = errors.New("no timesheet")

// Store persists a Timesheet.
type Store interface {
	Save(t *timesheet.Timesheet) error
	Load() (*timesheet.Timesheet, error) // returns ErrNoTimesheet if none exists
	Delete() error
	Path() string
}

// diskStore is the concrete Store that writes to <root>/.trk/timesheet.json.
type diskStore struct {
	path string
}

// NewStore returns a Store rooted at root (usually the repository root).
// Failure to create the .trk directory is fatal for the whole interaction,
// so the error is returned here rather than deferred to the first Save.
func NewStore(root string) (Store, error) {
	dir := filepath.Join(root, ".trk")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating .trk directory: %w", err)
	}
	return &diskStore{path: filepath.Join(dir, "timesheet.json")}, nil
}

func (d *diskStore) Path() string { return d.path }

// Save marshals t to JSON and writes it atomically via a temp file + os.Rename.
func (d *diskStore) Save(t *timesheet.Timesheet) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to persist timesheet: %w", err)
	}

	// Write to a temp file in the same directory so os.Rename is atomic.
	tmp, err := os.CreateTemp(filepath.Dir(d.path), "timesheet-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to persist timesheet: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to persist timesheet: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to persist timesheet: %w", err)
	}

	if err = os.Rename(tmpName, d.path); err != nil {
		return fmt.Errorf("failed to persist timesheet: %w", err)
	}
	return nil
}

// Load reads and unmarshals the timesheet file.
// Returns ErrNoTimesheet if the file does not exist.
func (d *diskStore) Load() (*timesheet.Timesheet, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoTimesheet
		}
		return nil, fmt.Errorf("failed to read timesheet: %w", err)
	}

	var t timesheet.Timesheet
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse timesheet: %w", err)
	}
	return &t, nil
}

// Delete removes the timesheet file from disk.
func (d *diskStore) Delete() error {
	if err := os.Remove(d.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete timesheet: %w", err)
	}
	return nil
}
