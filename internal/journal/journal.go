// Package journal provides an append-only activity log.
// Each successful timesheet mutation is recorded as one JSON line in
// .trk/log.jsonl, giving an audit trail alongside the serialized sheet.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event type constants.
const (
	EventSheetInit      = "sheet_init"
	EventSessionStarted = "session_started"
	EventSessionEnded   = "session_ended"
	EventPaused         = "paused"
	EventResumed        = "resumed"
	EventNoteAdded      = "note_added"
	EventCommitRecorded = "commit_recorded"
	EventBranchTouched  = "branch_touched"
	EventSheetCleared   = "sheet_cleared"
)

// Entry represents a single structured event written to the journal.
type Entry struct {
	Time      time.Time `json:"time"`
	Event     string    `json:"event"`
	SessionID string    `json:"session,omitempty"`
	User      string    `json:"user,omitempty"`
	Hash      string    `json:"hash,omitempty"`
	Branch    string    `json:"branch,omitempty"`
	Note      string    `json:"note,omitempty"`
	Timestamp int64     `json:"timestamp,omitempty"`
}

// Journal writes append-only JSONL entries to a log file.
type Journal struct {
	path string
	mu   sync.Mutex
}

// New creates a Journal that writes to .trk/log.jsonl inside root.
// Does not truncate an existing log file.
func New(root string) (*Journal, error) {
	dir := filepath.Join(root, ".trk")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create .trk directory: %w", err)
	}
	return &Journal{path: filepath.Join(dir, "log.jsonl")}, nil
}

// Append writes a single Entry as one JSON line to the log file.
// If entry.Time is the zero value, it is set to time.Now().UTC().
func (j *Journal) Append(entry Entry) error {
	if entry.Time.IsZero() {
		entry.Time = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal journal entry: %w", err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write journal entry: %w", err)
	}
	return nil
}

// ReadAll reads and parses all entries from the journal.
// Returns an empty slice (not an error) if the file does not exist.
func (j *Journal) ReadAll() ([]Entry, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("parse journal line %d: %w", lineNum, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return entries, nil
}
