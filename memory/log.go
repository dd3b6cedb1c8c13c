package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Entry is one recorded evolution branch: the evaluated version, the version
// it was mutated from, its score and the rationale for recording it.
type Entry struct {
	BranchID  string  `json:"branch_id"`
	ParentID  string  `json:"parent_id"`
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

// Log is an append-only ordered record of evaluated branches persisted as a
// single JSON array. Each append reads the whole file, extends the array and
// rewrites it in full, so the on-disk form is always one valid JSON document.
// That persistence scheme is not safe under concurrent writers; a mutex
// serializes all appends through one Log instance, and distinct Log instances
// must not share a path.
type Log struct {
	mu   sync.Mutex
	path string
}

// NewLog opens (or creates) the log at path. A missing file is initialized to
// an empty array.
func NewLog(path string) (*Log, error) {
	l := &Log{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := l.write([]Entry{}); err != nil {
			return nil, fmt.Errorf("initialize memory log: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat memory log: %w", err)
	}
	return l, nil
}

// Path returns the log's file path.
func (l *Log) Path() string { return l.path }

// Append records one entry at the end of the log.
func (l *Log) Append(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.read()
	if err != nil {
		return err
	}
	entries = append(entries, e)
	return l.write(entries)
}

// Entries returns all recorded entries in append order.
func (l *Log) Entries() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

func (l *Log) read() ([]Entry, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read memory log: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode memory log: %w", err)
	}
	return entries, nil
}

func (l *Log) write(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode memory log: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write memory log: %w", err)
	}
	return nil
}
