// Package history provides the gocalc operation journal.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
)

// version is stamped into saved journal files.
const version = "v0.1.0"

// defaultLimit caps retained entries when no limit option is given.
const defaultLimit = 1000

// NowFunc returns the current time.
type NowFunc func() time.Time

// Entry represents one successful arithmetic operation.
type Entry struct {
	Operation string    `json:"operation"`
	OperandA  float64   `json:"operandA"`
	OperandB  float64   `json:"operandB"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// Store manages the operation journal. Entries are kept oldest first and
// trimmed to the configured limit.
type Store struct {
	fs      afero.Fs
	path    string
	limit   int
	now     NowFunc
	entries []Entry
}

// Option configures a Store.
type Option func(*Store)

// WithFs sets a custom filesystem for the store. This is primarily useful
// for testing with in-memory filesystems.
func WithFs(fsys afero.Fs) Option {
	return func(s *Store) {
		s.fs = fsys
	}
}

// WithLimit caps the number of retained entries; the oldest are trimmed
// first. Non-positive limits are ignored.
func WithLimit(limit int) Option {
	return func(s *Store) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithNowFunc sets a custom time source. This is primarily useful for
// testing with deterministic timestamps.
func WithNowFunc(now NowFunc) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a journal store backed by path.
func New(path string, opts ...Option) (*Store, error) {
	store := &Store{
		fs:    afero.NewOsFs(),
		path:  path,
		limit: defaultLimit,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(store)
	}

	// Load existing journal if file exists
	if err := store.load(); err != nil {
		// If file doesn't exist, that's okay - we'll create it on save
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load history: %w", err)
		}
	}

	return store, nil
}

// load reads the journal file into memory.
func (s *Store) load() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}

	var journal struct {
		Entries []Entry `json:"entries"`
	}

	if err := json.Unmarshal(data, &journal); err != nil {
		return fmt.Errorf("failed to unmarshal history data: %w", err)
	}

	s.entries = journal.Entries
	s.trim()

	return nil
}

// Save writes the journal to disk.
func (s *Store) Save() error {
	journal := struct {
		Entries []Entry   `json:"entries"`
		SavedAt time.Time `json:"savedAt"`
		Version string    `json:"version"`
	}{
		Entries: s.entries,
		SavedAt: s.now(),
		Version: version,
	}

	data, err := json.MarshalIndent(journal, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history data: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}

	return nil
}

// Append records a successful operation.
func (s *Store) Append(operation string, a, b, result float64) {
	s.entries = append(s.entries, Entry{
		Operation: operation,
		OperandA:  a,
		OperandB:  b,
		Result:    result,
		Timestamp: s.now(),
	})

	s.trim()
}

func (s *Store) trim() {
	if len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}
}

// Entries returns a copy of all retained entries, oldest first.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

// Recent returns at most n of the newest entries, oldest first.
func (s *Store) Recent(n int) []Entry {
	if n <= 0 || len(s.entries) == 0 {
		return nil
	}

	if n > len(s.entries) {
		n = len(s.entries)
	}

	out := make([]Entry, n)
	copy(out, s.entries[len(s.entries)-n:])

	return out
}

// Len returns the number of retained entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Path returns the journal file path.
func (s *Store) Path() string {
	return s.path
}

// Clear removes all entries and persists the empty journal.
func (s *Store) Clear() error {
	s.entries = nil

	return s.Save()
}

// Stats returns overall statistics from the journal.
func (s *Store) Stats() Stats {
	stats := Stats{
		PerOperation: make(map[string]int),
	}

	for _, entry := range s.entries {
		stats.TotalOperations++
		stats.PerOperation[entry.Operation]++
	}

	if n := len(s.entries); n > 0 {
		last := s.entries[n-1]
		stats.LastEntry = &last
	}

	return stats
}

// Stats represents overall journal statistics.
type Stats struct {
	TotalOperations int            `json:"totalOperations"`
	PerOperation    map[string]int `json:"perOperation"`
	LastEntry       *Entry         `json:"lastEntry,omitempty"`
}
