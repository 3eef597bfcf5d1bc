// Package store persists selection snapshots as a JSON record on disk.
// The record lives under a fixed filename and expires after a configurable
// window; expired or unreadable records are purged and treated as absent.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Record is the on-disk form of a selection snapshot. Page keys are strings
// because the record is a JSON object keyed by page number.
type Record struct {
	SelectedIDs    []int            `json:"selectedIds"`
	PageSelections map[string][]int `json:"pageSelections"`
	TotalSelected  int              `json:"totalSelected"`
	Timestamp      int64            `json:"timestamp"` // epoch milliseconds
}

const (
	// recordFile is the fixed storage key for the selection record.
	recordFile = "selection.json"

	// DefaultTTL is the expiry window applied when none is configured.
	DefaultTTL = 24 * time.Hour
)

// Store reads and writes the selection record for one data directory.
type Store struct {
	path string
	ttl  time.Duration
	now  func() time.Time
}

// New builds a Store rooted at dir. A non-positive ttl uses DefaultTTL.
func New(dir string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		path: filepath.Join(dir, recordFile),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Path returns the record's location on disk.
func (s *Store) Path() string {
	return s.path
}

// Save writes the record, stamping it with the current time. The caller owns
// failure policy; selection state treats a failed write as non-fatal.
func (s *Store) Save(rec Record) error {
	rec.Timestamp = s.now().UnixMilli()
	if rec.SelectedIDs == nil {
		rec.SelectedIDs = []int{}
	}
	if rec.PageSelections == nil {
		rec.PageSelections = map[string][]int{}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	bytes, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}

	if err := os.WriteFile(s.path, bytes, 0o644); err != nil {
		return fmt.Errorf("write selection: %w", err)
	}
	return nil
}

// Load reads the stored record. The second return is false when the record is
// absent, expired, or corrupt; expired and corrupt records are removed so the
// next startup does not trip over them again.
func (s *Store) Load() (Record, bool) {
	bytes, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.Remove()
		}
		return Record{}, false
	}

	var rec Record
	if err := json.Unmarshal(bytes, &rec); err != nil {
		s.Remove()
		return Record{}, false
	}
	if rec.Timestamp <= 0 {
		s.Remove()
		return Record{}, false
	}

	age := s.now().Sub(time.UnixMilli(rec.Timestamp))
	if age > s.ttl {
		s.Remove()
		return Record{}, false
	}
	return rec, true
}

// Remove deletes the stored record, if any.
func (s *Store) Remove() {
	_ = os.Remove(s.path)
}
