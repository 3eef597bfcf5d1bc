package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsAbsent(t *testing.T) {
	s := New(t.TempDir(), 0)
	if _, ok := s.Load(); ok {
		t.Fatal("Load returned ok for missing record")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested"), time.Hour)

	rec := Record{
		SelectedIDs:    []int{1, 2, 7},
		PageSelections: map[string][]int{"1": {1, 2}, "3": {7}},
		TotalSelected:  3,
	}
	before := time.Now().UnixMilli()
	if err := s.Save(rec); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, ok := s.Load()
	if !ok {
		t.Fatal("Load returned absent after Save")
	}
	if loaded.TotalSelected != 3 || len(loaded.SelectedIDs) != 3 {
		t.Fatalf("loaded = %#v, want 3 ids", loaded)
	}
	if got := loaded.PageSelections["3"]; len(got) != 1 || got[0] != 7 {
		t.Fatalf("PageSelections[3] = %v, want [7]", got)
	}
	if loaded.Timestamp < before {
		t.Fatalf("Timestamp = %d, want >= %d", loaded.Timestamp, before)
	}
}

func TestLoad_ExpiredRecordIsPurged(t *testing.T) {
	s := New(t.TempDir(), time.Hour)
	if err := s.Save(Record{SelectedIDs: []int{5}}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	// Advance the clock past the expiry window.
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if _, ok := s.Load(); ok {
		t.Fatal("Load returned ok for expired record")
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Fatalf("expired record not removed: stat err = %v", err)
	}
}

func TestLoad_CorruptRecordIsPurged(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, time.Hour)
	if err := os.WriteFile(s.Path(), []byte("{not-json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := s.Load(); ok {
		t.Fatal("Load returned ok for corrupt record")
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Fatalf("corrupt record not removed: stat err = %v", err)
	}
}

func TestLoad_ZeroTimestampTreatedAsCorrupt(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, time.Hour)
	payload := []byte(`{"selectedIds":[1],"pageSelections":{"1":[1]},"totalSelected":1,"timestamp":0}`)
	if err := os.WriteFile(s.Path(), payload, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := s.Load(); ok {
		t.Fatal("Load returned ok for record without timestamp")
	}
}

func TestSave_NormalizesNilCollections(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, time.Hour)
	if err := s.Save(Record{}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	bytes, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	got := string(bytes)
	for _, want := range []string{`"selectedIds":[]`, `"pageSelections":{}`} {
		if !strings.Contains(got, want) {
			t.Fatalf("record %s missing %s", got, want)
		}
	}
}
