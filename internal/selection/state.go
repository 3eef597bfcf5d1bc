// Package selection tracks which rows are selected across an independently
// paginated result set. State is held as a global id set plus a per-page
// breakdown; the two are kept in lockstep so the global set always equals the
// union of the page sets. Every mutation persists a snapshot through the
// store adapter, best-effort.
package selection

import (
	"log"
	"sort"
	"strconv"
	"sync"
	"time"

	"easel/internal/store"
)

// Saver persists selection snapshots. Implemented by *store.Store.
type Saver interface {
	Save(store.Record) error
}

// BulkRecord describes the most recent bulk operation, for diagnostics.
type BulkRecord struct {
	Count     int
	StartPage int
	Timestamp time.Time
}

// State is the in-memory selection model. A single instance lives for the
// application session; all methods are safe for concurrent use because bulk
// selection runs off the UI loop.
type State struct {
	mu       sync.Mutex
	ids      map[int]struct{}
	pages    map[int]map[int]struct{}
	lastBulk *BulkRecord
	saver    Saver
	now      func() time.Time
}

// NewState builds an empty State that persists through saver. A nil saver
// keeps selections in memory only.
func NewState(saver Saver) *State {
	return &State{
		ids:   make(map[int]struct{}),
		pages: make(map[int]map[int]struct{}),
		saver: saver,
		now:   time.Now,
	}
}

// Restore replaces the current state with the contents of a stored record.
// The page map is authoritative: the global set is rebuilt as the union of
// the page sets, so a drifted or hand-edited record cannot violate the
// invariant. Unparseable page keys are skipped.
func (s *State) Restore(rec store.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = make(map[int]struct{})
	s.pages = make(map[int]map[int]struct{})
	for key, ids := range rec.PageSelections {
		page, err := strconv.Atoi(key)
		if err != nil || page < 1 || len(ids) == 0 {
			continue
		}
		set := make(map[int]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
			s.ids[id] = struct{}{}
		}
		s.pages[page] = set
	}
}

// Select marks id as selected on page. Selecting an already-selected id is a
// no-op in effect.
func (s *State) Select(page, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectLocked(page, id)
	s.persistLocked()
}

// Deselect removes id from page. The id stays globally selected while any
// other page still holds it.
func (s *State) Deselect(page, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deselectLocked(page, id)
	s.persistLocked()
}

// SelectPage replaces page's selection wholesale with ids. Callers must pass
// the complete current-page id list: ids previously selected on this page but
// absent from the new list lose their membership here, and drop out of the
// global set unless another page still holds them.
func (s *State) SelectPage(page int, ids []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectPageLocked(page, ids)
	s.persistLocked()
}

// DeselectPage removes every selection on page.
func (s *State) DeselectPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deselectPageLocked(page)
	s.persistLocked()
}

// Clear empties the selection entirely, including bulk metadata.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[int]struct{})
	s.pages = make(map[int]map[int]struct{})
	s.lastBulk = nil
	s.persistLocked()
}

// IsSelected reports whether id is selected on any page.
func (s *State) IsSelected(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Total returns the number of distinct selected ids.
func (s *State) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// PageIDs returns the ids selected on page, sorted ascending. Pages with no
// selections yield an empty slice.
func (s *State) PageIDs(page int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedIDs(s.pages[page])
}

// LastBulk returns the most recent bulk operation record, if any.
func (s *State) LastBulk() (BulkRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastBulk == nil {
		return BulkRecord{}, false
	}
	return *s.lastBulk, true
}

// Locked mutation primitives. Bulk selection composes these so a multi-page
// run writes the snapshot once at the end instead of once per page.

func (s *State) selectLocked(page, id int) {
	set := s.pages[page]
	if set == nil {
		set = make(map[int]struct{})
		s.pages[page] = set
	}
	set[id] = struct{}{}
	s.ids[id] = struct{}{}
}

func (s *State) deselectLocked(page, id int) {
	set := s.pages[page]
	if set == nil {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(s.pages, page)
	}
	s.dropUnlessHeldLocked(id)
}

func (s *State) selectPageLocked(page int, ids []int) {
	old := s.pages[page]
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
		s.ids[id] = struct{}{}
	}
	if len(set) == 0 {
		delete(s.pages, page)
	} else {
		s.pages[page] = set
	}
	for id := range old {
		if _, ok := set[id]; !ok {
			s.dropUnlessHeldLocked(id)
		}
	}
}

func (s *State) deselectPageLocked(page int) {
	old := s.pages[page]
	delete(s.pages, page)
	for id := range old {
		s.dropUnlessHeldLocked(id)
	}
}

// dropUnlessHeldLocked removes id from the global set when no page holds it,
// preserving ids == union(pages).
func (s *State) dropUnlessHeldLocked(id int) {
	for _, set := range s.pages {
		if _, ok := set[id]; ok {
			return
		}
	}
	delete(s.ids, id)
}

// persistLocked writes a snapshot through the store adapter. Persistence is
// best-effort: a failed write leaves the in-memory state fully usable and is
// only logged.
func (s *State) persistLocked() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.recordLocked()); err != nil {
		log.Printf("selection: persist failed: %v", err)
	}
}

func (s *State) recordLocked() store.Record {
	rec := store.Record{
		SelectedIDs:    sortedIDs(s.ids),
		PageSelections: make(map[string][]int, len(s.pages)),
		TotalSelected:  len(s.ids),
	}
	for page, set := range s.pages {
		rec.PageSelections[strconv.Itoa(page)] = sortedIDs(set)
	}
	return rec
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
