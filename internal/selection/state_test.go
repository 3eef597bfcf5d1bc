package selection

import (
	"errors"
	"reflect"
	"testing"

	"easel/internal/store"
)

type fakeSaver struct {
	records []store.Record
	err     error
}

func (f *fakeSaver) Save(rec store.Record) error {
	f.records = append(f.records, rec)
	return f.err
}

// checkInvariants asserts the structural invariants that must hold after
// every mutation: the global set equals the union of the page sets, the
// total is derived from the global set, and no page entry is empty.
func checkInvariants(t *testing.T, s *State) {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	union := make(map[int]struct{})
	for page, set := range s.pages {
		if len(set) == 0 {
			t.Fatalf("page %d has a dangling empty set", page)
		}
		for id := range set {
			union[id] = struct{}{}
		}
	}
	if !reflect.DeepEqual(union, s.ids) {
		t.Fatalf("ids = %v, union of pages = %v", s.ids, union)
	}
}

func TestSelectDeselect_MaintainsInvariants(t *testing.T) {
	s := NewState(nil)

	s.Select(1, 10)
	s.Select(1, 11)
	s.Select(2, 20)
	checkInvariants(t, s)

	if s.Total() != 3 {
		t.Fatalf("Total = %d, want 3", s.Total())
	}
	if !s.IsSelected(10) || !s.IsSelected(20) {
		t.Fatal("expected ids 10 and 20 selected")
	}
	if got := s.PageIDs(1); !reflect.DeepEqual(got, []int{10, 11}) {
		t.Fatalf("PageIDs(1) = %v, want [10 11]", got)
	}

	s.Deselect(1, 10)
	checkInvariants(t, s)
	if s.IsSelected(10) {
		t.Fatal("id 10 still selected after Deselect")
	}
	if s.Total() != 2 {
		t.Fatalf("Total = %d, want 2", s.Total())
	}
}

func TestSelect_Idempotent(t *testing.T) {
	s := NewState(nil)
	s.Select(1, 5)
	s.Select(1, 5)
	checkInvariants(t, s)

	if s.Total() != 1 {
		t.Fatalf("Total = %d after double select, want 1", s.Total())
	}
	if got := s.PageIDs(1); !reflect.DeepEqual(got, []int{5}) {
		t.Fatalf("PageIDs(1) = %v, want [5]", got)
	}
}

func TestDeselect_UnselectedIDIsNoOp(t *testing.T) {
	s := NewState(nil)
	s.Select(1, 5)

	s.Deselect(1, 99)
	s.Deselect(3, 5) // wrong page
	checkInvariants(t, s)

	if s.Total() != 1 || !s.IsSelected(5) {
		t.Fatalf("state changed by no-op deselects: total=%d", s.Total())
	}
}

func TestDeselect_KeepsIDHeldByAnotherPage(t *testing.T) {
	s := NewState(nil)
	s.Select(1, 7)
	s.Select(2, 7)

	s.Deselect(1, 7)
	checkInvariants(t, s)

	if !s.IsSelected(7) {
		t.Fatal("id 7 dropped globally while page 2 still holds it")
	}
	if got := s.PageIDs(1); len(got) != 0 {
		t.Fatalf("PageIDs(1) = %v, want empty", got)
	}

	s.Deselect(2, 7)
	checkInvariants(t, s)
	if s.IsSelected(7) {
		t.Fatal("id 7 still selected after last page released it")
	}
}

func TestSelectPage_ReplacesAndDropsOmitted(t *testing.T) {
	s := NewState(nil)
	s.Select(3, 30)
	s.Select(3, 31)
	s.Select(4, 31) // also held by page 4

	s.SelectPage(3, []int{32, 33})
	checkInvariants(t, s)

	if s.IsSelected(30) {
		t.Fatal("id 30 survived page replace that omitted it")
	}
	if !s.IsSelected(31) {
		t.Fatal("id 31 dropped despite page 4 holding it")
	}
	if got := s.PageIDs(3); !reflect.DeepEqual(got, []int{32, 33}) {
		t.Fatalf("PageIDs(3) = %v, want [32 33]", got)
	}
}

func TestDeselectPage_RemovesEntry(t *testing.T) {
	s := NewState(nil)
	s.SelectPage(3, []int{1, 2, 3})
	s.DeselectPage(3)
	checkInvariants(t, s)

	if s.Total() != 0 {
		t.Fatalf("Total = %d after page deselect, want 0", s.Total())
	}
	if _, ok := s.pages[3]; ok {
		t.Fatal("page 3 entry still present after DeselectPage")
	}
}

func TestClear_EmptiesEverything(t *testing.T) {
	s := NewState(nil)
	s.SelectPage(1, []int{1, 2})
	s.SelectPage(2, []int{3})
	s.mu.Lock()
	s.lastBulk = &BulkRecord{Count: 3, StartPage: 1}
	s.mu.Unlock()

	s.Clear()
	checkInvariants(t, s)

	if s.Total() != 0 {
		t.Fatalf("Total = %d after Clear, want 0", s.Total())
	}
	if _, ok := s.LastBulk(); ok {
		t.Fatal("bulk metadata survived Clear")
	}
}

func TestRestore_RebuildsGlobalSetFromPages(t *testing.T) {
	s := NewState(nil)
	s.Restore(store.Record{
		// SelectedIDs and TotalSelected deliberately disagree with the page
		// map; the page map wins.
		SelectedIDs:   []int{999},
		TotalSelected: 42,
		PageSelections: map[string][]int{
			"1":    {1, 2},
			"3":    {7},
			"zero": {100}, // unparseable key, skipped
			"-2":   {101}, // invalid page, skipped
			"9":    {},    // empty set, skipped
		},
	})
	checkInvariants(t, s)

	if s.Total() != 3 {
		t.Fatalf("Total = %d after restore, want 3", s.Total())
	}
	if s.IsSelected(999) || s.IsSelected(100) || s.IsSelected(101) {
		t.Fatal("restore admitted ids outside the page map")
	}
	if got := s.PageIDs(3); !reflect.DeepEqual(got, []int{7}) {
		t.Fatalf("PageIDs(3) = %v, want [7]", got)
	}
}

func TestRecordRestore_RoundTrip(t *testing.T) {
	s := NewState(nil)
	s.SelectPage(1, []int{3, 1, 2})
	s.Select(5, 40)

	s.mu.Lock()
	rec := s.recordLocked()
	s.mu.Unlock()

	if rec.TotalSelected != 4 {
		t.Fatalf("record total = %d, want 4", rec.TotalSelected)
	}
	if !reflect.DeepEqual(rec.SelectedIDs, []int{1, 2, 3, 40}) {
		t.Fatalf("record ids = %v, want sorted [1 2 3 40]", rec.SelectedIDs)
	}

	restored := NewState(nil)
	restored.Restore(rec)
	checkInvariants(t, restored)

	if restored.Total() != s.Total() {
		t.Fatalf("restored total = %d, want %d", restored.Total(), s.Total())
	}
	if got := restored.PageIDs(1); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("restored PageIDs(1) = %v, want [1 2 3]", got)
	}
}

func TestMutations_PersistThroughSaver(t *testing.T) {
	saver := &fakeSaver{}
	s := NewState(saver)

	s.Select(1, 10)
	s.Deselect(1, 10)
	s.SelectPage(2, []int{1, 2})
	s.DeselectPage(2)
	s.Clear()

	if len(saver.records) != 5 {
		t.Fatalf("saver saw %d writes, want one per mutation (5)", len(saver.records))
	}
	last := saver.records[len(saver.records)-1]
	if last.TotalSelected != 0 || len(last.SelectedIDs) != 0 {
		t.Fatalf("final record = %#v, want empty", last)
	}
}

func TestMutations_SurviveSaverFailure(t *testing.T) {
	saver := &fakeSaver{err: errors.New("quota exceeded")}
	s := NewState(saver)

	s.Select(1, 10)
	checkInvariants(t, s)

	if !s.IsSelected(10) {
		t.Fatal("mutation lost because persistence failed")
	}
}
