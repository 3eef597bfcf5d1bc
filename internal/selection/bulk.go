package selection

import (
	"context"
	"fmt"
)

// PageFetcher returns the ordered row identifiers for one page of the remote
// resource. An empty result is the sentinel for "no more data".
type PageFetcher func(ctx context.Context, page int) ([]int, error)

// BulkResult reports what a bulk selection actually did. Partial success is a
// valid terminal outcome: rows selected before a failure stay selected.
type BulkResult struct {
	Requested  int
	Selected   int
	StartPage  int
	LastPage   int  // last page that contributed selections, zero if none
	Exhausted  bool // the data source ran out before Requested was reached
	CeilingHit bool // stopped at the page iteration ceiling
}

// BulkSelect marks count rows as selected starting from startPage, fetching
// page id lists on demand and walking pages strictly in ascending order. The
// snapshot is persisted once when the run ends, whether it completed, ran out
// of data, was cancelled, or failed mid-way.
func (s *State) BulkSelect(ctx context.Context, startPage, count int, fetch PageFetcher) (BulkResult, error) {
	if count < 1 || count > MaxBulkCount {
		return BulkResult{}, fmt.Errorf("%w: %d (allowed 1..%d)", ErrCountOutOfRange, count, MaxBulkCount)
	}
	if startPage < 1 {
		return BulkResult{}, fmt.Errorf("%w: %d", ErrPageOutOfRange, startPage)
	}

	s.mu.Lock()
	s.lastBulk = &BulkRecord{Count: count, StartPage: startPage, Timestamp: s.now()}
	s.mu.Unlock()

	res := BulkResult{Requested: count, StartPage: startPage}
	remaining := count
	page := startPage

	for remaining > 0 {
		if page-startPage >= maxBulkPages {
			res.CeilingHit = true
			break
		}
		if err := ctx.Err(); err != nil {
			s.persist()
			return res, err
		}

		// The lock is never held across this call: fetches may be slow and
		// row-level selection must stay responsive during a bulk run.
		ids, err := fetch(ctx, page)
		if err != nil {
			s.persist()
			return res, &FetchError{Page: page, Err: err}
		}
		if len(ids) == 0 {
			res.Exhausted = true
			break
		}

		take := min(remaining, len(ids))
		s.mu.Lock()
		s.selectPageLocked(page, ids[:take])
		s.mu.Unlock()

		remaining -= take
		res.Selected += take
		res.LastPage = page
		page++
	}

	s.persist()
	return res, nil
}

func (s *State) persist() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLocked()
}
