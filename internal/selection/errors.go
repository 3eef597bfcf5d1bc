package selection

import (
	"errors"
	"fmt"
)

// MaxBulkCount bounds how many rows one bulk selection may request.
const MaxBulkCount = 1000

// maxBulkPages bounds how many pages one bulk run may visit. Hitting the
// ceiling stops the loop without discarding what was already selected.
const maxBulkPages = 1000

// ErrCountOutOfRange reports a bulk count outside 1..MaxBulkCount.
// No state is mutated and no pages are fetched when it is returned.
var ErrCountOutOfRange = errors.New("bulk count out of range")

// ErrPageOutOfRange reports a non-positive bulk start page.
var ErrPageOutOfRange = errors.New("start page out of range")

// FetchError wraps a page fetch failure during bulk selection. Selections
// made on earlier pages are kept and persisted before it propagates.
type FetchError struct {
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
