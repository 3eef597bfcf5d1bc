// Package state provides a thread-safe cache of fetched artwork pages, the
// coordination point between background fetches and UI rendering. Revisiting
// a page inside the freshness window renders without another network round
// trip.
package state

import (
	"sync"
	"time"

	"easel/internal/artic"
)

// DefaultFreshFor is the freshness window applied when none is configured.
const DefaultFreshFor = 5 * time.Minute

type entry struct {
	page    artic.Page
	fetched time.Time
}

// Cache coordinates concurrent access to fetched pages.
type Cache struct {
	mu       sync.RWMutex
	freshFor time.Duration
	pages    map[int]entry
	now      func() time.Time
}

// NewCache builds a Cache whose entries stay usable for freshFor.
// A non-positive freshFor uses DefaultFreshFor.
func NewCache(freshFor time.Duration) *Cache {
	if freshFor <= 0 {
		freshFor = DefaultFreshFor
	}
	return &Cache{
		freshFor: freshFor,
		pages:    make(map[int]entry),
		now:      time.Now,
	}
}

// Get returns the cached page when present and still fresh.
func (c *Cache) Get(page int) (artic.Page, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.pages[page]
	if !ok || c.now().Sub(e.fetched) > c.freshFor {
		return artic.Page{}, false
	}
	return clonePage(e.page), true
}

// Put stores a freshly fetched page, replacing any previous entry.
func (c *Cache) Put(p artic.Page) {
	if p.Number < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[p.Number] = entry{page: clonePage(p), fetched: c.now()}
}

// Drop evicts one page, forcing the next visit to refetch it.
func (c *Cache) Drop(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pages, page)
}

// Clear evicts every cached page.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = make(map[int]entry)
}

func clonePage(p artic.Page) artic.Page {
	if len(p.Artworks) == 0 {
		return p
	}
	dup := make([]artic.Artwork, len(p.Artworks))
	copy(dup, p.Artworks)
	p.Artworks = dup
	return p
}
