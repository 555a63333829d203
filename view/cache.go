package view

import (
	"sync"

	"github.com/tasknest/tasknest/internal/validation"
	"github.com/tasknest/tasknest/task"
)

// Cache memoizes view listings per filter. Every store mutation discards
// all cached listings; the next Get rebuilds from the store.
type Cache struct {
	store *task.Store

	mu      sync.Mutex
	gen     uint64
	entries map[Filter][]Row
}

// New builds a cache over store and registers it so that store mutations
// invalidate it.
func New(store *task.Store) *Cache {
	cache := &Cache{
		store:   store,
		entries: make(map[Filter][]Row),
	}
	store.SetInvalidator(cache)
	return cache
}

// Invalidate discards all cached listings. The store calls it after every
// committed mutation.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.entries = make(map[Filter][]Row)
}

// Get returns the rows of the view for filter, rebuilding them if no
// cached listing exists.
func (c *Cache) Get(filter Filter) ([]Row, error) {
	if !filter.IsValid() {
		return nil, validation.FormatInvalidValueError(ErrInvalidFilter, filter, ValidFilters())
	}

	c.mu.Lock()
	if rows, ok := c.entries[filter]; ok {
		c.mu.Unlock()
		return rows, nil
	}
	gen := c.gen
	c.mu.Unlock()

	// Build without holding c.mu: the store invalidates the cache while
	// holding its own lock, so blocking on the store here under c.mu
	// would deadlock.
	tasks, err := c.store.All()
	if err != nil {
		return nil, err
	}
	rows := buildRows(tasks, filter)

	c.mu.Lock()
	defer c.mu.Unlock()
	// A mutation may have landed while we were reading. The rows still
	// describe a consistent snapshot, so return them, but only cache
	// them when nothing changed underneath us.
	if c.gen == gen {
		c.entries[filter] = rows
	}
	return rows, nil
}

// buildRows walks the depth-first task listing once, tracking depth for
// every task so filtered-out ancestors still count toward their
// descendants' depth.
func buildRows(tasks []task.Task, filter Filter) []Row {
	depths := make(map[int64]int, len(tasks))
	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		depth := 0
		if t.ParentID != nil {
			if parentDepth, ok := depths[*t.ParentID]; ok {
				depth = parentDepth + 1
			}
		}
		depths[t.ID] = depth

		if !filter.Matches(t.Status) {
			continue
		}
		rows = append(rows, Row{Task: t, Depth: depth})
	}
	return rows
}
