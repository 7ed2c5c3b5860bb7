// internal/app/store/assignments/cache.go
package assignmentstore

import (
	"context"
	"sync"

	"github.com/eneca-dev/handoff/internal/domain/models"
)

// Cache holds the wholesale assignment list between mutations.
//
// The contract is invalidate-and-refetch: every mutation path must call
// Invalidate, and the next Snapshot call reloads the list from the store.
// Snapshot returns a copy, so callers may filter and reorder freely.
type Cache struct {
	store *Store

	mu    sync.Mutex
	snap  []models.Assignment
	valid bool
}

func NewCache(store *Store) *Cache {
	return &Cache{store: store}
}

// Snapshot returns the cached list, refetching it if a mutation has
// invalidated the cache since the last load.
func (c *Cache) Snapshot(ctx context.Context) ([]models.Assignment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.valid {
		snap, err := c.store.List(ctx)
		if err != nil {
			return nil, err
		}
		c.snap = snap
		c.valid = true
	}

	out := make([]models.Assignment, len(c.snap))
	copy(out, c.snap)
	return out, nil
}

// Invalidate marks the snapshot stale. Cheap to call; the refetch happens
// lazily on the next Snapshot.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.snap = nil
	c.mu.Unlock()
}
