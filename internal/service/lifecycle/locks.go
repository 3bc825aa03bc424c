package lifecycle

import (
	"sync"

	"github.com/google/uuid"
)

// itemLocks serializes claim reviews per item. A review touches the item
// row and every pending claim on it, so two reviews for the same item must
// never interleave; reviews for different items proceed in parallel.
//
// Entries are reference-counted and dropped when the last holder releases,
// so the map does not grow with every item ever reviewed.
type itemLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*itemLock
}

type itemLock struct {
	mu   sync.Mutex
	refs int
}

func newItemLocks() *itemLocks {
	return &itemLocks{
		locks: make(map[uuid.UUID]*itemLock),
	}
}

// acquire blocks until the caller holds the item's lock.
func (l *itemLocks) acquire(itemID uuid.UUID) *itemLock {
	l.mu.Lock()
	e, ok := l.locks[itemID]
	if !ok {
		e = &itemLock{}
		l.locks[itemID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return e
}

// release unlocks the item's lock and evicts the entry once nobody is
// holding or waiting on it.
func (l *itemLocks) release(itemID uuid.UUID, e *itemLock) {
	e.mu.Unlock()

	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, itemID)
	}
	l.mu.Unlock()
}
