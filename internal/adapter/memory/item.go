// Package memory implements the Item and Claim stores as in-process maps.
// It backs the non-durable deployment mode and the engine's concurrency
// tests. Records are copied on the way in and out so callers can never
// mutate store state through a shared pointer.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

// ItemRepo is an in-memory Item store. Safe for concurrent use.
type ItemRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*domain.Item
	order []uuid.UUID // insertion order for List
}

// NewItemRepo creates an empty in-memory item store.
func NewItemRepo() *ItemRepo {
	return &ItemRepo{items: make(map[uuid.UUID]*domain.Item)}
}

// Create inserts a new item and returns a copy of the persisted record.
func (r *ItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return nil, fmt.Errorf("item %s: %w", item.ID, domain.ErrAlreadyExists)
	}

	stored := *item
	r.items[item.ID] = &stored
	r.order = append(r.order, item.ID)

	out := stored
	return &out, nil
}

// GetByID returns a copy of the item, or domain.ErrNotFound.
func (r *ItemRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	out := *stored
	return &out, nil
}

// List returns matching items in insertion order.
// Returns an empty slice (not nil) when nothing matches.
func (r *ItemRepo) List(_ context.Context, filter domain.ItemFilter) ([]*domain.Item, error) {
	filter.Normalize()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Item, 0)
	skipped := 0
	for _, id := range r.order {
		stored := r.items[id]
		if !matches(stored, filter) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		if len(out) == filter.Limit {
			break
		}
		cp := *stored
		out = append(out, &cp)
	}
	return out, nil
}

// UpdateStatus sets the item's status, or returns domain.ErrNotFound.
func (r *ItemRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.ItemStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[id]
	if !ok {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	stored.Status = status
	stored.UpdatedAt = now()
	return nil
}

// UpdateDescription fills the item's description if it is still empty.
// Returns domain.ErrNotFound if the item does not exist or already has one.
func (r *ItemRepo) UpdateDescription(_ context.Context, id uuid.UUID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[id]
	if !ok || stored.Description != "" {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	stored.Description = text
	stored.UpdatedAt = now()
	return nil
}

func matches(item *domain.Item, filter domain.ItemFilter) bool {
	if filter.Status != domain.StatusFilterAll && string(item.Status) != string(filter.Status) {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		title := strings.ToLower(item.Title)
		desc := strings.ToLower(item.Description)
		if !strings.Contains(title, needle) && !strings.Contains(desc, needle) {
			return false
		}
	}
	return true
}
