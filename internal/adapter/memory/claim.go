package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

// ClaimRepo is an in-memory Claim store. Safe for concurrent use.
type ClaimRepo struct {
	mu     sync.RWMutex
	claims map[uuid.UUID]*domain.Claim
	order  []uuid.UUID // insertion order
}

// NewClaimRepo creates an empty in-memory claim store.
func NewClaimRepo() *ClaimRepo {
	return &ClaimRepo{claims: make(map[uuid.UUID]*domain.Claim)}
}

// Create inserts a new claim and returns a copy of the persisted record.
func (r *ClaimRepo) Create(_ context.Context, claim *domain.Claim) (*domain.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.claims[claim.ID]; ok {
		return nil, fmt.Errorf("claim %s: %w", claim.ID, domain.ErrAlreadyExists)
	}

	stored := *claim
	r.claims[claim.ID] = &stored
	r.order = append(r.order, claim.ID)

	out := stored
	return &out, nil
}

// GetByID returns a copy of the claim, or domain.ErrNotFound.
func (r *ClaimRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.claims[id]
	if !ok {
		return nil, fmt.Errorf("claim %s: %w", id, domain.ErrNotFound)
	}
	out := *stored
	return &out, nil
}

// ListByItem returns all claims against an item in submission order.
func (r *ClaimRepo) ListByItem(_ context.Context, itemID uuid.UUID) ([]*domain.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Claim, 0)
	for _, id := range r.order {
		stored := r.claims[id]
		if stored.ItemID != itemID {
			continue
		}
		cp := *stored
		out = append(out, &cp)
	}
	return out, nil
}

// ListByClaimant returns all claims authored by a user, most recent first.
func (r *ClaimRepo) ListByClaimant(_ context.Context, claimantID uuid.UUID) ([]*domain.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Claim, 0)
	for _, id := range r.order {
		stored := r.claims[id]
		if stored.ClaimantID != claimantID {
			continue
		}
		cp := *stored
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateStatus sets a claim's status and resolution timestamp, or returns
// domain.ErrNotFound.
func (r *ClaimRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.ClaimStatus, resolvedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.claims[id]
	if !ok {
		return fmt.Errorf("claim %s: %w", id, domain.ErrNotFound)
	}
	stored.Status = status
	stored.ResolvedAt = &resolvedAt
	return nil
}

// RejectOtherPending moves every PENDING claim on the item except excludeID
// to REJECTED. Returns the number of displaced claims.
func (r *ClaimRepo) RejectOtherPending(_ context.Context, itemID, excludeID uuid.UUID, resolvedAt time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	displaced := 0
	for _, stored := range r.claims {
		if stored.ItemID != itemID || stored.ID == excludeID {
			continue
		}
		if stored.Status != domain.ClaimStatusPending {
			continue
		}
		at := resolvedAt
		stored.Status = domain.ClaimStatusRejected
		stored.ResolvedAt = &at
		displaced++
	}
	return displaced, nil
}
