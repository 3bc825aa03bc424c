// Package query is the read side of the board: listing and fetching items
// and claims. It never mutates and always reflects the latest committed
// state; there is no caching here.
package query

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error)
}

type claimRepo interface {
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]*domain.Claim, error)
	ListByClaimant(ctx context.Context, claimantID uuid.UUID) ([]*domain.Claim, error)
}

// Service is the query facade.
type Service struct {
	items  itemRepo
	claims claimRepo
	log    *slog.Logger
}

// NewService creates a new query facade.
func NewService(log *slog.Logger, items itemRepo, claims claimRepo) *Service {
	return &Service{
		items:  items,
		claims: claims,
		log:    log.With("service", "query"),
	}
}
