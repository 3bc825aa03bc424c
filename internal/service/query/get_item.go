package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

// GetItem returns a single item with the claims filed against it.
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, []*domain.Claim, error) {
	if id == uuid.Nil {
		return nil, nil, domain.NewValidationError("item_id", "required")
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get item: %w", err)
	}

	claims, err := s.claims.ListByItem(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list item claims: %w", err)
	}

	return item, claims, nil
}
