package query

import (
	"context"
	"fmt"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

// ListItems returns items matching the filter, oldest first.
func (s *Service) ListItems(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error) {
	if !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "must be LOST, FOUND, or empty")
	}
	filter.Normalize()

	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}
