package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

// dispatchEnrichment asks the gateway to generate a description for the
// item in the background. Fire-and-forget: failures are logged and the
// item keeps its empty description.
func (s *Service) dispatchEnrichment(itemID uuid.UUID, title, imageRef string) {
	if s.enrich == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		// Detached from the request context: the caller is long gone by
		// the time the gateway answers.
		ctx := context.Background()

		text, err := s.enrich.Describe(ctx, title, imageRef)
		if err != nil {
			s.log.Warn("enrichment failed",
				slog.String("item_id", itemID.String()),
				slog.Any("error", err),
			)
			return
		}

		if err := s.UpdateDescription(ctx, itemID, text); err != nil {
			s.log.Warn("enrichment result not applied",
				slog.String("item_id", itemID.String()),
				slog.Any("error", err),
			)
		}
	}()
}

// UpdateDescription applies an enrichment result to an item. First write
// wins: a description the reporter or an earlier delivery already set is
// never overwritten. Re-delivery of the same text and delivery for a
// deleted item are both no-ops.
func (s *Service) UpdateDescription(ctx context.Context, itemID uuid.UUID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.NewValidationError("description", "required")
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "description update dropped, item gone",
				slog.String("item_id", itemID.String()),
			)
			return nil
		}
		return fmt.Errorf("get item: %w", err)
	}

	if item.Description != "" {
		return nil
	}

	if err := s.items.UpdateDescription(ctx, itemID, text); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("update description: %w", err)
	}

	s.log.InfoContext(ctx, "description enriched",
		slog.String("item_id", itemID.String()),
	)

	return nil
}
