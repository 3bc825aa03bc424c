package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
	"github.com/shantanucs24-boop/campus-connect/pkg/ctxutil"
)

// ReportItem registers a new lost or found item and dispatches description
// enrichment in the background. The item is returned in its reported state;
// the enriched description lands asynchronously.
func (s *Service) ReportItem(ctx context.Context, input ReportItemInput) (*domain.Item, error) {
	reporterID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	now := s.now()
	item, err := s.items.Create(ctx, &domain.Item{
		ID:          uuid.New(),
		ReporterID:  reporterID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		ImageRef:    strings.TrimSpace(input.ImageRef),
		Status:      input.Status,
		Location:    trimOrNil(input.Location),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.InfoContext(ctx, "item reported",
		slog.String("item_id", item.ID.String()),
		slog.String("reporter_id", reporterID.String()),
		slog.String("status", item.Status.String()),
	)

	// Only items without a reporter-supplied description get enriched:
	// first write wins, and the reporter already wrote.
	if item.Description == "" {
		s.dispatchEnrichment(item.ID, item.Title, item.ImageRef)
	}

	return item, nil
}
