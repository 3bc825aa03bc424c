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

// SubmitClaim files a pending claim against a found item.
func (s *Service) SubmitClaim(ctx context.Context, input SubmitClaimInput) (*domain.Claim, error) {
	claimantID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if item.ReporterID == claimantID {
		return nil, domain.NewValidationError("claimant_id", "reporter cannot claim their own item")
	}

	if !item.AcceptsClaims() {
		return nil, domain.NewInvalidStateError("item", "claim", item.Status.String())
	}

	claim, err := s.claims.Create(ctx, &domain.Claim{
		ID:         uuid.New(),
		ItemID:     item.ID,
		ClaimantID: claimantID,
		Message:    strings.TrimSpace(input.Message),
		Status:     domain.ClaimStatusPending,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create claim: %w", err)
	}

	s.log.InfoContext(ctx, "claim submitted",
		slog.String("claim_id", claim.ID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("claimant_id", claimantID.String()),
	)

	return claim, nil
}
