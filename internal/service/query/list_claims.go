package query

import (
	"context"
	"fmt"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
	"github.com/shantanucs24-boop/campus-connect/pkg/ctxutil"
)

// ListClaimsForUser returns the claims authored by the calling user,
// most recent first.
func (s *Service) ListClaimsForUser(ctx context.Context) ([]*domain.Claim, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	claims, err := s.claims.ListByClaimant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	return claims, nil
}
