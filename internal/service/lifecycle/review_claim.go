package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
	"github.com/shantanucs24-boop/campus-connect/pkg/ctxutil"
)

// ReviewClaim resolves a pending claim. Approval transitions the claim to
// APPROVED, rejects every other pending claim on the same item, and marks
// the item CLAIMED, all in one transaction. Rejection only flips the claim.
//
// Reviews are serialized per item: of two concurrent approvals on claims
// for the same item, exactly one wins and the other fails with an
// invalid-state error because its claim is no longer pending.
func (s *Service) ReviewClaim(ctx context.Context, input ReviewClaimInput) (*domain.Claim, error) {
	reviewerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsReviewerCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Lock-free fetch to learn which item to serialize on.
	claim, err := s.claims.GetByID(ctx, input.ClaimID)
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}

	lock := s.locks.acquire(claim.ItemID)
	defer s.locks.release(claim.ItemID, lock)

	// Re-fetch under the lock: a concurrent review may have resolved it
	// between the first read and lock acquisition.
	claim, err = s.claims.GetByID(ctx, input.ClaimID)
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}
	if claim.IsResolved() {
		return nil, domain.NewInvalidStateError("claim", "review", claim.Status.String())
	}

	resolvedAt := s.now()

	switch input.Decision {
	case domain.ReviewDecisionApprove:
		// The item must also be re-checked under the lock: a claim
		// submitted during a previous approval can still be pending
		// after its item flipped to CLAIMED.
		item, err := s.items.GetByID(ctx, claim.ItemID)
		if err != nil {
			return nil, fmt.Errorf("get item: %w", err)
		}
		if item.Status != domain.ItemStatusFound {
			return nil, domain.NewInvalidStateError("item", "approve", item.Status.String())
		}

		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			if err := s.claims.UpdateStatus(ctx, claim.ID, domain.ClaimStatusApproved, resolvedAt); err != nil {
				return fmt.Errorf("approve claim: %w", err)
			}
			rejected, err := s.claims.RejectOtherPending(ctx, claim.ItemID, claim.ID, resolvedAt)
			if err != nil {
				return fmt.Errorf("reject sibling claims: %w", err)
			}
			if rejected > 0 {
				s.log.InfoContext(ctx, "sibling claims rejected",
					slog.String("item_id", claim.ItemID.String()),
					slog.Int("count", rejected),
				)
			}
			if err := s.items.UpdateStatus(ctx, claim.ItemID, domain.ItemStatusClaimed); err != nil {
				return fmt.Errorf("mark item claimed: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		claim.Status = domain.ClaimStatusApproved
	case domain.ReviewDecisionReject:
		if err := s.claims.UpdateStatus(ctx, claim.ID, domain.ClaimStatusRejected, resolvedAt); err != nil {
			return nil, fmt.Errorf("reject claim: %w", err)
		}
		claim.Status = domain.ClaimStatusRejected
	}
	claim.ResolvedAt = &resolvedAt

	s.log.InfoContext(ctx, "claim reviewed",
		slog.String("claim_id", claim.ID.String()),
		slog.String("item_id", claim.ItemID.String()),
		slog.String("reviewer_id", reviewerID.String()),
		slog.String("decision", input.Decision.String()),
	)

	return claim, nil
}
