package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
	"github.com/shantanucs24-boop/campus-connect/pkg/ctxutil"
)

func foundItemRepo(item *domain.Item) *itemRepoMock {
	return &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			if id != item.ID {
				return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
			}
			return item, nil
		},
	}
}

func TestSubmitClaim_Success(t *testing.T) {
	t.Parallel()

	claimantID := uuid.New()
	item := &domain.Item{ID: uuid.New(), Status: domain.ItemStatusFound}

	claims := &claimRepoMock{
		CreateFunc: func(ctx context.Context, claim *domain.Claim) (*domain.Claim, error) {
			return claim, nil
		},
	}

	svc := newTestService(t, foundItemRepo(item), claims, nil)
	ctx := ctxutil.WithUserID(context.Background(), claimantID)

	claim, err := svc.SubmitClaim(ctx, SubmitClaimInput{
		ItemID:  item.ID,
		Message: "  That's my umbrella, left it in the library.  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claim.ItemID != item.ID {
		t.Errorf("item ID: got %v, want %v", claim.ItemID, item.ID)
	}
	if claim.ClaimantID != claimantID {
		t.Errorf("claimant ID: got %v, want %v", claim.ClaimantID, claimantID)
	}
	if claim.Status != domain.ClaimStatusPending {
		t.Errorf("status: got %v, want %v", claim.Status, domain.ClaimStatusPending)
	}
	if claim.Message != "That's my umbrella, left it in the library." {
		t.Errorf("message not trimmed: %q", claim.Message)
	}
	if claim.ResolvedAt != nil {
		t.Error("resolved_at must be nil for a pending claim")
	}
}

func TestSubmitClaim_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &itemRepoMock{}, &claimRepoMock{}, nil)

	_, err := svc.SubmitClaim(context.Background(), SubmitClaimInput{
		ItemID:  uuid.New(),
		Message: "mine",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSubmitClaim_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input SubmitClaimInput
	}{
		{name: "missing item id", input: SubmitClaimInput{Message: "mine"}},
		{name: "empty message", input: SubmitClaimInput{ItemID: uuid.New()}},
		{name: "blank message", input: SubmitClaimInput{ItemID: uuid.New(), Message: "   "}},
		{name: "message too long", input: SubmitClaimInput{ItemID: uuid.New(), Message: strings.Repeat("x", 2001)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(t, &itemRepoMock{}, &claimRepoMock{}, nil)
			ctx := ctxutil.WithUserID(context.Background(), uuid.New())

			_, err := svc.SubmitClaim(ctx, tt.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestSubmitClaim_ItemNotFound(t *testing.T) {
	t.Parallel()

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
		},
	}

	svc := newTestService(t, items, &claimRepoMock{}, nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.SubmitClaim(ctx, SubmitClaimInput{ItemID: uuid.New(), Message: "mine"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmitClaim_OwnItem(t *testing.T) {
	t.Parallel()

	reporterID := uuid.New()
	item := &domain.Item{ID: uuid.New(), ReporterID: reporterID, Status: domain.ItemStatusFound}

	svc := newTestService(t, foundItemRepo(item), &claimRepoMock{}, nil)
	ctx := ctxutil.WithUserID(context.Background(), reporterID)

	_, err := svc.SubmitClaim(ctx, SubmitClaimInput{ItemID: item.ID, Message: "that is mine"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(vErr.Errors) != 1 || vErr.Errors[0].Field != "claimant_id" {
		t.Errorf("expected a claimant_id field error, got %+v", vErr.Errors)
	}
}

func TestSubmitClaim_ItemNotClaimable(t *testing.T) {
	t.Parallel()

	for _, status := range []domain.ItemStatus{domain.ItemStatusLost, domain.ItemStatusClaimed} {
		t.Run(status.String(), func(t *testing.T) {
			t.Parallel()

			item := &domain.Item{ID: uuid.New(), Status: status}
			svc := newTestService(t, foundItemRepo(item), &claimRepoMock{}, nil)
			ctx := ctxutil.WithUserID(context.Background(), uuid.New())

			_, err := svc.SubmitClaim(ctx, SubmitClaimInput{ItemID: item.ID, Message: "mine"})
			if !errors.Is(err, domain.ErrInvalidState) {
				t.Fatalf("expected ErrInvalidState, got %v", err)
			}

			var stateErr *domain.InvalidStateError
			if !errors.As(err, &stateErr) {
				t.Fatalf("expected *InvalidStateError, got %T", err)
			}
			if stateErr.Current != status.String() {
				t.Errorf("current state: got %q, want %q", stateErr.Current, status.String())
			}
		})
	}
}
