package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
	"github.com/shantanucs24-boop/campus-connect/pkg/ctxutil"
)

func TestReportItem_DispatchesEnrichment(t *testing.T) {
	t.Parallel()

	items := &itemRepoMock{
		CreateFunc: func(ctx context.Context, item *domain.Item) (*domain.Item, error) {
			return item, nil
		},
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return &domain.Item{ID: id, Status: domain.ItemStatusFound}, nil
		},
		UpdateDescriptionFunc: func(ctx context.Context, id uuid.UUID, text string) error {
			return nil
		},
	}
	enrich := &gatewayMock{
		DescribeFunc: func(ctx context.Context, title, imageRef string) (string, error) {
			return "A black umbrella with a curved wooden handle.", nil
		},
	}

	svc := newTestService(t, items, &claimRepoMock{}, enrich)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	item, err := svc.ReportItem(ctx, ReportItemInput{
		Title:    "Black umbrella",
		ImageRef: "https://img.example/umbrella.jpg",
		Status:   domain.ItemStatusFound,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.Close()

	calls := enrich.DescribeCalls()
	if len(calls) != 1 {
		t.Fatalf("Describe calls: got %d, want 1", len(calls))
	}
	if calls[0].ImageRef != item.ImageRef {
		t.Errorf("image ref: got %q, want %q", calls[0].ImageRef, item.ImageRef)
	}
	updates := items.UpdateDescriptionCalls()
	if len(updates) != 1 || updates[0].ID != item.ID {
		t.Fatalf("UpdateDescription calls: got %v", updates)
	}
}

func TestReportItem_SkipsEnrichmentWhenDescribed(t *testing.T) {
	t.Parallel()

	items := &itemRepoMock{
		CreateFunc: func(ctx context.Context, item *domain.Item) (*domain.Item, error) {
			return item, nil
		},
	}
	enrich := &gatewayMock{
		DescribeFunc: func(ctx context.Context, title, imageRef string) (string, error) {
			return "generated", nil
		},
	}

	svc := newTestService(t, items, &claimRepoMock{}, enrich)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.ReportItem(ctx, ReportItemInput{
		Title:       "Black umbrella",
		Description: "Reporter wrote this already.",
		ImageRef:    "https://img.example/umbrella.jpg",
		Status:      domain.ItemStatusFound,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.Close()

	if len(enrich.DescribeCalls()) != 0 {
		t.Error("enrichment must not run for items with a description")
	}
}

func TestReportItem_EnrichmentFailureDoesNotFailCreation(t *testing.T) {
	t.Parallel()

	items := &itemRepoMock{
		CreateFunc: func(ctx context.Context, item *domain.Item) (*domain.Item, error) {
			return item, nil
		},
	}
	enrich := &gatewayMock{
		DescribeFunc: func(ctx context.Context, title, imageRef string) (string, error) {
			return "", errors.New("model overloaded")
		},
	}

	svc := newTestService(t, items, &claimRepoMock{}, enrich)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.ReportItem(ctx, ReportItemInput{
		Title:    "Black umbrella",
		ImageRef: "https://img.example/umbrella.jpg",
		Status:   domain.ItemStatusFound,
	})
	if err != nil {
		t.Fatalf("item creation must not fail on enrichment errors: %v", err)
	}
	svc.Close()

	if len(items.UpdateDescriptionCalls()) != 0 {
		t.Error("no description update expected after a gateway failure")
	}
}

func TestUpdateDescription_FirstWriteWins(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return &domain.Item{ID: id, Description: "already set"}, nil
		},
	}

	svc := newTestService(t, items, &claimRepoMock{}, nil)

	if err := svc.UpdateDescription(context.Background(), itemID, "late delivery"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items.UpdateDescriptionCalls()) != 0 {
		t.Error("a set description must never be overwritten")
	}
}

func TestUpdateDescription_DropsMissingItem(t *testing.T) {
	t.Parallel()

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
		},
	}

	svc := newTestService(t, items, &claimRepoMock{}, nil)

	if err := svc.UpdateDescription(context.Background(), uuid.New(), "orphan delivery"); err != nil {
		t.Errorf("missing item must be dropped silently, got %v", err)
	}
}

func TestUpdateDescription_EmptyText(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &itemRepoMock{}, &claimRepoMock{}, nil)

	err := svc.UpdateDescription(context.Background(), uuid.New(), "   ")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateDescription_RepoError(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset")
	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
			return &domain.Item{ID: id}, nil
		},
		UpdateDescriptionFunc: func(ctx context.Context, id uuid.UUID, text string) error {
			return dbErr
		},
	}

	svc := newTestService(t, items, &claimRepoMock{}, nil)

	err := svc.UpdateDescription(context.Background(), uuid.New(), "text")
	if !errors.Is(err, dbErr) {
		t.Errorf("expected wrapped repo error, got %v", err)
	}
}
