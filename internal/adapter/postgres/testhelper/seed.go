package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedItem inserts an item with the given status and returns the filled record.
func SeedItem(t *testing.T, pool *pgxpool.Pool, status domain.ItemStatus) domain.Item {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	location := "Main Library"
	item := domain.Item{
		ID:          uuid.New(),
		ReporterID:  uuid.New(),
		Title:       "Test Item " + suffix,
		Description: "Seeded test item " + suffix,
		ImageRef:    "https://img.example/" + suffix + ".jpg",
		Status:      status,
		Location:    &location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO items (id, reporter_id, title, description, image_ref, status, location, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.ReporterID, item.Title, item.Description, item.ImageRef, string(item.Status), item.Location, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}

// SeedClaim inserts a PENDING claim against the given item and returns the
// filled record.
func SeedClaim(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID) domain.Claim {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	claim := domain.Claim{
		ID:         uuid.New(),
		ItemID:     itemID,
		ClaimantID: uuid.New(),
		Message:    "This is mine, see the scratch " + suffix,
		Status:     domain.ClaimStatusPending,
		CreatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO claims (id, item_id, claimant_id, message, status, created_at, resolved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NULL)`,
		claim.ID, claim.ItemID, claim.ClaimantID, claim.Message, string(claim.Status), claim.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClaim insert: %v", err)
	}

	return claim
}
