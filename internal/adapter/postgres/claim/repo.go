// Package claim implements the durable Claim store using PostgreSQL.
// Like the item store it holds records and checks existence only; the
// lifecycle rules live in the engine.
package claim

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/shantanucs24-boop/campus-connect/internal/adapter/postgres"
	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const claimColumns = "id, item_id, claimant_id, message, status, created_at, resolved_at"

// Repo provides claim persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new claim repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new claim and returns the persisted record.
// A missing item surfaces as domain.ErrNotFound via the FK violation.
func (r *Repo) Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert("claims").
		Columns("id", "item_id", "claimant_id", "message", "status", "created_at", "resolved_at").
		Values(claim.ID, claim.ItemID, claim.ClaimantID, claim.Message, claim.Status, claim.CreatedAt, claim.ResolvedAt).
		Suffix("RETURNING " + claimColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert claim: %w", err)
	}

	got, err := scanClaim(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "claim", claim.ID)
	}
	return got, nil
}

// GetByID returns a claim by primary key.
// Returns domain.ErrNotFound if the claim does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(claimColumns).
		From("claims").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select claim: %w", err)
	}

	got, err := scanClaim(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "claim", id)
	}
	return got, nil
}

// ListByItem returns all claims against an item in submission order.
// Returns an empty slice (not nil) when the item has no claims.
func (r *Repo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]*domain.Claim, error) {
	return r.list(ctx, squirrel.Eq{"item_id": itemID}, "created_at ASC, id ASC")
}

// ListByClaimant returns all claims authored by a user, most recent first.
// Returns an empty slice (not nil) when the user has no claims.
func (r *Repo) ListByClaimant(ctx context.Context, claimantID uuid.UUID) ([]*domain.Claim, error) {
	return r.list(ctx, squirrel.Eq{"claimant_id": claimantID}, "created_at DESC, id DESC")
}

func (r *Repo) list(ctx context.Context, where squirrel.Eq, order string) ([]*domain.Claim, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(claimColumns).
		From("claims").
		Where(where).
		OrderBy(order).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list claims: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	claims := make([]*domain.Claim, 0)
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	return claims, nil
}

// UpdateStatus sets a claim's status and resolution timestamp.
// Returns domain.ErrNotFound if the claim does not exist.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ClaimStatus, resolvedAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update("claims").
		Set("status", status).
		Set("resolved_at", resolvedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update claim status: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "claim", id)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "claim", id)
	}
	return nil
}

// RejectOtherPending moves every PENDING claim on the item except excludeID
// to REJECTED with the given resolution timestamp. Returns the number of
// displaced claims. This is a bulk write primitive, not a rule: the engine
// decides when displacement applies.
func (r *Repo) RejectOtherPending(ctx context.Context, itemID, excludeID uuid.UUID, resolvedAt time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update("claims").
		Set("status", domain.ClaimStatusRejected).
		Set("resolved_at", resolvedAt).
		Where(squirrel.Eq{"item_id": itemID, "status": domain.ClaimStatusPending}).
		Where(squirrel.NotEq{"id": excludeID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build reject other pending: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, mapError(err, "claim", excludeID)
	}
	return int(tag.RowsAffected()), nil
}

func scanClaim(row pgx.Row) (*domain.Claim, error) {
	var c domain.Claim
	err := row.Scan(
		&c.ID,
		&c.ItemID,
		&c.ClaimantID,
		&c.Message,
		&c.Status,
		&c.CreatedAt,
		&c.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
