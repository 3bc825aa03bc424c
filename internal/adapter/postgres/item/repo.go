// Package item implements the durable Item store using PostgreSQL.
// It is a dumb record holder: existence checks only, no lifecycle rules.
package item

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/shantanucs24-boop/campus-connect/internal/adapter/postgres"
	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const itemColumns = "id, reporter_id, title, description, image_ref, status, location, created_at, updated_at"

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new item and returns the persisted record.
func (r *Repo) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert("items").
		Columns("id", "reporter_id", "title", "description", "image_ref", "status", "location", "created_at", "updated_at").
		Values(item.ID, item.ReporterID, item.Title, item.Description, item.ImageRef, item.Status, item.Location, item.CreatedAt, item.UpdatedAt).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert item: %w", err)
	}

	got, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "item", item.ID)
	}
	return got, nil
}

// GetByID returns an item by primary key.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(itemColumns).
		From("items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select item: %w", err)
	}

	got, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "item", id)
	}
	return got, nil
}

// List returns items matching the filter in insertion order (created_at ASC).
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	filter.Normalize()

	builder := psql.Select(itemColumns).
		From("items").
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Status != domain.StatusFilterAll {
		builder = builder.Where(squirrel.Eq{"status": string(filter.Status)})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

// UpdateStatus sets the item's status.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update("items").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item status: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "item", id)
	}
	return nil
}

// UpdateDescription fills the item's description if it is still empty.
// Returns domain.ErrNotFound if the item does not exist or already has one.
func (r *Repo) UpdateDescription(ctx context.Context, id uuid.UUID, text string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update("items").
		Set("description", text).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "description": ""}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item description: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "item", id)
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var it domain.Item
	err := row.Scan(
		&it.ID,
		&it.ReporterID,
		&it.Title,
		&it.Description,
		&it.ImageRef,
		&it.Status,
		&it.Location,
		&it.CreatedAt,
		&it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
