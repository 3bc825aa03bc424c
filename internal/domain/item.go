package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a physical object reported lost or found on campus.
// The description may start empty and be filled later by the asynchronous
// enrichment gateway; callers must treat it as eventually consistent.
type Item struct {
	ID          uuid.UUID
	ReporterID  uuid.UUID
	Title       string
	Description string
	ImageRef    string
	Status      ItemStatus
	Location    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AcceptsClaims reports whether new claims may be submitted against the item.
// Only FOUND items accept claims; LOST items never do, and CLAIMED is terminal.
func (i *Item) AcceptsClaims() bool {
	return i.Status == ItemStatusFound
}
