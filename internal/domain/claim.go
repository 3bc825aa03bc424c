package domain

import (
	"time"

	"github.com/google/uuid"
)

// Claim is a user's assertion of ownership over a found item.
// ResolvedAt is set exactly once, on the transition out of PENDING.
type Claim struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	ClaimantID uuid.UUID
	Message    string
	Status     ClaimStatus
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// IsResolved reports whether the claim has been reviewed (approved or
// rejected, including rejection by displacement).
func (c *Claim) IsResolved() bool {
	return c.Status.IsResolved()
}
