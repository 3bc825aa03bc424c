package vision

import (
	"context"
	"fmt"
)

// Stub is a deterministic enrichment gateway for development and tests,
// used when no API key is configured.
type Stub struct{}

// NewStub creates a new stub gateway.
func NewStub() *Stub { return &Stub{} }

// Describe returns a fixed description derived from the title.
func (s *Stub) Describe(_ context.Context, title, _ string) (string, error) {
	return fmt.Sprintf("%s reported to the campus lost-and-found board.", title), nil
}
