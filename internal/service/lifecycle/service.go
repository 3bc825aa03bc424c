// Package lifecycle implements the item and claim state machine: who may
// transition what, and the invariants that keep a found item from being
// double-claimed. The stores underneath are dumb record holders; every
// rule lives here.
package lifecycle

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

type itemRepo interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error
	UpdateDescription(ctx context.Context, id uuid.UUID, text string) error
}

type claimRepo interface {
	Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ClaimStatus, resolvedAt time.Time) error
	RejectOtherPending(ctx context.Context, itemID, excludeID uuid.UUID, resolvedAt time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Gateway is the description enrichment collaborator. Best-effort: its
// retry and timeout policy is its own, the engine only records success.
// Exported so callers can wire it conditionally.
type Gateway interface {
	Describe(ctx context.Context, title, imageRef string) (string, error)
}

// Config holds input limits for the engine.
type Config struct {
	MaxTitleLength   int
	MaxMessageLength int
}

const (
	defaultMaxTitleLength   = 200
	defaultMaxMessageLength = 2000
)

func (c *Config) normalize() {
	if c.MaxTitleLength <= 0 {
		c.MaxTitleLength = defaultMaxTitleLength
	}
	if c.MaxMessageLength <= 0 {
		c.MaxMessageLength = defaultMaxMessageLength
	}
}

// Service is the lifecycle engine.
type Service struct {
	cfg     Config
	items   itemRepo
	claims  claimRepo
	tx      txManager
	enrich  Gateway // nil when enrichment is disabled
	locks   *itemLocks
	wg      sync.WaitGroup // in-flight enrichment dispatches
	log     *slog.Logger
	nowFunc func() time.Time
}

// NewService creates a new lifecycle engine. enrich may be nil to disable
// description enrichment entirely.
func NewService(
	log *slog.Logger,
	cfg Config,
	items itemRepo,
	claims claimRepo,
	tx txManager,
	enrich Gateway,
) *Service {
	cfg.normalize()
	return &Service{
		cfg:     cfg,
		items:   items,
		claims:  claims,
		tx:      tx,
		enrich:  enrich,
		locks:   newItemLocks(),
		log:     log.With("service", "lifecycle"),
		nowFunc: func() time.Time { return time.Now().UTC() },
	}
}

// Close waits for in-flight enrichment dispatches to drain.
func (s *Service) Close() {
	s.wg.Wait()
}

func (s *Service) now() time.Time {
	return s.nowFunc()
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
