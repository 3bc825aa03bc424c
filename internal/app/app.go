// Package app wires configuration, stores, services, and the HTTP server
// into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/shantanucs24-boop/campus-connect/internal/adapter/memory"
	"github.com/shantanucs24-boop/campus-connect/internal/adapter/postgres"
	claimrepo "github.com/shantanucs24-boop/campus-connect/internal/adapter/postgres/claim"
	itemrepo "github.com/shantanucs24-boop/campus-connect/internal/adapter/postgres/item"
	"github.com/shantanucs24-boop/campus-connect/internal/adapter/provider/vision"
	"github.com/shantanucs24-boop/campus-connect/internal/auth"
	"github.com/shantanucs24-boop/campus-connect/internal/config"
	"github.com/shantanucs24-boop/campus-connect/internal/domain"
	"github.com/shantanucs24-boop/campus-connect/internal/service/lifecycle"
	"github.com/shantanucs24-boop/campus-connect/internal/service/query"
	"github.com/shantanucs24-boop/campus-connect/internal/transport/middleware"
	"github.com/shantanucs24-boop/campus-connect/internal/transport/rest"
)

// itemStore is the union of the item operations the services consume,
// satisfied by both the postgres and the in-memory repositories.
type itemStore interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error
	UpdateDescription(ctx context.Context, id uuid.UUID, text string) error
}

type claimStore interface {
	Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]*domain.Claim, error)
	ListByClaimant(ctx context.Context, claimantID uuid.UUID) ([]*domain.Claim, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ClaimStatus, resolvedAt time.Time) error
	RejectOtherPending(ctx context.Context, itemID, excludeID uuid.UUID, resolvedAt time.Time) (int, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects the
// stores (PostgreSQL, or in-memory when no DSN is configured), assembles
// the services and the HTTP server, and blocks until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	var (
		items  itemStore
		claims claimStore
		tx     txRunner
		pinger dbPinger
	)

	if cfg.Database.DSN != "" {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		items = itemrepo.New(pool)
		claims = claimrepo.New(pool)
		tx = postgres.NewTxManager(pool)
		pinger = pool
		logger.Info("using postgres stores")
	} else {
		items = memory.NewItemRepo()
		claims = memory.NewClaimRepo()
		tx = memory.NewTxManager()
		logger.Warn("no database configured, using in-memory stores")
	}

	var enrich lifecycle.Gateway
	switch {
	case !cfg.Enrichment.Enabled:
		logger.Info("description enrichment disabled")
	case cfg.Enrichment.APIKey == "":
		enrich = vision.NewStub()
		logger.Warn("no enrichment api key configured, using stub gateway")
	default:
		enrich = vision.New(cfg.Enrichment.APIKey, vision.Config{
			Model:       cfg.Enrichment.Model,
			Timeout:     cfg.Enrichment.Timeout,
			MaxAttempts: cfg.Enrichment.MaxAttempts,
		})
		logger.Info("description enrichment enabled", slog.String("model", cfg.Enrichment.Model))
	}

	engine := lifecycle.NewService(logger, lifecycle.Config{
		MaxTitleLength:   cfg.Lifecycle.MaxTitleLength,
		MaxMessageLength: cfg.Lifecycle.MaxMessageLength,
	}, items, claims, tx, enrich)
	defer engine.Close()

	queries := query.NewService(logger, items, claims)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	router := rest.NewRouter(
		rest.NewItemsHandler(engine, queries, logger),
		rest.NewClaimsHandler(engine, queries, logger),
		rest.NewHealthHandler(pinger, BuildVersion()),
	)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	}

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimitPerMin > 0 {
		limiter = middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMin))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      middleware.Chain(mws...)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
