package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
	"github.com/shantanucs24-boop/campus-connect/internal/service/lifecycle"
)

// lifecycleService defines the write operations needed by the handlers.
type lifecycleService interface {
	ReportItem(ctx context.Context, input lifecycle.ReportItemInput) (*domain.Item, error)
	SubmitClaim(ctx context.Context, input lifecycle.SubmitClaimInput) (*domain.Claim, error)
	ReviewClaim(ctx context.Context, input lifecycle.ReviewClaimInput) (*domain.Claim, error)
}

// queryService defines the read operations needed by the handlers.
type queryService interface {
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, []*domain.Claim, error)
	ListClaimsForUser(ctx context.Context) ([]*domain.Claim, error)
}

// ItemsHandler serves item REST endpoints.
type ItemsHandler struct {
	engine lifecycleService
	query  queryService
	log    *slog.Logger
}

// NewItemsHandler creates an ItemsHandler.
func NewItemsHandler(engine lifecycleService, query queryService, logger *slog.Logger) *ItemsHandler {
	return &ItemsHandler{
		engine: engine,
		query:  query,
		log:    logger.With("handler", "items"),
	}
}

type reportItemRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	ImageRef    string  `json:"image_ref"`
	Status      string  `json:"status"`
	Location    *string `json:"location,omitempty"`
}

type itemResponse struct {
	ID          string     `json:"id"`
	ReporterID  string     `json:"reporter_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageRef    string     `json:"image_ref"`
	Status      string     `json:"status"`
	Location    *string    `json:"location,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type itemDetailResponse struct {
	itemResponse
	Claims []claimResponse `json:"claims"`
}

type listItemsResponse struct {
	Items []itemResponse `json:"items"`
}

// Report handles POST /items.
func (h *ItemsHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req reportItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.engine.ReportItem(r.Context(), lifecycle.ReportItemInput{
		Title:       req.Title,
		Description: req.Description,
		ImageRef:    req.ImageRef,
		Status:      domain.ItemStatus(req.Status),
		Location:    req.Location,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// List handles GET /items?status=FOUND&search=bottle&limit=50&offset=0.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.ItemFilter{
		Status: domain.StatusFilter(q.Get("status")),
		Search: q.Get("search"),
	}
	filter.Limit = queryInt(q.Get("limit"))
	filter.Offset = queryInt(q.Get("offset"))

	items, err := h.query.ListItems(r.Context(), filter)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	resp := listItemsResponse{Items: make([]itemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, claims, err := h.query.GetItem(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	resp := itemDetailResponse{
		itemResponse: toItemResponse(item),
		Claims:       make([]claimResponse, 0, len(claims)),
	}
	for _, claim := range claims {
		resp.Claims = append(resp.Claims, toClaimResponse(claim))
	}
	writeJSON(w, http.StatusOK, resp)
}

func toItemResponse(item *domain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID.String(),
		ReporterID:  item.ReporterID.String(),
		Title:       item.Title,
		Description: item.Description,
		ImageRef:    item.ImageRef,
		Status:      item.Status.String(),
		Location:    item.Location,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func queryInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
