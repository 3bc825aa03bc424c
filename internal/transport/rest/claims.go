package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
	"github.com/shantanucs24-boop/campus-connect/internal/service/lifecycle"
)

// ClaimsHandler serves claim REST endpoints.
type ClaimsHandler struct {
	engine lifecycleService
	query  queryService
	log    *slog.Logger
}

// NewClaimsHandler creates a ClaimsHandler.
func NewClaimsHandler(engine lifecycleService, query queryService, logger *slog.Logger) *ClaimsHandler {
	return &ClaimsHandler{
		engine: engine,
		query:  query,
		log:    logger.With("handler", "claims"),
	}
}

type submitClaimRequest struct {
	Message string `json:"message"`
}

type reviewClaimRequest struct {
	Decision string `json:"decision"`
}

type claimResponse struct {
	ID         string     `json:"id"`
	ItemID     string     `json:"item_id"`
	ClaimantID string     `json:"claimant_id"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type listClaimsResponse struct {
	Claims []claimResponse `json:"claims"`
}

// Submit handles POST /items/{id}/claims.
func (h *ClaimsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req submitClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claim, err := h.engine.SubmitClaim(r.Context(), lifecycle.SubmitClaimInput{
		ItemID:  itemID,
		Message: req.Message,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toClaimResponse(claim))
}

// Review handles POST /claims/{id}/review.
func (h *ClaimsHandler) Review(w http.ResponseWriter, r *http.Request) {
	claimID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	var req reviewClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claim, err := h.engine.ReviewClaim(r.Context(), lifecycle.ReviewClaimInput{
		ClaimID:  claimID,
		Decision: domain.ReviewDecision(req.Decision),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toClaimResponse(claim))
}

// ListMine handles GET /claims/mine.
func (h *ClaimsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, err := h.query.ListClaimsForUser(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	resp := listClaimsResponse{Claims: make([]claimResponse, 0, len(claims))}
	for _, claim := range claims {
		resp.Claims = append(resp.Claims, toClaimResponse(claim))
	}
	writeJSON(w, http.StatusOK, resp)
}

func toClaimResponse(claim *domain.Claim) claimResponse {
	return claimResponse{
		ID:         claim.ID.String(),
		ItemID:     claim.ItemID.String(),
		ClaimantID: claim.ClaimantID.String(),
		Message:    claim.Message,
		Status:     claim.Status.String(),
		CreatedAt:  claim.CreatedAt,
		ResolvedAt: claim.ResolvedAt,
	}
}
