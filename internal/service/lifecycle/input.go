package lifecycle

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shantanucs24-boop/campus-connect/internal/domain"
)

// ReportItemInput holds the parameters for reporting a lost or found item.
type ReportItemInput struct {
	Title       string
	Description string
	ImageRef    string
	Status      domain.ItemStatus
	Location    *string
}

// Validate checks all fields and collects all errors.
func (i ReportItemInput) Validate(cfg Config) error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > cfg.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", cfg.MaxTitleLength)})
	}

	if strings.TrimSpace(i.ImageRef) == "" {
		errs = append(errs, domain.FieldError{Field: "image_ref", Message: "required"})
	}

	if !i.Status.IsReportable() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be LOST or FOUND"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitClaimInput holds the parameters for claiming a found item.
type SubmitClaimInput struct {
	ItemID  uuid.UUID
	Message string
}

// Validate checks all fields and collects all errors.
func (i SubmitClaimInput) Validate(cfg Config) error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}

	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if len(msg) > cfg.MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: fmt.Sprintf("max %d characters", cfg.MaxMessageLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReviewClaimInput holds the parameters for resolving a pending claim.
type ReviewClaimInput struct {
	ClaimID  uuid.UUID
	Decision domain.ReviewDecision
}

// Validate checks all fields and collects all errors.
func (i ReviewClaimInput) Validate() error {
	var errs []domain.FieldError

	if i.ClaimID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "claim_id", Message: "required"})
	}
	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be APPROVE or REJECT"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
