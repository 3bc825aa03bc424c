package domain

import (
	"errors"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "required")
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError should unwrap to ErrValidation")
	}
	want := "validation: title — required"
	if err.Error() != want {
		t.Errorf("message: got %q, want %q", err.Error(), want)
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Errors: []FieldError{
		{Field: "title", Message: "required"},
		{Field: "image_ref", Message: "required"},
	}}
	want := "validation: 2 errors"
	if err.Error() != want {
		t.Errorf("message: got %q, want %q", err.Error(), want)
	}
}

func TestInvalidStateError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewInvalidStateError("item", "submit claim", "LOST")
	if !errors.Is(err, ErrInvalidState) {
		t.Error("InvalidStateError should unwrap to ErrInvalidState")
	}

	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatal("errors.As should match *InvalidStateError")
	}
	if ise.Current != "LOST" {
		t.Errorf("current state: got %q, want %q", ise.Current, "LOST")
	}
}

func TestItemFilter_Normalize(t *testing.T) {
	t.Parallel()

	f := ItemFilter{Status: "BROKEN", Limit: 1000, Offset: -1}
	f.Normalize()

	if f.Status != StatusFilterAll {
		t.Errorf("status: got %q, want all", f.Status)
	}
	if f.Limit != 200 {
		t.Errorf("limit: got %d, want 200", f.Limit)
	}
	if f.Offset != 0 {
		t.Errorf("offset: got %d, want 0", f.Offset)
	}

	var zero ItemFilter
	zero.Normalize()
	if zero.Limit != 50 {
		t.Errorf("default limit: got %d, want 50", zero.Limit)
	}
}
