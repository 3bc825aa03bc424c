package domain

import "testing"

func TestItemStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []ItemStatus{ItemStatusLost, ItemStatusFound, ItemStatusClaimed}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}

	invalid := []ItemStatus{"", "lost", "STOLEN"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestItemStatus_IsReportable(t *testing.T) {
	t.Parallel()

	if !ItemStatusLost.IsReportable() {
		t.Error("LOST should be reportable")
	}
	if !ItemStatusFound.IsReportable() {
		t.Error("FOUND should be reportable")
	}
	if ItemStatusClaimed.IsReportable() {
		t.Error("CLAIMED must not be reportable")
	}
}

func TestClaimStatus_IsResolved(t *testing.T) {
	t.Parallel()

	if ClaimStatusPending.IsResolved() {
		t.Error("PENDING should not be resolved")
	}
	if !ClaimStatusApproved.IsResolved() {
		t.Error("APPROVED should be resolved")
	}
	if !ClaimStatusRejected.IsResolved() {
		t.Error("REJECTED should be resolved")
	}
}

func TestReviewDecision_IsValid(t *testing.T) {
	t.Parallel()

	if !ReviewDecisionApprove.IsValid() || !ReviewDecisionReject.IsValid() {
		t.Error("APPROVE and REJECT should be valid")
	}
	if ReviewDecision("MAYBE").IsValid() {
		t.Error("MAYBE should be invalid")
	}
}

func TestUserRole_IsReviewer(t *testing.T) {
	t.Parallel()

	if UserRoleUser.IsReviewer() {
		t.Error("user role must not be reviewer")
	}
	if !UserRoleReviewer.IsReviewer() {
		t.Error("reviewer role should be reviewer")
	}
}
