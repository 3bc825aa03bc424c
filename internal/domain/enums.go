package domain

// ItemStatus represents the lifecycle state of a reported item.
type ItemStatus string

const (
	ItemStatusLost    ItemStatus = "LOST"
	ItemStatusFound   ItemStatus = "FOUND"
	ItemStatusClaimed ItemStatus = "CLAIMED"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusLost, ItemStatusFound, ItemStatusClaimed:
		return true
	}
	return false
}

// IsReportable reports whether a reporter may declare this status at
// creation time. CLAIMED is only ever reached through an approved claim.
func (s ItemStatus) IsReportable() bool {
	return s == ItemStatusLost || s == ItemStatusFound
}

// ClaimStatus represents the lifecycle state of an ownership claim.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "PENDING"
	ClaimStatusApproved ClaimStatus = "APPROVED"
	ClaimStatusRejected ClaimStatus = "REJECTED"
)

func (s ClaimStatus) String() string { return string(s) }

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected:
		return true
	}
	return false
}

// IsResolved reports whether the claim has left PENDING. Resolved claims
// are terminal and never change again.
func (s ClaimStatus) IsResolved() bool {
	return s == ClaimStatusApproved || s == ClaimStatusRejected
}

// ReviewDecision is a reviewer's verdict on a pending claim.
type ReviewDecision string

const (
	ReviewDecisionApprove ReviewDecision = "APPROVE"
	ReviewDecisionReject  ReviewDecision = "REJECT"
)

func (d ReviewDecision) String() string { return string(d) }

func (d ReviewDecision) IsValid() bool {
	switch d {
	case ReviewDecisionApprove, ReviewDecisionReject:
		return true
	}
	return false
}

// UserRole represents the authorization level of a caller.
type UserRole string

const (
	UserRoleUser     UserRole = "user"
	UserRoleReviewer UserRole = "reviewer"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleReviewer:
		return true
	}
	return false
}

func (r UserRole) IsReviewer() bool {
	return r == UserRoleReviewer
}
