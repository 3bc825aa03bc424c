package domain

// StatusFilter narrows an item listing to a lifecycle state.
// The zero value (StatusFilterAll) returns every item.
type StatusFilter string

const (
	StatusFilterAll   StatusFilter = ""
	StatusFilterLost  StatusFilter = "LOST"
	StatusFilterFound StatusFilter = "FOUND"
)

func (f StatusFilter) IsValid() bool {
	switch f {
	case StatusFilterAll, StatusFilterLost, StatusFilterFound:
		return true
	}
	return false
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ItemFilter defines parameters for listing items.
type ItemFilter struct {
	// Status narrows the listing to LOST or FOUND items.
	Status StatusFilter

	// Search performs a case-insensitive substring match on title and
	// description. Empty string means no text filter.
	Search string

	// Limit is the maximum number of items to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of items to skip.
	Offset int
}

// Normalize applies defaults and clamps values.
func (f *ItemFilter) Normalize() {
	if !f.Status.IsValid() {
		f.Status = StatusFilterAll
	}
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
