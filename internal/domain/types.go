package domain

// ListingStatus values accepted by the listings table.
const (
	StatusActive   = "active"
	StatusDraft    = "draft"
	StatusSold     = "sold"
	StatusRented   = "rented"
	StatusInactive = "inactive"
)

// ValidListingStatus reports whether s is one of the known states.
func ValidListingStatus(s string) bool {
	switch s {
	case StatusActive, StatusDraft, StatusSold, StatusRented, StatusInactive:
		return true
	}
	return false
}

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// ActionResult is the uniform mutation envelope returned by admin
// actions. UI callers branch on Success and render Message or Errors.
type ActionResult struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
