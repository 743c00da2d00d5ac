package domain

import "strings"

// Record represents one row from the upstream store, as returned by the
// Supabase REST API. Rows are flat key/value maps; identifier assignment and
// all durable state are owned upstream.
type Record = map[string]any

// DefaultRole is assigned to users who sign up without an explicit role
const DefaultRole = "user"

// ComplaintInsert is the typed payload sent upstream when creating a
// complaint. Only these columns exist in the complaints table; anything else
// a client submits is dropped before delegation.
type ComplaintInsert struct {
	Category     any `json:"category"`
	Status       any `json:"status"`
	Thana        any `json:"thana"`
	Route        any `json:"route"`
	Description  any `json:"description"`
	BusName      any `json:"bus_name"`
	BusNumber    any `json:"bus_number"`
	ImageURL     any `json:"image_url"`
	ReporterType any `json:"reporter_type"`
	CreatedAt    any `json:"created_at"`
	UserID       any `json:"user_id"`
}

// Complaint status values accepted by the status update endpoint
const (
	StatusNew      = "new"
	StatusWorking  = "working"
	StatusResolved = "resolved"
	StatusFake     = "fake"
)

// AllowedStatuses lists the valid complaint statuses in display order
var AllowedStatuses = []string{StatusNew, StatusWorking, StatusResolved, StatusFake}

// NormalizeStatus lower-cases and trims a client-supplied status value
func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// ValidStatus reports whether a normalized status is in the allowed set
func ValidStatus(status string) bool {
	for _, s := range AllowedStatuses {
		if status == s {
			return true
		}
	}
	return false
}
