package services

import (
	"context"
	"strings"

	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
)

// ComplaintService forwards complaint operations to the upstream store
type ComplaintService struct {
	store ComplaintStore
}

// NewComplaintService creates a new complaint service
func NewComplaintService(store ComplaintStore) *ComplaintService {
	return &ComplaintService{store: store}
}

// List returns all complaint records verbatim
func (s *ComplaintService) List(ctx context.Context) ([]domain.Record, error) {
	return s.store.GetComplaints(ctx)
}

// Create extracts the whitelisted complaint columns from an arbitrary client
// payload, renaming camelCase keys to their snake_case columns, and delegates
// creation upstream. Any other payload field is dropped.
func (s *ComplaintService) Create(ctx context.Context, payload domain.Record) (domain.Record, error) {
	insert := domain.ComplaintInsert{
		Category:     payload["category"],
		Status:       valueOr(payload, "status", domain.StatusNew),
		Thana:        payload["thana"],
		Route:        payload["route"],
		Description:  payload["description"],
		BusName:      payload["busName"],
		BusNumber:    payload["busNumber"],
		ImageURL:     payload["imageUrl"],
		ReporterType: payload["reporterType"],
		CreatedAt:    payload["createdAt"],
		// Clients that predate login send no userId; the legacy rows
		// belong to user 1.
		UserID: valueOr(payload, "userId", 1),
	}

	return s.store.CreateComplaint(ctx, insert)
}

// UpdateStatus validates the target status against the fixed set and patches
// the complaint upstream, attaching a verification note when one is given
func (s *ComplaintService) UpdateStatus(ctx context.Context, id int64, status, note string) (domain.Record, error) {
	normalized := domain.NormalizeStatus(status)
	if !domain.ValidStatus(normalized) {
		return nil, domain.ErrInvalidStatus
	}

	fields := domain.Record{"status": normalized}
	if trimmed := strings.TrimSpace(note); trimmed != "" {
		fields["verification_note"] = trimmed
	}

	return s.store.UpdateComplaint(ctx, id, fields)
}

// valueOr returns the payload value for key, or def when the key is absent
// or null
func valueOr(payload domain.Record, key string, def any) any {
	if v, ok := payload[key]; ok && v != nil {
		return v
	}
	return def
}
