package services

import (
	"context"

	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
)

// UserStore is the upstream user-record surface the auth service depends on
type UserStore interface {
	GetUsersByEmail(ctx context.Context, email string) ([]domain.Record, error)
	CreateUser(ctx context.Context, payload domain.Record) (domain.Record, error)
}

// ComplaintStore is the upstream complaint surface
type ComplaintStore interface {
	GetComplaints(ctx context.Context) ([]domain.Record, error)
	CreateComplaint(ctx context.Context, payload domain.ComplaintInsert) (domain.Record, error)
	UpdateComplaint(ctx context.Context, id int64, fields domain.Record) (domain.Record, error)
}

// EmergencyStore is the upstream emergency-report surface
type EmergencyStore interface {
	GetEmergencies(ctx context.Context) ([]domain.Record, error)
	CreateEmergency(ctx context.Context, payload domain.Record) (domain.Record, error)
}
