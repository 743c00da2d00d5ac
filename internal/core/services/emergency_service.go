package services

import (
	"context"

	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
)

// renames applied to emergency payloads before delegation upstream
var emergencyRenames = map[string]string{
	"audioUrl":  "audio_url",
	"createdAt": "created_at",
	"userId":    "user_id",
}

// EmergencyService forwards emergency-report operations to the upstream store
type EmergencyService struct {
	store EmergencyStore
}

// NewEmergencyService creates a new emergency service
func NewEmergencyService(store EmergencyStore) *EmergencyService {
	return &EmergencyService{store: store}
}

// List returns all emergency report records verbatim
func (s *EmergencyService) List(ctx context.Context) ([]domain.Record, error) {
	return s.store.GetEmergencies(ctx)
}

// Create renames the camelCase keys the web client sends to their snake_case
// columns and delegates creation upstream. Unlike complaints there is no
// whitelist: every other field passes through untouched.
func (s *EmergencyService) Create(ctx context.Context, payload domain.Record) (domain.Record, error) {
	fixed := make(domain.Record, len(payload))
	for key, value := range payload {
		if renamed, ok := emergencyRenames[key]; ok {
			fixed[renamed] = value
			continue
		}
		fixed[key] = value
	}

	return s.store.CreateEmergency(ctx, fixed)
}
