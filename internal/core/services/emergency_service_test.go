package services_test

import (
	"context"
	"testing"

	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
	"github.com/rubayet36/jatri-ovijog/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEmergencyCreate_Renames verifies the three camelCase keys are renamed
// in place while every other field passes through untouched.
func TestEmergencyCreate_Renames(t *testing.T) {
	store := &stubEmergencyStore{}
	svc := services.NewEmergencyService(store)

	_, err := svc.Create(context.Background(), domain.Record{
		"latitude":  23.8103,
		"longitude": 90.4125,
		"accuracy":  12.5,
		"audioUrl":  "https://audio.example/a.ogg",
		"createdAt": "2024-05-01T10:00:00Z",
		"userId":    float64(4),
		"anything":  "passes through",
	})
	require.NoError(t, err)
	require.Len(t, store.created, 1)

	assert.Equal(t, domain.Record{
		"latitude":   23.8103,
		"longitude":  90.4125,
		"accuracy":   12.5,
		"audio_url":  "https://audio.example/a.ogg",
		"created_at": "2024-05-01T10:00:00Z",
		"user_id":    float64(4),
		"anything":   "passes through",
	}, store.created[0])
}

// TestEmergencyCreate_NoRenamableKeys verifies a payload without any of the
// renamed keys is forwarded as-is.
func TestEmergencyCreate_NoRenamableKeys(t *testing.T) {
	store := &stubEmergencyStore{}
	svc := services.NewEmergencyService(store)

	payload := domain.Record{"latitude": 1.0, "longitude": 2.0}
	_, err := svc.Create(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, payload, store.created[0])
}

// TestEmergencyList_Verbatim verifies rows come back untouched.
func TestEmergencyList_Verbatim(t *testing.T) {
	rows := []domain.Record{{"id": float64(1), "latitude": 23.0}}
	svc := services.NewEmergencyService(&stubEmergencyStore{rows: rows})

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
