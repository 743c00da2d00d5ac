package supabase

import (
	"context"
	"net/http"

	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
)

// GetEmergencies retrieves all emergency report rows
func (c *Client) GetEmergencies(ctx context.Context) ([]domain.Record, error) {
	return c.getRows(ctx, "/emergency_reports?select=*")
}

// CreateEmergency inserts an emergency report and returns the created row
func (c *Client) CreateEmergency(ctx context.Context, payload domain.Record) (domain.Record, error) {
	return c.writeRow(ctx, http.MethodPost, "/emergency_reports", payload)
}
