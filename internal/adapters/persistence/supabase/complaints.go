package supabase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
)

// GetComplaints retrieves all complaint rows
func (c *Client) GetComplaints(ctx context.Context) ([]domain.Record, error) {
	return c.getRows(ctx, "/complaints?select=*")
}

// CreateComplaint inserts a complaint and returns the created row
func (c *Client) CreateComplaint(ctx context.Context, payload domain.ComplaintInsert) (domain.Record, error) {
	return c.writeRow(ctx, http.MethodPost, "/complaints", payload)
}

// UpdateComplaint patches the complaint with the given id and returns the
// updated row. When no row matches the id an empty record is returned.
func (c *Client) UpdateComplaint(ctx context.Context, id int64, fields domain.Record) (domain.Record, error) {
	return c.writeRow(ctx, http.MethodPatch, fmt.Sprintf("/complaints?id=eq.%d", id), fields)
}
