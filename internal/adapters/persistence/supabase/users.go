package supabase

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
)

// GetUsersByEmail retrieves the user rows matching an email via a PostgREST
// equality filter. The email is escaped before interpolation.
func (c *Client) GetUsersByEmail(ctx context.Context, email string) ([]domain.Record, error) {
	return c.getRows(ctx, "/users?select=*&email=eq."+url.QueryEscape(email))
}

// CreateUser inserts a user and returns the created row
func (c *Client) CreateUser(ctx context.Context, payload domain.Record) (domain.Record, error) {
	return c.writeRow(ctx, http.MethodPost, "/users", payload)
}
