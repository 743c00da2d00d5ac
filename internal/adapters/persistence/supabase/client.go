package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
)

const requestTimeout = 30 * time.Second

// Client talks to the Supabase REST API (PostgREST). It is constructed once
// at startup and shared by all requests; it holds no mutable state.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Supabase client for the given project URL and API key.
// The REST path prefix is appended here so callers work with bare table paths.
func NewClient(baseURL, apiKey string) *Client {
	trimmed := strings.TrimSuffix(baseURL, "/")
	return &Client{
		baseURL:    trimmed + "/rest/v1",
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Supabase requires both headers carrying the same key.
func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
}

// getRows performs a GET and decodes the JSON array response
func (c *Client) getRows(ctx context.Context, path string) ([]domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	c.setAuthHeaders(req)

	return c.doRows(req)
}

// writeRow performs a mutating call (POST or PATCH) asking PostgREST to
// return the affected rows, and yields the first row. PostgREST answers
// mutations with an array; an empty array yields an empty record.
func (c *Client) writeRow(ctx context.Context, method, path string, payload any) (domain.Record, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	rows, err := c.doRows(req)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return domain.Record{}, nil
	}
	return rows[0], nil
}

// Ping checks that the upstream store is reachable
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.getRows(ctx, "/complaints?select=id&limit=1")
	return err
}

func (c *Client) doRows(req *http.Request) ([]domain.Record, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrUpstream, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s %s returned %d: %s",
			domain.ErrUpstream, req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var rows []domain.Record
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decoding %s %s response: %v", domain.ErrUpstream, req.Method, req.URL.Path, err)
	}
	return rows, nil
}
