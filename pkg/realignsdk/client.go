package realignsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a client for the NorthPath realignment service. It covers the
// public endpoints and creates authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// CheckScopes makes Sessions refuse requests their token has no scope
	// for instead of sending them. Disable in tests that exercise
	// server-side scope checks.
	// Default: true
	CheckScopes bool
}

// NewClient creates a client with scope checking enabled.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		CheckScopes: true,
	}
}

// GetTiers lists the pricing tiers and their limits.
func (c *Client) GetTiers(ctx context.Context) (*TiersResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/tiers", nil, nil)
	if err != nil {
		return nil, err
	}

	var out TiersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetQuestions returns the question bank, filtered to tier when non-empty.
func (c *Client) GetQuestions(ctx context.Context, tier string) (*QuestionsResponse, error) {
	path := "/v1/questions"
	if tier != "" {
		path += "?tier=" + url.QueryEscape(tier)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out QuestionsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Score computes metrics for an answer set without storing anything.
func (c *Client) Score(ctx context.Context, req ScoreRequest) (*ScoreResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/score", req, nil)
	if err != nil {
		return nil, err
	}

	var out ScoreResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetShared resolves a share token to a read-only realignment.
func (c *Client) GetShared(ctx context.Context, token string) (*Realignment, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/shared/"+url.PathEscape(token), nil, nil)
	if err != nil {
		return nil, err
	}

	var out Realignment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
