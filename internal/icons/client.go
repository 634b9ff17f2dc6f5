// Package icons proxies searches to the Noun Project API. Requests are
// signed with the two-legged OAuth 1.0a HMAC-SHA1 scheme the API requires,
// using whatever credentials are stored at call time.
package icons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dghubble/oauth1"
)

const (
	defaultBaseURL = "https://api.thenounproject.com"
	searchLimit    = 50

	// Courtesy timeout on the upstream call; requests are never cut off
	// server-side, only this outbound call is bounded.
	requestTimeout = 10 * time.Second

	maxErrorBody = 8 << 10
)

// ErrNotConfigured is returned when either credential is empty; no network
// call is made in that case.
var ErrNotConfigured = errors.New("icon search credentials not configured")

// UpstreamError carries a non-2xx upstream status and body for diagnostics.
// Handlers log it in full and surface only a generic message.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("icon search upstream returned %d: %s", e.Status, e.Body)
}

// Icon is one flattened search result.
type Icon struct {
	ID           string   `json:"id"`
	Term         string   `json:"term"`
	PreviewURL   string   `json:"previewUrl"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Attribution  string   `json:"attribution"`
	Tags         []string `json:"tags"`
}

type searchResponse struct {
	Icons []struct {
		ID           json.Number `json:"id"`
		Term         string      `json:"term"`
		PreviewURL   string      `json:"preview_url"`
		ThumbnailURL string      `json:"thumbnail_url"`
		Attribution  string      `json:"attribution"`
		Tags         []string    `json:"tags"`
	} `json:"icons"`
}

type Client struct {
	baseURL string
	timeout time.Duration
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		timeout: requestTimeout,
	}
}

// Search runs a signed icon search. The client holds no credential state;
// key and secret come from the stored config on every call.
func (c *Client) Search(ctx context.Context, key, secret, query string) ([]Icon, error) {
	if key == "" || secret == "" {
		return nil, ErrNotConfigured
	}

	endpoint, err := url.Parse(c.baseURL + "/v2/icon")
	if err != nil {
		return nil, fmt.Errorf("icon search endpoint: %w", err)
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", fmt.Sprintf("%d", searchLimit))
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("icon search request: %w", err)
	}

	// Two-legged signing: consumer credentials only, empty token.
	httpClient := oauth1.NewConfig(key, secret).Client(ctx, oauth1.NewToken("", ""))
	httpClient.Timeout = c.timeout

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("icon search call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("icon search response: %w", err)
	}

	results := make([]Icon, 0, len(parsed.Icons))
	for _, ic := range parsed.Icons {
		results = append(results, Icon{
			ID:           ic.ID.String(),
			Term:         ic.Term,
			PreviewURL:   ic.PreviewURL,
			ThumbnailURL: ic.ThumbnailURL,
			Attribution:  ic.Attribution,
			Tags:         ic.Tags,
		})
	}
	return results, nil
}
