// Package overdrive is a client for the OverDrive Thunder search API, the
// unauthenticated endpoint behind Libby's library catalogue search.
package overdrive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://thunder.api.overdrive.com/v2/libraries"
	userAgent      = "libbymon/1.0"
	requestTimeout = 10 * time.Second
)

// ErrDecode marks a response body that was not the expected JSON shape.
var ErrDecode = errors.New("malformed catalogue response")

// StatusError is a non-2xx reply from the catalogue API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalogue returned HTTP %d", e.Code)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL)
}

func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Search runs one anonymous query against a library's catalogue. Result
// count is capped by the service, not paginated here. The client never
// retries; retry policy belongs to the caller.
func (c *Client) Search(ctx context.Context, libraryCode, query string) ([]CatalogEntry, error) {
	u := fmt.Sprintf("%s/%s/media?query=%s", c.baseURL, url.PathEscape(libraryCode), url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("search %q in %s: %w", query, libraryCode, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %q in %s: %w", query, libraryCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	entries := make([]CatalogEntry, 0, len(sr.Items))
	for _, it := range sr.Items {
		entries = append(entries, convertItem(it))
	}
	return entries, nil
}
