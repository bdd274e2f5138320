package books

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultAPIURL is the Google Books volumes search endpoint.
const DefaultAPIURL = "https://www.googleapis.com/books/v1/volumes"

// Client queries the Google Books API for volumes.
type Client struct {
	BaseURL    string
	APIKey     string
	MaxResults int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Google Books client. requestRate is the allowed
// request rate in requests per second; the public API throttles
// aggressively, so callers should keep this around 1.
func NewClient(baseURL, apiKey string, maxResults int, requestRate float64) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		MaxResults: maxResults,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(requestRate), 1),
	}
}

// Search runs a volumes query and returns the decoded volumeInfo of each
// item. The query string should already carry any field prefix understood
// by the API, e.g. "subject:fantasy" or "inauthor:tolkien". A response
// without an items array is a valid empty result, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]Volume, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	apiURL := fmt.Sprintf("%s?q=%s&maxResults=%d", c.BaseURL, url.QueryEscape(query), c.MaxResults)
	if c.APIKey != "" {
		apiURL += "&key=" + url.QueryEscape(c.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Books request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query Google Books API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("google Books API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Items []struct {
			VolumeInfo Volume `json:"volumeInfo"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode Google Books response: %w", err)
	}

	volumes := make([]Volume, 0, len(result.Items))
	for _, item := range result.Items {
		volumes = append(volumes, item.VolumeInfo)
	}

	slog.Debug("Fetched volumes", "query", query, "count", len(volumes))
	return volumes, nil
}
