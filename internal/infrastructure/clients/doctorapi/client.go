package doctorapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client fetches raw practitioner records from the upstream feed.
type Client interface {
	FetchRecords(ctx context.Context) ([]RawDoctor, error)
}

// HTTPClient is the resty-backed Client implementation.
type HTTPClient struct {
	url    string
	client *resty.Client
}

// NewHTTPClient creates a new feed client for the given URL.
func NewHTTPClient(url string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		url:    url,
		client: resty.New().SetTimeout(timeout),
	}
}

// FetchRecords performs a single GET of the whole feed. There is no retry;
// the caller substitutes the built-in fallback record set on failure.
func (c *HTTPClient) FetchRecords(ctx context.Context) ([]RawDoctor, error) {
	if c.url == "" {
		return nil, fmt.Errorf("no feed URL configured")
	}

	resp, err := c.client.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}

	var records []RawDoctor
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return records, nil
}
