package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher is the HTTP collaborator shared by all adapters: one request,
// bounded timeout, no retries, no caching.
type Fetcher struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

func NewFetcher(client *http.Client, userAgent string, timeout time.Duration) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{
		client:    client,
		userAgent: userAgent,
		timeout:   timeout,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
