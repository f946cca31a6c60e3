// Package resource retrieves the raw bytes behind opaque URLs. It is the
// networking half of a load attempt; decoding lives in pkg/images.
package resource

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultUserAgent identifies the viewer to origin servers.
const DefaultUserAgent = "lumiere/1.0 (compatible; Go)"

// DefaultTimeout bounds a whole fetch, connection included.
const DefaultTimeout = 30 * time.Second

// Fetcher retrieves a resource by URL.
type Fetcher interface {
	Fetch(url string) (body []byte, contentType string, err error)
}

// HTTPFetcher fetches resources over HTTP and HTTPS. URLs with any other
// scheme are rejected; that rejection is a failed load, not input
// validation, and callers hand any string straight through.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a fetcher with the default timeout and user agent.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
	}
}

// SetTimeout replaces the total per-fetch timeout. Zero means no limit.
func (f *HTTPFetcher) SetTimeout(d time.Duration) {
	f.client.Timeout = d
}

// SetUserAgent replaces the User-Agent header sent with each request.
func (f *HTTPFetcher) SetUserAgent(ua string) {
	f.userAgent = ua
}

// Fetch retrieves the resource at the given URL. Returns the response body,
// the Content-Type header, and any error. Non-2xx statuses are errors.
func (f *HTTPFetcher) Fetch(rawURL string) ([]byte, string, error) {
	if !IsNetworkURL(rawURL) {
		return nil, "", fmt.Errorf("cannot fetch non-network URL: %s", rawURL)
	}

	req, err := http.NewRequest("GET", rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response body: %w", err)
	}

	return body, resp.Header.Get("Content-Type"), nil
}

// IsNetworkURL returns true if the string looks like an HTTP or HTTPS URL.
func IsNetworkURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
