package httpclient

import (
	"context"
	"net/http"
	"time"
)

// DefaultTimeout bounds every request; the run is triggered by an external
// scheduler, so a hung fetch should fail rather than stall indefinitely.
const DefaultTimeout = 30 * time.Second

// HTTPClient wraps an http.Client with the headers the source site expects.
// casarosada.gob.ar serves 403 to Go's default User-Agent, so requests go
// out with browser-like headers.
type HTTPClient struct {
	client *http.Client
}

// New creates a client with the default timeout.
func New() *HTTPClient {
	return NewWithTimeout(DefaultTimeout)
}

// NewWithTimeout creates a client with a custom timeout.
func NewWithTimeout(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Follow up to 10 redirects
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

// Get issues a GET request with browser-like headers.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	return c.client.Do(req)
}

func (c *HTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "es-AR,es;q=0.9,en;q=0.8")
	req.Header.Set("Connection", "keep-alive")
}
