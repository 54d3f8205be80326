package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	apperrors "github.com/protocolhere/urlscan/internal/shared/errors"
	consts "github.com/protocolhere/urlscan/internal/shared/constants"
)

// Response is the single snapshot a scan inspects.
type Response struct {
	URL        string        // URL as requested
	FinalURL   string        // URL after redirects
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
}

// Cookies returns the raw Set-Cookie header values in the order they were received.
func (r *Response) Cookies() []string {
	if r == nil {
		return nil
	}
	return r.Header.Values("Set-Cookie")
}

// Options holds configuration for creating a new Client.
type Options struct {
	// Timeout bounds the whole request including redirects.
	Timeout time.Duration

	// UserAgent is sent on every request when non-empty.
	UserAgent string

	// MaxBodyBytes caps how much of the body is read (0 = default).
	MaxBodyBytes int64

	// Transport overrides the HTTP round tripper; used by tests.
	Transport http.RoundTripper
}

// Stats holds aggregate statistics for the client.
type Stats struct {
	TotalRequests int64
	TotalDuration time.Duration
	AvgDuration   time.Duration
}

// Client fetches targets over HTTP(S). It is safe for concurrent use.
type Client struct {
	httpClient   *http.Client
	userAgent    string
	maxBodyBytes int64

	mu              sync.Mutex
	totalRequests   int64
	totalDurationNs int64
}

// NewClient creates a Client with the given options.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = consts.DefaultHTTPTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = consts.DefaultMaxBodyBytes
	}

	rt := opts.Transport
	if rt == nil {
		rt = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			ForceAttemptHTTP2: true,
		}
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: rt,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= consts.MaxRedirects {
					return fmt.Errorf("stopped after %d redirects", consts.MaxRedirects)
				}
				return nil
			},
		},
		userAgent:    opts.UserAgent,
		maxBodyBytes: opts.MaxBodyBytes,
	}
	return c
}

// Fetch performs a GET against target, following redirects, and reads the body.
// Any network failure or a final status >= 400 is returned as a *TransportError.
func (c *Client) Fetch(ctx context.Context, target string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: target, Err: fmt.Errorf("create request: %w", err)}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	duration := time.Since(start)
	c.record(duration)
	if err != nil {
		return nil, &TransportError{URL: target, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &TransportError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %s", apperrors.ErrHTTPStatus, resp.Status),
		}
	}

	return &Response{
		URL:        target,
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		Duration:   duration,
	}, nil
}

func (c *Client) record(d time.Duration) {
	c.mu.Lock()
	c.totalRequests++
	c.totalDurationNs += d.Nanoseconds()
	c.mu.Unlock()
}

// Stats returns aggregate transport statistics.
func (c *Client) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := Stats{
		TotalRequests: c.totalRequests,
		TotalDuration: time.Duration(c.totalDurationNs),
	}
	if c.totalRequests > 0 {
		stats.AvgDuration = time.Duration(c.totalDurationNs / c.totalRequests)
	}
	return stats
}
