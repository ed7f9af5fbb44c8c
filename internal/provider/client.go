package provider

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
	defaultUserAgent  = "etymology-backend/1.0"
)

// ClientOptions configures the HTTP client shared by the source adapters.
type ClientOptions struct {
	Timeout   time.Duration
	UserAgent string
}

// Client performs GET requests against one external source with a single
// retry on 5xx or network errors.
type Client struct {
	name       string
	userAgent  string
	retryDelay time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the named source. Zero options fall back to
// a 10s timeout and the default user agent.
func NewClient(name string, opts ClientOptions, logger *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	return &Client{
		name:       name,
		userAgent:  opts.UserAgent,
		retryDelay: defaultRetryDelay,
		httpClient: &http.Client{Timeout: opts.Timeout},
		log:        logger,
	}
}

// SetRetryDelay overrides the pause before the retry attempt.
func (c *Client) SetRetryDelay(d time.Duration) {
	c.retryDelay = d
}

// Get fetches reqURL and returns the response with its body unread. The
// caller closes the body.
func (c *Client) Get(ctx context.Context, reqURL, word string) (*http.Response, error) {
	resp, err := c.do(ctx, reqURL)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, c.name+" retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	return c.do(ctx, reqURL)
}

func (c *Client) do(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	return c.httpClient.Do(req)
}

// ReadLimited reads at most limit bytes of body. Anything beyond the limit
// is discarded.
func ReadLimited(body io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, limit))
}
