package etymonline

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/etymology-backend/internal/provider"
)

const (
	defaultBaseURL = "https://www.etymonline.com"
	maxBodyBytes   = 2 << 20
)

// Provider fetches entry pages from the online etymology dictionary.
type Provider struct {
	baseURL string
	client  *provider.Client
	log     *slog.Logger
}

// NewProvider creates a Provider. An empty baseURL selects the public site.
func NewProvider(baseURL string, opts provider.ClientOptions, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	log := logger.With("adapter", "etymonline")
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  provider.NewClient("etymonline", opts, log),
		log:     log,
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	p := NewProvider(baseURL, provider.ClientOptions{}, logger)
	p.client.SetRetryDelay(0)
	return p
}

// FetchPage returns the raw HTML of the entry page for word, truncated to
// 2 MiB. Returns "", nil if the page does not exist.
func (p *Provider) FetchPage(ctx context.Context, word string) (string, error) {
	reqURL := p.baseURL + "/word/" + url.PathEscape(strings.ToLower(strings.TrimSpace(word)))

	p.log.DebugContext(ctx, "etymonline request", slog.String("word", word))

	resp, err := p.client.Get(ctx, reqURL, word)
	if err != nil {
		return "", fmt.Errorf("etymonline: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("etymonline: unexpected status %d", resp.StatusCode)
	}

	body, err := provider.ReadLimited(resp.Body, maxBodyBytes)
	if err != nil {
		return "", fmt.Errorf("etymonline: read body: %w", err)
	}

	p.log.DebugContext(ctx, "etymonline response", slog.String("word", word), slog.Int("bytes", len(body)))
	return string(body), nil
}

// BaseURL returns the site root, used to resolve relative links on pages.
func (p *Provider) BaseURL() string {
	return p.baseURL
}
