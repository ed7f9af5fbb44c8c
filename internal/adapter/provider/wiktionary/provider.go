package wiktionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/etymology-backend/internal/language"
	"github.com/heartmarshall/etymology-backend/internal/provider"
)

const (
	defaultBaseURL = "https://en.wiktionary.org/w/api.php"
	maxBodyBytes   = 4 << 20
)

// Provider fetches raw page wikitext from the MediaWiki parse API.
type Provider struct {
	baseURL string
	client  *provider.Client
	log     *slog.Logger
}

// NewProvider creates a Provider. An empty baseURL selects English Wiktionary.
func NewProvider(baseURL string, opts provider.ClientOptions, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	log := logger.With("adapter", "wiktionary")
	return &Provider{
		baseURL: baseURL,
		client:  provider.NewClient("wiktionary", opts, log),
		log:     log,
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	p := NewProvider(baseURL, provider.ClientOptions{}, logger)
	p.client.SetRetryDelay(0)
	return p
}

// FetchWikitext returns the wikitext of the page for word. Reconstructed
// words in a proto-language live under the Reconstruction namespace.
// Returns "", nil when the page does not exist.
func (p *Provider) FetchWikitext(ctx context.Context, word, lang string) (string, error) {
	title := PageTitle(word, lang)

	q := url.Values{}
	q.Set("action", "parse")
	q.Set("page", title)
	q.Set("prop", "wikitext")
	q.Set("format", "json")
	q.Set("formatversion", "2")
	q.Set("redirects", "1")
	reqURL := p.baseURL + "?" + q.Encode()

	p.log.DebugContext(ctx, "wiktionary request", slog.String("word", word), slog.String("page", title))

	resp, err := p.client.Get(ctx, reqURL, word)
	if err != nil {
		return "", fmt.Errorf("wiktionary: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wiktionary: unexpected status %d", resp.StatusCode)
	}

	body, err := provider.ReadLimited(resp.Body, maxBodyBytes)
	if err != nil {
		return "", fmt.Errorf("wiktionary: read body: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("wiktionary: decode json: %w", err)
	}
	if parsed.Error != nil {
		if parsed.Error.Code == "missingtitle" {
			return "", nil
		}
		return "", fmt.Errorf("wiktionary: api error %s: %s", parsed.Error.Code, parsed.Error.Info)
	}
	if parsed.Parse == nil {
		return "", fmt.Errorf("wiktionary: empty parse result")
	}

	p.log.DebugContext(ctx, "wiktionary response",
		slog.String("page", parsed.Parse.Title),
		slog.Int("bytes", len(parsed.Parse.Wikitext)),
	)
	return parsed.Parse.Wikitext, nil
}

// PageTitle maps a word to its Wiktionary page title.
func PageTitle(word, lang string) string {
	word = strings.TrimSpace(word)
	if lang != "" && language.IsProto(lang) {
		return "Reconstruction:" + language.DisplayName(lang) + "/" + strings.TrimPrefix(word, "*")
	}
	return word
}
