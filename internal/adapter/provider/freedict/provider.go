package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/etymology-backend/internal/provider"
)

const (
	defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries"
	maxBodyBytes   = 1 << 20
)

// Provider fetches structured entries from the free dictionary API.
type Provider struct {
	baseURL string
	client  *provider.Client
	log     *slog.Logger
}

// NewProvider creates a Provider. An empty baseURL selects the public API.
func NewProvider(baseURL string, opts provider.ClientOptions, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	log := logger.With("adapter", "freedict")
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  provider.NewClient("freedict", opts, log),
		log:     log,
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	p := NewProvider(baseURL, provider.ClientOptions{}, logger)
	p.client.SetRetryDelay(0)
	return p
}

// FetchEntry fetches the dictionary entry for word in lang ("en" when empty).
// Returns nil, nil if the word is not found (HTTP 404).
func (p *Provider) FetchEntry(ctx context.Context, word, lang string) (*provider.DictionaryResult, error) {
	if lang == "" {
		lang = "en"
	}
	reqURL := p.baseURL + "/" + url.PathEscape(lang) + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word), slog.String("language", lang))

	resp, err := p.client.Get(ctx, reqURL, word)
	if err != nil {
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := provider.ReadLimited(resp.Body, maxBodyBytes)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}

	result := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("senses", len(result.Senses)),
		slog.Bool("has_origin", result.Origin != ""),
	)

	return result, nil
}

// mapAPIResponse merges the API entries into one result: senses are
// concatenated, the first non-empty origin and phonetic win, and
// pronunciations are deduplicated by transcription.
func mapAPIResponse(entries []apiEntry) *provider.DictionaryResult {
	result := &provider.DictionaryResult{
		Senses:         []provider.SenseResult{},
		Pronunciations: []provider.PronunciationResult{},
	}
	if len(entries) == 0 {
		return result
	}
	result.Word = entries[0].Word

	seen := make(map[string]int)
	for _, entry := range entries {
		if result.Origin == "" {
			result.Origin = strings.TrimSpace(entry.Origin)
		}
		if result.Phonetic == "" {
			result.Phonetic = entry.Phonetic
		}

		for _, meaning := range entry.Meanings {
			for _, def := range meaning.Definitions {
				sense := provider.SenseResult{Definition: def.Definition}
				if meaning.PartOfSpeech != "" {
					pos := meaning.PartOfSpeech
					sense.PartOfSpeech = &pos
				}
				result.Senses = append(result.Senses, sense)
			}
		}

		for _, ph := range entry.Phonetics {
			pron := mapPhonetic(ph)
			if pron == nil {
				continue
			}
			if pron.Transcription != nil {
				key := *pron.Transcription
				if idx, ok := seen[key]; ok {
					if result.Pronunciations[idx].AudioURL == nil && pron.AudioURL != nil {
						result.Pronunciations[idx].AudioURL = pron.AudioURL
					}
					continue
				}
				seen[key] = len(result.Pronunciations)
			}
			result.Pronunciations = append(result.Pronunciations, *pron)
		}
	}

	return result
}

// mapPhonetic returns nil if both text and audio are empty.
func mapPhonetic(ph apiPhonetic) *provider.PronunciationResult {
	if ph.Text == "" && ph.Audio == "" {
		return nil
	}
	pron := &provider.PronunciationResult{}
	if ph.Text != "" {
		t := ph.Text
		pron.Transcription = &t
	}
	if ph.Audio != "" {
		a := ph.Audio
		pron.AudioURL = &a
	}
	return pron
}
