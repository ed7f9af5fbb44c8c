// Package etymology runs the lookup pipeline: fetch every source in
// parallel, extract raw connections, validate, enrich from the cross
// reference index, rank, and cache.
package etymology

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/etymology-backend/internal/adapter/cache"
	"github.com/heartmarshall/etymology-backend/internal/cognate"
	"github.com/heartmarshall/etymology-backend/internal/crossref"
	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/filter"
	"github.com/heartmarshall/etymology-backend/internal/provider"
	"github.com/heartmarshall/etymology-backend/internal/selector"
	"github.com/heartmarshall/etymology-backend/internal/wordid"
)

type wikitextFetcher interface {
	FetchWikitext(ctx context.Context, word, lang string) (string, error)
}

type dictionaryFetcher interface {
	FetchEntry(ctx context.Context, word, lang string) (*provider.DictionaryResult, error)
}

type pageFetcher interface {
	FetchPage(ctx context.Context, word string) (string, error)
}

type wikitextExtractor interface {
	Extract(ctx context.Context, wikitext string, source domain.Word) []domain.RawConnection
}

type pageExtractor interface {
	Extract(ctx context.Context, page string, source domain.Word) []domain.RawConnection
	ExtractProse(ctx context.Context, text string, source domain.Word, src domain.Source) []domain.RawConnection
}

type cognateMatcher interface {
	FindCognates(word, srcLang string, targets []string) []cognate.Cognate
}

// Options tunes the pipeline.
type Options struct {
	// CognateTargets are the languages the cognate matcher generates for.
	CognateTargets []string
	// FetchTimeout bounds each source fetch independently.
	FetchTimeout time.Duration
	// DefaultMax and MaxMax bound the selection size of Search and Expand.
	DefaultMax int
	MaxMax     int
}

// Deps are the collaborators of the Service. Nil fetchers disable their
// source.
type Deps struct {
	Wikitext   wikitextFetcher
	Dictionary dictionaryFetcher
	Pages      pageFetcher

	WikitextExtractor wikitextExtractor
	PageExtractor     pageExtractor
	Matcher           cognateMatcher
	Validator         *filter.Validator

	Index      *crossref.Index
	Registry   *wordid.Registry
	Selector   *selector.Selector
	Results    *cache.Store[domain.EtymologyResult]
	Selections *cache.Store[domain.EtymologyResult]
}

// Service implements etymology lookups and the request-time operations
// built on them.
type Service struct {
	log  *slog.Logger
	opts Options
	deps Deps
}

// NewService creates a new etymology Service.
func NewService(logger *slog.Logger, opts Options, deps Deps) *Service {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 10 * time.Second
	}
	if opts.DefaultMax <= 0 {
		opts.DefaultMax = 12
	}
	if opts.MaxMax < opts.DefaultMax {
		opts.MaxMax = opts.DefaultMax
	}
	return &Service{
		log:  logger.With("service", "etymology"),
		opts: opts,
		deps: deps,
	}
}

// Stats reports the sizes of the in-memory state.
type Stats struct {
	Results    int `json:"results"`
	Selections int `json:"selections"`
	Roots      int `json:"roots"`
	WordIDs    int `json:"wordIds"`
}

// Stats returns the current cache and index sizes.
func (s *Service) Stats() Stats {
	return Stats{
		Results:    s.deps.Results.Len(),
		Selections: s.deps.Selections.Len(),
		Roots:      s.deps.Index.Len(),
		WordIDs:    s.deps.Registry.Len(),
	}
}

// ClearCaches empties both result caches and the cross-reference index.
// Word ids stay resolvable.
func (s *Service) ClearCaches(ctx context.Context) {
	s.deps.Results.Flush()
	s.deps.Selections.Flush()
	s.deps.Index.Reset()
	s.log.InfoContext(ctx, "caches cleared")
}
