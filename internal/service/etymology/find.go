package etymology

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/etymology-backend/internal/cognate"
	"github.com/heartmarshall/etymology-backend/internal/crossref"
	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/language"
	"github.com/heartmarshall/etymology-backend/internal/provider"
	"github.com/heartmarshall/etymology-backend/internal/rank"
)

// sources holds what each fetcher returned. A failed or disabled source is
// left at its zero value.
type sources struct {
	wikitext string
	dict     *provider.DictionaryResult
	page     string
}

// FindEtymologicalConnections returns the ranked connections of word in
// lang. Results are cached per (language, word); bypassCache forces a fresh
// lookup whose result replaces the cached one.
func (s *Service) FindEtymologicalConnections(ctx context.Context, word, lang string, bypassCache bool) (*domain.EtymologyResult, error) {
	text := strings.Join(strings.Fields(word), " ")
	if text == "" {
		return nil, domain.ErrWordRequired
	}
	if strings.TrimSpace(lang) == "" {
		lang = "en"
	}
	lang = language.NormalizeFor(text, lang)
	key := domain.WordKey(text, lang)

	if !bypassCache {
		if cached, ok := s.deps.Results.Get(key); ok {
			s.log.DebugContext(ctx, "etymology cache hit", slog.String("word", text), slog.String("language", lang))
			return cloneResult(cached), nil
		}
	}

	src := s.fetchAll(ctx, text, lang)

	source := domain.Word{Text: text, Language: lang}
	if src.dict != nil {
		source.Definition, source.PartOfSpeech = src.dict.FirstDefinition()
		source.Phonetic = src.dict.Transcription()
	}

	raws := s.extractAll(ctx, source, src)
	conns := s.deps.Validator.Validate(ctx, source, raws)

	enriched := s.deps.Index.Enrich(source, conns)
	s.deps.Index.Record(source, conns)
	conns = rank.Rank(append(conns, enriched...))

	source.ID = s.deps.Registry.Mint(source.Text, source.Language)
	for i := range conns {
		w := &conns[i].Word
		w.ID = s.deps.Registry.Mint(w.Text, w.Language)
		conns[i].ID = source.ID + ":" + w.ID
	}

	result := domain.EtymologyResult{SourceWord: source, Connections: conns}
	s.deps.Results.Set(key, result, 0)
	s.backfill(ctx, source, conns)

	s.log.InfoContext(ctx, "etymology resolved",
		slog.String("word", text),
		slog.String("language", lang),
		slog.Int("raw", len(raws)),
		slog.Int("enriched", len(enriched)),
		slog.Int("connections", len(conns)),
	)

	return cloneResult(result), nil
}

// backfill adds the reverse of each cross-reference edge of source to the
// cached result of the matched word, so both sides see the link.
func (s *Service) backfill(ctx context.Context, source domain.Word, conns []domain.Connection) {
	for _, c := range conns {
		if c.Relationship.Source != domain.SourceCrossReference {
			continue
		}
		key := c.Word.Key()
		cached, ok := s.deps.Results.Get(key)
		if !ok {
			continue
		}
		if slices.ContainsFunc(cached.Connections, func(x domain.Connection) bool {
			return x.Word.Key() == source.Key()
		}) {
			continue
		}

		rev := crossref.Reverse(source, c)
		rev.ID = cached.SourceWord.ID + ":" + source.ID
		cached.Connections = rank.Rank(append(slices.Clone(cached.Connections), rev))
		s.deps.Results.Set(key, cached, 0)

		s.log.DebugContext(ctx, "cross-reference backfilled",
			slog.String("word", cached.SourceWord.Text),
			slog.String("linked", source.Text),
		)
	}
}

// fetchAll queries every enabled source concurrently. Each fetch has its own
// timeout; a failure is logged and leaves that source empty.
func (s *Service) fetchAll(ctx context.Context, word, lang string) sources {
	var (
		src sources
		g   errgroup.Group
	)

	if s.deps.Wikitext != nil {
		g.Go(func() error {
			text, err := fetch(ctx, s, "wiktionary", word, func(ctx context.Context) (string, error) {
				return s.deps.Wikitext.FetchWikitext(ctx, word, lang)
			})
			if err == nil {
				src.wikitext = text
			}
			return nil
		})
	}

	if s.deps.Dictionary != nil && !language.IsProto(lang) {
		g.Go(func() error {
			res, err := fetch(ctx, s, "dictionary", word, func(ctx context.Context) (*provider.DictionaryResult, error) {
				return s.deps.Dictionary.FetchEntry(ctx, word, lang)
			})
			if err == nil {
				src.dict = res
			}
			return nil
		})
	}

	// The etymology dictionary only has English entries and PIE roots.
	if s.deps.Pages != nil && (lang == "en" || lang == language.PIE) {
		g.Go(func() error {
			page, err := fetch(ctx, s, "etymonline", word, func(ctx context.Context) (string, error) {
				return s.deps.Pages.FetchPage(ctx, word)
			})
			if err == nil {
				src.page = page
			}
			return nil
		})
	}

	_ = g.Wait()
	return src
}

func fetch[T any](ctx context.Context, s *Service, name, word string, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
	defer cancel()

	v, err := fn(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "source fetch failed",
			slog.String("word", word),
			slog.String("source", name),
			slog.String("error", err.Error()),
		)
	}
	return v, err
}

// extractAll runs every extractor over the fetched sources. Extractors are
// isolated: a panic in one is logged and the others still contribute.
func (s *Service) extractAll(ctx context.Context, source domain.Word, src sources) []domain.RawConnection {
	var raws []domain.RawConnection

	if src.wikitext != "" && s.deps.WikitextExtractor != nil {
		raws = append(raws, s.safeExtract(ctx, "wikitext", source, func() []domain.RawConnection {
			return s.deps.WikitextExtractor.Extract(ctx, src.wikitext, source)
		})...)
	}
	if s.deps.PageExtractor != nil {
		if src.page != "" {
			raws = append(raws, s.safeExtract(ctx, "etymonline", source, func() []domain.RawConnection {
				return s.deps.PageExtractor.Extract(ctx, src.page, source)
			})...)
		}
		if src.dict != nil && src.dict.Origin != "" {
			raws = append(raws, s.safeExtract(ctx, "dictionary", source, func() []domain.RawConnection {
				return s.deps.PageExtractor.ExtractProse(ctx, src.dict.Origin, source, domain.SourceDictionaryAPI)
			})...)
		}
	}
	if s.deps.Matcher != nil && len(s.opts.CognateTargets) > 0 {
		targets := slices.DeleteFunc(slices.Clone(s.opts.CognateTargets), func(t string) bool {
			return language.Normalize(t) == source.Language
		})
		raws = append(raws, s.safeExtract(ctx, "cognates", source, func() []domain.RawConnection {
			return cognate.ToRaw(source.Language, s.deps.Matcher.FindCognates(source.Text, source.Language, targets))
		})...)
	}

	return raws
}

func (s *Service) safeExtract(ctx context.Context, name string, source domain.Word, fn func() []domain.RawConnection) (out []domain.RawConnection) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "extractor failed",
				slog.String("extractor", name),
				slog.String("word", source.Text),
				slog.String("error", fmt.Sprint(r)),
				slog.String("stack", string(debug.Stack())),
			)
			out = nil
		}
	}()
	return fn()
}

func cloneResult(r domain.EtymologyResult) *domain.EtymologyResult {
	r.Connections = slices.Clone(r.Connections)
	if r.Connections == nil {
		r.Connections = []domain.Connection{}
	}
	return &r
}
