package app

import (
	"log/slog"

	"github.com/heartmarshall/etymology-backend/internal/adapter/cache"
	"github.com/heartmarshall/etymology-backend/internal/adapter/provider/etymonline"
	"github.com/heartmarshall/etymology-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/etymology-backend/internal/adapter/provider/wiktionary"
	"github.com/heartmarshall/etymology-backend/internal/cognate"
	"github.com/heartmarshall/etymology-backend/internal/config"
	"github.com/heartmarshall/etymology-backend/internal/crossref"
	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/extract/etymhtml"
	"github.com/heartmarshall/etymology-backend/internal/extract/wikitext"
	"github.com/heartmarshall/etymology-backend/internal/filter"
	"github.com/heartmarshall/etymology-backend/internal/provider"
	"github.com/heartmarshall/etymology-backend/internal/selector"
	"github.com/heartmarshall/etymology-backend/internal/service/etymology"
	"github.com/heartmarshall/etymology-backend/internal/wordid"
)

// NewEtymologyService builds the lookup pipeline from configuration. It
// also returns the names of the enabled sources.
func NewEtymologyService(cfg *config.Config, logger *slog.Logger) (*etymology.Service, []string) {
	priors := domain.DefaultPriors()
	clientOpts := provider.ClientOptions{
		Timeout:   cfg.Sources.Timeout,
		UserAgent: cfg.Sources.UserAgent,
	}

	deps := etymology.Deps{
		WikitextExtractor: wikitext.New(priors, logger),
		PageExtractor:     etymhtml.New(priors, cfg.Sources.EtymonlineURL, logger),
		Matcher:           cognate.NewMatcher(priors),
		Validator:         filter.NewValidator(priors, logger),
		Index:             crossref.NewIndex(priors.CrossRefDiscount),
		Registry:          wordid.NewRegistry(),
		Selector:          selector.New(cfg.Pipeline.Seed, cfg.Pipeline.RootSlots),
		Results:           cache.New[domain.EtymologyResult](cfg.Cache.MaxEntries, cfg.Cache.ResultTTL),
		Selections:        cache.New[domain.EtymologyResult](cfg.Cache.MaxEntries, cfg.Cache.SelectorTTL),
	}

	// Disabled sources stay nil interfaces; a typed nil would be called.
	var enabled []string
	if !cfg.Sources.WiktionaryDisabled {
		deps.Wikitext = wiktionary.NewProvider(cfg.Sources.WiktionaryURL, clientOpts, logger)
		enabled = append(enabled, string(domain.SourceWiktionary))
	}
	if !cfg.Sources.DictionaryDisabled {
		deps.Dictionary = freedict.NewProvider(cfg.Sources.DictionaryURL, clientOpts, logger)
		enabled = append(enabled, string(domain.SourceDictionaryAPI))
	}
	if !cfg.Sources.EtymonlineDisabled {
		deps.Pages = etymonline.NewProvider(cfg.Sources.EtymonlineURL, clientOpts, logger)
		enabled = append(enabled, string(domain.SourceEtymonline))
	}

	svc := etymology.NewService(logger, etymology.Options{
		CognateTargets: cfg.Pipeline.CognateTargets,
		FetchTimeout:   cfg.Sources.Timeout,
		DefaultMax:     cfg.Pipeline.DefaultMax,
		MaxMax:         cfg.Pipeline.MaxMax,
	}, deps)

	return svc, enabled
}
