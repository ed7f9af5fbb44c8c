package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/etymology-backend/internal/language"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if !c.RateLimit.Disabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if err := c.Sources.validate(); err != nil {
		return fmt.Errorf("sources: %w", err)
	}
	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.Pipeline.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	return nil
}

func (s *SourcesConfig) validate() error {
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}
	if s.WiktionaryDisabled && s.DictionaryDisabled && s.EtymonlineDisabled {
		return fmt.Errorf("at least one source must be enabled")
	}
	return nil
}

func (c *CacheConfig) validate() error {
	if c.ResultTTL <= 0 {
		return fmt.Errorf("result_ttl must be > 0 (got %v)", c.ResultTTL)
	}
	if c.SelectorTTL <= 0 {
		return fmt.Errorf("selector_ttl must be > 0 (got %v)", c.SelectorTTL)
	}
	if c.MaxEntries <= 0 {
		return fmt.Errorf("max_entries must be > 0 (got %d)", c.MaxEntries)
	}
	return nil
}

func (p *PipelineConfig) validate() error {
	if p.DefaultMax <= 0 {
		return fmt.Errorf("default_max must be > 0 (got %d)", p.DefaultMax)
	}
	if p.MaxMax < p.DefaultMax {
		return fmt.Errorf("max_max must be >= default_max (got %d < %d)", p.MaxMax, p.DefaultMax)
	}
	if p.RootSlots < 0 || p.RootSlots > p.DefaultMax {
		return fmt.Errorf("root_slots must be in 0..default_max (got %d)", p.RootSlots)
	}

	targets, err := ParseLanguageList(p.CognateTargetsRaw)
	if err != nil {
		return fmt.Errorf("cognate_targets: %w", err)
	}
	p.CognateTargets = targets
	return nil
}

// ParseLanguageList parses a comma-separated list of language codes or
// names into unique normalized codes, keeping their order.
func ParseLanguageList(raw string) ([]string, error) {
	var codes []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		code := language.Normalize(part)
		if !language.IsKnown(code) {
			return nil, fmt.Errorf("unknown language %q", part)
		}
		codes = append(codes, code)
	}
	return lo.Uniq(codes), nil
}
