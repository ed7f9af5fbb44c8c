package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Sources   SourcesConfig   `yaml:"sources"`
	Cache     CacheConfig     `yaml:"cache"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	// Bool switches carry no env-default: cleanenv would overwrite a YAML false.
	Disabled          bool          `yaml:"disabled"            env:"RATE_LIMIT_DISABLED"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"60"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// SourcesConfig holds the settings of the three external sources.
type SourcesConfig struct {
	Timeout   time.Duration `yaml:"timeout"    env:"SOURCES_TIMEOUT"    env-default:"8s"`
	UserAgent string        `yaml:"user_agent" env:"SOURCES_USER_AGENT" env-default:"etymology-backend/1.0 (+https://github.com/heartmarshall/etymology-backend)"`

	WiktionaryDisabled bool   `yaml:"wiktionary_disabled" env:"SOURCES_WIKTIONARY_DISABLED"`
	WiktionaryURL      string `yaml:"wiktionary_url"      env:"SOURCES_WIKTIONARY_URL"      env-default:"https://en.wiktionary.org/w/api.php"`

	DictionaryDisabled bool   `yaml:"dictionary_disabled" env:"SOURCES_DICTIONARY_DISABLED"`
	DictionaryURL      string `yaml:"dictionary_url"      env:"SOURCES_DICTIONARY_URL"      env-default:"https://api.dictionaryapi.dev/api/v2/entries"`

	EtymonlineDisabled bool   `yaml:"etymonline_disabled" env:"SOURCES_ETYMONLINE_DISABLED"`
	EtymonlineURL      string `yaml:"etymonline_url"      env:"SOURCES_ETYMONLINE_URL"      env-default:"https://www.etymonline.com"`
}

// CacheConfig holds the TTL cache settings.
type CacheConfig struct {
	ResultTTL   time.Duration `yaml:"result_ttl"   env:"CACHE_RESULT_TTL"   env-default:"6h"`
	SelectorTTL time.Duration `yaml:"selector_ttl" env:"CACHE_SELECTOR_TTL" env-default:"10m"`
	MaxEntries  int           `yaml:"max_entries"  env:"CACHE_MAX_ENTRIES"  env-default:"2000"`
}

// PipelineConfig holds the lookup pipeline settings.
type PipelineConfig struct {
	CognateTargetsRaw string `yaml:"cognate_targets" env:"PIPELINE_COGNATE_TARGETS" env-default:"de,nl,sv,is,got,la,fr,es,it,pt,grc,ru,lt,sa"`
	DefaultMax        int    `yaml:"default_max"     env:"PIPELINE_DEFAULT_MAX"     env-default:"12"`
	MaxMax            int    `yaml:"max_max"         env:"PIPELINE_MAX_MAX"         env-default:"40"`
	RootSlots         int    `yaml:"root_slots"      env:"PIPELINE_ROOT_SLOTS"      env-default:"3"`
	// Seed fixes the selector's random sequence; 0 picks a random seed.
	Seed uint64 `yaml:"seed" env:"PIPELINE_SEED" env-default:"0"`

	// CognateTargets is parsed from CognateTargetsRaw during validation.
	CognateTargets []string `yaml:"-" env:"-"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
