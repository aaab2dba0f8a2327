package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name below.
const EnvPrefix = "SHOWCASE_"

// Source names accepted in ADMIN_SOURCES and PUBLIC_SOURCES.
const (
	SourceStatic = "static"
	SourceCache  = "cache"
	SourceSample = "sample"
)

type Config struct {
	ListenPort      string        `env:"LISTEN_PORT" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"` // "debug" | "info" | "warn" | "error"
	PrettyLog bool   `env:"PRETTY_LOG" envDefault:"true"`

	// Published document
	DocumentPath   string        `env:"DOCUMENT_PATH" envDefault:"./public/games-data.json"` // file path or http(s) URL
	FetchTimeout   time.Duration `env:"FETCH_TIMEOUT" envDefault:"5s"`                       // only for http(s) locations
	ReloadInterval time.Duration `env:"RELOAD_INTERVAL" envDefault:"1h"`
	WatchDocument  bool          `env:"WATCH_DOCUMENT" envDefault:"true"` // fsnotify on the document directory
	LiveReload     bool          `env:"LIVE_RELOAD" envDefault:"true"`    // reload open pages when the document changes

	// Fallback order, comma separated: static, cache, sample
	AdminSources  []string `env:"ADMIN_SOURCES" envSeparator:"," envDefault:"static,cache"`
	PublicSources []string `env:"PUBLIC_SOURCES" envSeparator:"," envDefault:"static,cache,sample"`

	CacheKey      string `env:"CACHE_KEY" envDefault:"mainra-games"`
	DefaultLang   string `env:"DEFAULT_LANG" envDefault:"en"`
	FeaturedLimit int    `env:"FEATURED_LIMIT" envDefault:"3"`

	// Admin write throttling
	AdminRateBurst  int `env:"ADMIN_RATE_BURST" envDefault:"30"`
	AdminRatePerMin int `env:"ADMIN_RATE_PER_MIN" envDefault:"60"`

	// Redis (empty address = in-process cache)
	RedisAddr           string        `env:"REDIS_ADDR"`
	RedisUser           string        `env:"REDIS_USERNAME" envDefault:"default"`
	RedisPassword       string        `env:"REDIS_PASSWORD"`
	RedisDB             int           `env:"REDIS_DB" envDefault:"0"`
	RedisDT             time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	RedisRT             time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	RedisWT             time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
	RedisMaxWait        time.Duration `env:"REDIS_MAX_WAIT" envDefault:"10s"`
	RedisPingTimeout    time.Duration `env:"REDIS_PING_TIMEOUT" envDefault:"5s"`
	RedisPoolSize       int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	RedisRetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	RedisWarnThreshold  int           `env:"REDIS_WARN_THRESHOLD" envDefault:"3"`

	// Ops endpoint restrictions
	AllowedHosts []string `env:"ALLOWED_HOSTS" envSeparator:","`
	AllowedCIDRS []string `env:"ALLOWED_CIDRS" envSeparator:","`
	TrustProxy   bool     `env:"TRUST_PROXY" envDefault:"false"`
}

// Load reads the configuration from the environment. Invalid values are
// fatal: the process cannot serve anything sensible without them.
func Load() *Config {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(fmt.Sprintf("❌ FATAL: invalid configuration: %v", err))
	}

	cfg.AllowedHosts = cleanList(cfg.AllowedHosts)
	cfg.AllowedCIDRS = cleanList(cfg.AllowedCIDRS)
	cfg.AdminSources = mustSources("ADMIN_SOURCES", cfg.AdminSources)
	cfg.PublicSources = mustSources("PUBLIC_SOURCES", cfg.PublicSources)

	if strings.TrimSpace(cfg.DocumentPath) == "" {
		panic("❌ FATAL: " + EnvPrefix + "DOCUMENT_PATH must not be empty")
	}
	if cfg.ReloadInterval <= 0 {
		panic(fmt.Sprintf("❌ FATAL: %sRELOAD_INTERVAL must be > 0, got %v", EnvPrefix, cfg.ReloadInterval))
	}

	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfgCopy.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// UseRedis reports whether a Redis cache is configured.
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}

// IsRemoteDocument reports whether the document is fetched over HTTP.
func (c *Config) IsRemoteDocument() bool {
	return IsRemoteLocation(c.DocumentPath)
}

// IsRemoteLocation reports whether loc is an http(s) URL.
func IsRemoteLocation(loc string) bool {
	return strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://")
}

func mustSources(key string, raw []string) []string {
	sources, err := parseSources(raw)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: invalid %s%s: %v", EnvPrefix, key, err))
	}
	return sources
}

// parseSources validates an ordered fallback list. Duplicates are dropped.
func parseSources(raw []string) ([]string, error) {
	parts := cleanList(raw)
	if len(parts) == 0 {
		return nil, fmt.Errorf("at least one source is required")
	}
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(p)
		switch p {
		case SourceStatic, SourceCache, SourceSample:
		default:
			return nil, fmt.Errorf("unknown source %q", p)
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}

// cleanList trims every entry, strips surrounding quotes and drops empty ones.
func cleanList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.Trim(strings.TrimSpace(v), `"'`)
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return parts
}
