package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	envPrefix = "DORMROOM_WEB_"

	defaultPort         = "8080"
	defaultSiteName     = "DormRoom Studios"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	defaultLatestLimit  = 3
	defaultNewsOnHome   = 2
	defaultNewsCacheTTL = 5 * time.Minute
)

// Config captures runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Paths     PathsConfig
	Catalog   CatalogConfig
	News      NewsConfig
	Analytics AnalyticsConfig
	LogLevel  string
	Dev       bool
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// SiteConfig describes the public identity of the site.
type SiteConfig struct {
	Name    string
	BaseURL string
	Twitter string
}

// PathsConfig lists on-disk resources.
type PathsConfig struct {
	Templates string
	Public    string
	Content   string
}

// CatalogConfig controls the game catalog.
type CatalogConfig struct {
	// File optionally points at a YAML catalog replacing the built-in one.
	File string
	// LatestLimit caps the "latest games" list on the home page.
	LatestLimit int
	// FeaturedInLatest keeps featured games in the "latest games" list.
	FeaturedInLatest bool
}

// NewsConfig controls the news feed.
type NewsConfig struct {
	HomeLimit int
	CacheTTL  time.Duration
}

// AnalyticsConfig holds client-side analytics identifiers.
type AnalyticsConfig struct {
	GA4MeasurementID string
	GTMContainerID   string
	Debug            bool
}

// Load reads configuration from the environment, loading a .env file first when present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup to resolve variables.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	r := reader{lookup: lookup}

	port := r.str("PORT", "")
	if port == "" {
		// Cloud Run style fallback
		if v, ok := lookup("PORT"); ok && strings.TrimSpace(v) != "" {
			port = strings.TrimSpace(v)
		} else {
			port = defaultPort
		}
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:         r.str("ADDR", ":"+port),
			ReadTimeout:  r.duration("READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: r.duration("WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  r.duration("IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Site: SiteConfig{
			Name:    r.str("SITE_NAME", defaultSiteName),
			BaseURL: strings.TrimRight(r.str("BASE_URL", ""), "/"),
			Twitter: r.str("TWITTER", ""),
		},
		Paths: PathsConfig{
			Templates: r.str("TEMPLATES_DIR", "templates"),
			Public:    r.str("PUBLIC_DIR", "public"),
			Content:   r.str("CONTENT_DIR", "content"),
		},
		Catalog: CatalogConfig{
			File:             r.str("CATALOG_FILE", ""),
			LatestLimit:      r.integer("LATEST_LIMIT", defaultLatestLimit),
			FeaturedInLatest: r.boolean("LATEST_INCLUDES_FEATURED", false),
		},
		News: NewsConfig{
			HomeLimit: r.integer("NEWS_HOME_LIMIT", defaultNewsOnHome),
			CacheTTL:  r.duration("NEWS_CACHE_TTL", defaultNewsCacheTTL),
		},
		Analytics: AnalyticsConfig{
			GA4MeasurementID: r.str("GA_MEASUREMENT_ID", ""),
			GTMContainerID:   r.str("GTM_CONTAINER_ID", ""),
			Debug:            r.boolean("ANALYTICS_DEBUG", false),
		},
		LogLevel: r.str("LOG_LEVEL", "info"),
		Dev:      r.boolean("DEV", false),
	}
	if len(r.errs) > 0 {
		return Config{}, errors.Join(r.errs...)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("config: listen address is empty"))
	}
	if c.Catalog.LatestLimit < 0 {
		errs = append(errs, fmt.Errorf("config: %sLATEST_LIMIT must not be negative", envPrefix))
	}
	if c.News.HomeLimit < 0 {
		errs = append(errs, fmt.Errorf("config: %sNEWS_HOME_LIMIT must not be negative", envPrefix))
	}
	if strings.TrimSpace(c.Site.Name) == "" {
		errs = append(errs, fmt.Errorf("config: %sSITE_NAME is empty", envPrefix))
	}
	return errors.Join(errs...)
}

type reader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (r *reader) raw(key string) (string, bool) {
	v, ok := r.lookup(envPrefix + key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (r *reader) str(key, fallback string) string {
	if v, ok := r.raw(key); ok {
		return v
	}
	return fallback
}

func (r *reader) integer(key string, fallback int) int {
	v, ok := r.raw(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("config: %s%s: invalid integer %q", envPrefix, key, v))
		return fallback
	}
	return n
}

func (r *reader) boolean(key string, fallback bool) bool {
	v, ok := r.raw(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("config: %s%s: invalid bool %q", envPrefix, key, v))
		return fallback
	}
	return b
}

func (r *reader) duration(key string, fallback time.Duration) time.Duration {
	v, ok := r.raw(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("config: %s%s: invalid duration %q", envPrefix, key, v))
		return fallback
	}
	return d
}
