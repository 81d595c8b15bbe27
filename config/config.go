// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hsbacot/bookfinder/client"
	"github.com/hsbacot/bookfinder/cover"
	"github.com/hsbacot/bookfinder/render"
	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvAPIURL     = "BOOKFINDER_API_URL"
	EnvCoversURL  = "BOOKFINDER_COVERS_URL"
	EnvCatalogURL = "BOOKFINDER_CATALOG_URL"
	EnvStoreURL   = "BOOKFINDER_STORE_URL"
	EnvUserAgent  = "BOOKFINDER_USER_AGENT"
	EnvTimeout    = "BOOKFINDER_TIMEOUT"
	EnvRPS        = "BOOKFINDER_RPS"
	EnvLogFile    = "BOOKFINDER_LOG_FILE"
)

// Config holds everything the app needs to talk to Open Library
type Config struct {
	APIURL    string
	UserAgent string
	Timeout   time.Duration
	RPS       float64
	Links     render.Links
	LogFile   string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		APIURL:    client.DefaultBaseURL,
		UserAgent: client.DefaultUserAgent,
		Timeout:   30 * time.Second,
		RPS:       1,
		Links:     render.DefaultLinks(),
	}
}

// Load reads the given .env files (missing files are skipped) and then the
// process environment on top of the defaults.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := Default()
	cfg.APIURL = getEnv(EnvAPIURL, cfg.APIURL)
	cfg.UserAgent = getEnv(EnvUserAgent, cfg.UserAgent)
	cfg.Links.CoverBaseURL = getEnv(EnvCoversURL, cfg.Links.CoverBaseURL)
	cfg.Links.CatalogBaseURL = getEnv(EnvCatalogURL, cfg.Links.CatalogBaseURL)
	cfg.Links.StoreSearchURL = getEnv(EnvStoreURL, cfg.Links.StoreSearchURL)
	cfg.LogFile = getEnv(EnvLogFile, "")

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid %s %q: expected a non-negative duration like 30s", EnvTimeout, v)
		}
		cfg.Timeout = d
	}

	if v := os.Getenv(EnvRPS); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvRPS, v, err)
		}
		cfg.RPS = rps
	}

	return cfg, nil
}

// ClientOptions converts the config into API client options
func (c Config) ClientOptions() []client.Option {
	return []client.Option{
		client.WithBaseURL(c.APIURL),
		client.WithUserAgent(c.UserAgent),
		client.WithTimeout(c.Timeout),
		client.WithRateLimit(c.RPS),
	}
}

// CoverResolver builds a cover resolver sharing the configured timeout
func (c Config) CoverResolver(logger *log.Logger) *cover.Resolver {
	return cover.NewResolver(&http.Client{Timeout: c.Timeout}, logger)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
