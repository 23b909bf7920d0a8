// Package testsupport provides shared fixtures for Marquee tests: temp-backed
// configuration, an opened credential store, and a fake TMDB server.
package testsupport

import (
	"path/filepath"
	"testing"

	"marquee/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.TMDB.APIKey = "test"
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.PosterCacheDir = filepath.Join(base, "posters")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithTMDBKey sets the TMDB API key on the test config.
func WithTMDBKey(key string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.TMDB.APIKey = key
	}
}

// WithTMDBBaseURL points the catalog client at a test server.
func WithTMDBBaseURL(baseURL string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.TMDB.BaseURL = baseURL
	}
}

// WithTMDBImageBaseURL points artwork downloads at a test server.
func WithTMDBImageBaseURL(baseURL string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.TMDB.ImageBaseURL = baseURL
	}
}

// WithSessionTTLHours overrides the session lifetime on the test config.
func WithSessionTTLHours(hours int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Auth.SessionTTLHours = hours
	}
}
