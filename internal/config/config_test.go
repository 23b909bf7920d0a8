package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"marquee/internal/config"
)

func TestLoadDefaultConfigUsesEnvTMDBKeyAndExpandsPaths(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "marquee")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.PosterCacheDir != filepath.Join(tempHome, ".cache", "marquee", "posters") {
		t.Fatalf("unexpected poster cache dir: %q", cfg.Paths.PosterCacheDir)
	}
	if cfg.TMDB.APIKey != "test-key" {
		t.Fatalf("expected TMDB key from env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != config.Default().TMDB.BaseURL {
		t.Fatalf("unexpected TMDB base url: %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.RequestTimeout != 5 || cfg.TMDB.ImageTimeout != 3 {
		t.Fatalf("unexpected timeouts: %d/%d", cfg.TMDB.RequestTimeout, cfg.TMDB.ImageTimeout)
	}
	if cfg.Auth.SeedDefaultUser {
		t.Fatal("expected default-user seeding disabled by default")
	}
	if cfg.Auth.SessionTTLHours != 12 {
		t.Fatalf("unexpected session ttl: %d", cfg.Auth.SessionTTLHours)
	}
	if cfg.Posters.Size != "w500" {
		t.Fatalf("unexpected poster size: %q", cfg.Posters.Size)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadReadsExplicitFileAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := strings.Join([]string{
		"[paths]",
		`data_dir = "` + filepath.Join(dir, "data") + `"`,
		"[tmdb]",
		`api_key = "from-file"`,
		`base_url = "https://example.test/v3/"`,
		"[logging]",
		`level = "DEBUG"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected resolved path %q to exist, got %q exists=%v", path, resolved, exists)
	}
	if cfg.TMDB.APIKey != "from-file" {
		t.Fatalf("unexpected api key: %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != "https://example.test/v3" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.TMDB.BaseURL)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected level lowercased, got %q", cfg.Logging.Level)
	}
	if cfg.DatabasePath() != filepath.Join(dir, "data", "users.db") {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath())
	}
}

func TestCreateSampleDecodes(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	// Validate it decodes
	var cfg config.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	if cfg.TMDB.BaseURL != config.Default().TMDB.BaseURL {
		t.Fatalf("sample base url mismatch: %q", cfg.TMDB.BaseURL)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected invalid logging format to fail validation")
	}

	cfg = config.Default()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected invalid logging level to fail validation")
	}

	cfg = config.Default()
	cfg.Posters.Size = "huge"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected invalid poster size to fail validation")
	}

	cfg = config.Default()
	cfg.Paths.DataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected missing data dir to fail validation")
	}
}

func TestRequireTMDBKey(t *testing.T) {
	cfg := config.Default()
	cfg.TMDB.APIKey = ""
	if err := cfg.RequireTMDBKey(); err == nil {
		t.Fatal("expected missing key to error")
	}
	cfg.TMDB.APIKey = "abc"
	if err := cfg.RequireTMDBKey(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
