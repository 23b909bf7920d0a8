package config

import (
	"errors"
	"fmt"
	"strings"
)

var posterSizes = map[string]struct{}{
	"w92": {}, "w154": {}, "w185": {}, "w342": {}, "w500": {}, "w780": {}, "original": {},
}

var backdropSizes = map[string]struct{}{
	"w300": {}, "w780": {}, "w1280": {}, "original": {},
}

// Validate ensures the configuration is usable.
//
// The TMDB API key is deliberately not required here: credential-store
// commands work offline, and catalog commands check for the key themselves.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAuth(); err != nil {
		return err
	}
	if err := c.validatePosters(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

// RequireTMDBKey returns an error when no API key is configured. Catalog
// commands call this before touching the network.
func (c *Config) RequireTMDBKey() error {
	if strings.TrimSpace(c.TMDB.APIKey) != "" {
		return nil
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/marquee/config.toml"
	}
	return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var or edit %s (create with 'marquee config init')", defaultPath)
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateAuth() error {
	if c.Auth.SessionTTLHours > 24*30 {
		return errors.New("auth.session_ttl_hours must be at most 720")
	}
	return nil
}

func (c *Config) validatePosters() error {
	if _, ok := posterSizes[c.Posters.Size]; !ok {
		return fmt.Errorf("posters.size: unsupported value %q", c.Posters.Size)
	}
	if _, ok := backdropSizes[c.Posters.BackdropSize]; !ok {
		return fmt.Errorf("posters.backdrop_size: unsupported value %q", c.Posters.BackdropSize)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
