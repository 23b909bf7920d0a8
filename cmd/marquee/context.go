package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"marquee/internal/auth"
	"marquee/internal/browse"
	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/posters"
	"marquee/internal/tmdb"
	"marquee/internal/users"
)

type commandContext struct {
	configFlag *string
	jsonFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	stdin *bufio.Reader
}

func newCommandContext(configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// loadConfig resolves the --config flag and loads without caching, for
// commands that report on the config file itself.
func (c *commandContext) loadConfig() (*config.Config, string, bool, error) {
	var path string
	if c.configFlag != nil {
		path = strings.TrimSpace(*c.configFlag)
	}
	return config.Load(path)
}

// ensureLogger builds the process logger from config. Logging never blocks a
// command: on failure a no-op logger is returned.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// withStore opens the credential database, runs fn, and closes it.
func (c *commandContext) withStore(fn func(*config.Config, *users.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := users.Open(cfg)
	if err != nil {
		return fmt.Errorf("open credential store: %w", err)
	}
	defer store.Close()
	return fn(cfg, store)
}

// withAuthenticator opens the store and wraps it in an Authenticator. The
// default user is seeded first when the config asks for it.
func (c *commandContext) withAuthenticator(cmd *cobra.Command, fn func(*config.Config, *auth.Authenticator) error) error {
	return c.withStore(func(cfg *config.Config, store *users.Store) error {
		authenticator := auth.New(
			store,
			time.Duration(cfg.Auth.SessionTTLHours)*time.Hour,
			auth.WithLogger(c.ensureLogger()),
		)
		if cfg.Auth.SeedDefaultUser {
			if err := authenticator.SeedDefaultUser(cmd.Context()); err != nil {
				return err
			}
		}
		return fn(cfg, authenticator)
	})
}

// browseService builds the catalog facade. withPosterCache wires the on-disk
// artwork cache for commands that download images.
func (c *commandContext) browseService(withPosterCache bool) (*browse.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireTMDBKey(); err != nil {
		return nil, err
	}

	client, err := tmdb.New(
		cfg.TMDB.APIKey,
		cfg.TMDB.BaseURL,
		cfg.TMDB.Language,
		tmdb.WithTimeout(time.Duration(cfg.TMDB.RequestTimeout)*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("configure catalog client: %w", err)
	}

	var cache *posters.Cache
	if withPosterCache {
		cache, err = posters.New(
			cfg.Paths.PosterCacheDir,
			posters.WithTimeout(time.Duration(cfg.TMDB.ImageTimeout)*time.Second),
			posters.WithLogger(c.ensureLogger()),
		)
		if err != nil {
			return nil, fmt.Errorf("open poster cache: %w", err)
		}
	}

	return browse.New(
		client,
		tmdb.NewImages(cfg.TMDB.ImageBaseURL),
		cache,
		cfg.Posters.Size,
		cfg.Posters.BackdropSize,
		browse.WithLogger(c.ensureLogger()),
	), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
