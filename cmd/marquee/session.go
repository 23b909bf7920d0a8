package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/auth"
	"marquee/internal/config"
	"marquee/internal/users"
)

var errNotLoggedIn = errors.New("not logged in; run `marquee login` first")

// saveSessionToken persists the session token for later commands. The file
// is user-readable only.
func saveSessionToken(cfg *config.Config, token string) error {
	if err := os.WriteFile(cfg.SessionFilePath(), []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func loadSessionToken(cfg *config.Config) (string, error) {
	data, err := os.ReadFile(cfg.SessionFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", errNotLoggedIn
		}
		return "", fmt.Errorf("read session file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", errNotLoggedIn
	}
	return token, nil
}

func clearSessionToken(cfg *config.Config) error {
	if err := os.Remove(cfg.SessionFilePath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// currentSession resolves the saved token to a live session, clearing stale
// token files along the way.
func currentSession(cmd *cobra.Command, cfg *config.Config, authenticator *auth.Authenticator) (*users.Session, error) {
	token, err := loadSessionToken(cfg)
	if err != nil {
		return nil, err
	}
	session, err := authenticator.Session(cmd.Context(), token)
	switch {
	case errors.Is(err, auth.ErrSessionExpired):
		_ = clearSessionToken(cfg)
		return nil, errors.New("session expired; run `marquee login` again")
	case errors.Is(err, auth.ErrNoSession):
		_ = clearSessionToken(cfg)
		return nil, errNotLoggedIn
	case err != nil:
		return nil, err
	}
	return session, nil
}

// requireSession gates catalog commands on a valid login.
func (c *commandContext) requireSession(cmd *cobra.Command) error {
	return c.withAuthenticator(cmd, func(cfg *config.Config, authenticator *auth.Authenticator) error {
		_, err := currentSession(cmd, cfg, authenticator)
		return err
	})
}
