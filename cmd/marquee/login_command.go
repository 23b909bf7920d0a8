package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/auth"
	"marquee/internal/config"
)

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var usernameFlag string

	cmd := &cobra.Command{
		Use:   "login [username]",
		Short: "Log in and start a session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := strings.TrimSpace(usernameFlag)
			if len(args) == 1 {
				username = strings.TrimSpace(args[0])
			}
			if username == "" {
				return errors.New("username is required")
			}

			password, err := ctx.promptPassword(cmd, "Password")
			if err != nil {
				return err
			}

			return ctx.withAuthenticator(cmd, func(cfg *config.Config, authenticator *auth.Authenticator) error {
				session, err := authenticator.Login(cmd.Context(), username, password)
				if err != nil {
					return err
				}
				if err := saveSessionToken(cfg, session.Token); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (session valid until %s)\n",
					session.Username, session.ExpiresAt.Local().Format("2006-01-02 15:04"))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&usernameFlag, "username", "u", "", "Account to log in as")
	return cmd
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAuthenticator(cmd, func(cfg *config.Config, authenticator *auth.Authenticator) error {
				token, err := loadSessionToken(cfg)
				if errors.Is(err, errNotLoggedIn) {
					fmt.Fprintln(cmd.OutOrStdout(), "No active session")
					return nil
				}
				if err != nil {
					return err
				}
				if err := authenticator.Logout(cmd.Context(), token); err != nil {
					return err
				}
				if err := clearSessionToken(cfg); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil
			})
		},
	}
}

func newWhoamiCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAuthenticator(cmd, func(cfg *config.Config, authenticator *auth.Authenticator) error {
				session, err := currentSession(cmd, cfg, authenticator)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, session)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (session expires %s)\n",
					session.Username, session.ExpiresAt.Local().Format("2006-01-02 15:04"))
				return nil
			})
		},
	}
}
