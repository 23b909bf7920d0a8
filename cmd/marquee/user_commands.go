package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/auth"
	"marquee/internal/config"
	"marquee/internal/users"
)

func newUserCommand(ctx *commandContext) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage local accounts",
	}

	userCmd.AddCommand(newUserAddCommand(ctx))
	userCmd.AddCommand(newUserRemoveCommand(ctx))
	userCmd.AddCommand(newUserListCommand(ctx))

	return userCmd
}

func newUserAddCommand(ctx *commandContext) *cobra.Command {
	var passwordFlag string

	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			password := passwordFlag
			if password == "" {
				var err error
				password, err = ctx.promptNewPassword(cmd)
				if err != nil {
					return err
				}
			}

			return ctx.withAuthenticator(cmd, func(cfg *config.Config, authenticator *auth.Authenticator) error {
				if err := authenticator.Provision(cmd.Context(), username, password); err != nil {
					if errors.Is(err, auth.ErrDuplicateUser) {
						return fmt.Errorf("user %q already exists", username)
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created user %s\n", username)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&passwordFlag, "password", "", "Password for the new account (prompted when omitted)")
	return cmd
}

func newUserRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <username>",
		Short: "Delete an account and its sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			return ctx.withStore(func(cfg *config.Config, store *users.Store) error {
				removed, err := store.DeleteUser(cmd.Context(), username)
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("user %q not found", username)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed user %s\n", username)
				return nil
			})
		},
	}
}

func newUserListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *users.Store) error {
				records, err := store.ListUsers(cmd.Context())
				if err != nil {
					return err
				}

				if ctx.jsonOutput() {
					type userView struct {
						Username  string `json:"username"`
						CreatedAt string `json:"created_at"`
					}
					views := make([]userView, 0, len(records))
					for _, record := range records {
						views = append(views, userView{
							Username:  record.Username,
							CreatedAt: record.CreatedAt.Format("2006-01-02 15:04"),
						})
					}
					return writeJSON(cmd, views)
				}

				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No users provisioned")
					return nil
				}
				rows := make([][]string, 0, len(records))
				for _, record := range records {
					rows = append(rows, []string{record.Username, record.CreatedAt.Format("2006-01-02 15:04")})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Username", "Created"},
					rows,
					[]columnAlignment{alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}
