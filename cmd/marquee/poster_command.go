package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/browse"
)

func newPosterCommand(ctx *commandContext) *cobra.Command {
	var size string

	cmd := &cobra.Command{
		Use:   "poster <movie|tv> <id>",
		Short: "Download a title's poster to the local cache",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := browse.ParseMediaKind(args[0])
			if err != nil {
				return err
			}
			id, err := parseTitleID(args[1])
			if err != nil {
				return err
			}
			if err := ctx.requireSession(cmd); err != nil {
				return err
			}

			svc, err := ctx.browseService(true)
			if err != nil {
				return err
			}
			local, err := svc.FetchPoster(cmd.Context(), kind, id, size)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]string{"path": local})
			}
			fmt.Fprintln(cmd.OutOrStdout(), local)
			return nil
		},
	}

	cmd.Flags().StringVar(&size, "size", "", "Poster size (defaults to the configured size)")
	return cmd
}
