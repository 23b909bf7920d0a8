package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/browse"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "browse <movies|tv>",
		Short: "Browse popular movies or TV shows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := browse.ParseMediaKind(args[0])
			if err != nil {
				return err
			}
			if err := ctx.requireSession(cmd); err != nil {
				return err
			}

			svc, err := ctx.browseService(false)
			if err != nil {
				return err
			}
			listing, err := svc.Popular(cmd.Context(), kind, page)
			if err != nil {
				return err
			}
			return printListing(cmd, ctx, listing)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Result page to fetch")
	return cmd
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "search <movies|tv> <query>",
		Short: "Search the catalog by title",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := browse.ParseMediaKind(args[0])
			if err != nil {
				return err
			}
			query := strings.Join(args[1:], " ")
			if err := ctx.requireSession(cmd); err != nil {
				return err
			}

			svc, err := ctx.browseService(false)
			if err != nil {
				return err
			}
			listing, err := svc.Search(cmd.Context(), kind, query, page)
			if err != nil {
				return err
			}
			if len(listing.Rows) == 0 && !ctx.jsonOutput() {
				fmt.Fprintf(cmd.OutOrStdout(), "No results for %q\n", query)
				return nil
			}
			return printListing(cmd, ctx, listing)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Result page to fetch")
	return cmd
}

func printListing(cmd *cobra.Command, ctx *commandContext, listing *browse.Listing) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, listing)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderListing(listing))
	fmt.Fprintf(out, "Page %d of %d (%d results)\n", listing.Page, listing.TotalPages, listing.TotalResults)
	return nil
}
