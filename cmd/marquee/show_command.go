package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/browse"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var trailer bool

	cmd := &cobra.Command{
		Use:   "show <movie|tv> <id>",
		Short: "Show details for a title",
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

			svc, err := ctx.browseService(false)
			if err != nil {
				return err
			}

			if trailer {
				url, err := svc.TrailerURL(cmd.Context(), kind, id)
				if errors.Is(err, browse.ErrNoTrailer) {
					fmt.Fprintln(cmd.OutOrStdout(), "No trailer available")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), url)
				return nil
			}

			switch kind {
			case browse.KindMovie:
				view, err := svc.Movie(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printMovie(cmd, ctx, view)
			default:
				view, err := svc.TV(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printTV(cmd, ctx, view)
			}
		},
	}

	cmd.Flags().BoolVar(&trailer, "trailer", false, "Print the trailer URL instead of details")
	return cmd
}

func parseTitleID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid title id %q", arg)
	}
	return id, nil
}

func printMovie(cmd *cobra.Command, ctx *commandContext, view *browse.MovieView) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, view)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", view.Title, view.Year)
	if view.Tagline != "" {
		fmt.Fprintf(out, "%s\n", view.Tagline)
	}
	fmt.Fprintln(out, renderDetail([][2]string{
		{"Rating", view.Rating},
		{"Runtime", view.Runtime},
		{"Genres", view.Genres},
		{"Status", view.Status},
		{"Budget", view.Budget},
		{"Revenue", view.Revenue},
	}))
	if view.Overview != "" {
		fmt.Fprintf(out, "\n%s\n", view.Overview)
	}
	return nil
}

func printTV(cmd *cobra.Command, ctx *commandContext, view *browse.TVView) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, view)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", view.Title, view.Years)
	if view.Tagline != "" {
		fmt.Fprintf(out, "%s\n", view.Tagline)
	}
	fmt.Fprintln(out, renderDetail([][2]string{
		{"Rating", view.Rating},
		{"Episode length", view.EpisodeTime},
		{"Genres", view.Genres},
		{"Status", view.Status},
	}))
	if len(view.Seasons) > 0 {
		rows := make([][]string, 0, len(view.Seasons))
		for _, season := range view.Seasons {
			rows = append(rows, []string{
				strconv.Itoa(season.Number),
				season.Name,
				strconv.Itoa(season.Episodes),
				season.AirDate,
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Season", "Name", "Episodes", "Aired"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
		))
	}
	if view.Overview != "" {
		fmt.Fprintf(out, "\n%s\n", view.Overview)
	}
	return nil
}
