package cmd

import (
	"fmt"
	"io"

	"github.com/killallgit/podcast-browser/internal/cli/colours"
	"github.com/killallgit/podcast-browser/internal/models"
	"github.com/killallgit/podcast-browser/internal/navigation"
	"github.com/killallgit/podcast-browser/internal/services/podcastlist"
	"github.com/killallgit/podcast-browser/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type listOptions struct {
	query      string
	limit      int
	showRoutes bool
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the best podcasts",
		Long: `Fetch the best podcasts once and print them in catalog order.

Each entry can be followed by its details route. Pass a route to
"podcasts show" to print the podcast it carries.

Example:
  podcasts list
  podcasts list --query history --limit 5
  podcasts list --routes`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationLogOutput: "stderr"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	listCmd.Flags().StringVarP(&opts.query, "query", "q", "", "only show podcasts whose title or publisher match")
	listCmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "maximum number of podcasts to print (0 for all)")
	listCmd.Flags().BoolVar(&opts.showRoutes, "routes", false, "print the details route under each podcast")
	return listCmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	list := newPodcastList(cmd.Context(), cfg)
	defer list.Close()
	list.Wait()

	if appErr := list.LastError(); appErr != nil {
		return fmt.Errorf("fetching best podcasts: %w", appErr)
	}

	podcasts := list.Podcasts().Get()
	if opts.query != "" {
		podcasts = podcastlist.Filter(podcasts, opts.query)
	}
	if opts.limit > 0 && len(podcasts) > opts.limit {
		podcasts = podcasts[:opts.limit]
	}

	out := cmd.OutOrStdout()
	if len(podcasts) == 0 {
		colours.Warning.Fprintln(out, "No podcasts found")
		return nil
	}

	for i, p := range podcasts {
		printPodcast(out, i+1, p, opts.showRoutes)
	}
	return nil
}

func printPodcast(out io.Writer, rank int, p models.Podcast, showRoute bool) {
	colours.Title.Fprintf(out, "%3d. %s\n", rank, p.Title)
	if p.Publisher != "" {
		colours.Publisher.Fprintf(out, "     %s\n", p.Publisher)
	}
	if !showRoute {
		return
	}

	route, err := navigation.DetailsRoute(p)
	if err != nil {
		logrus.WithError(err).WithField("id", p.ID).Warn("Skipping route for podcast")
		return
	}
	colours.Route.Fprintf(out, "     %s\n", route)
}
