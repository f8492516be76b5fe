package cmd

import (
	"strings"

	"github.com/killallgit/podcast-browser/internal/cli/colours"
	"github.com/killallgit/podcast-browser/internal/navigation"
	"github.com/killallgit/podcast-browser/internal/tui"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <route|token>",
		Short: "Print the podcast carried by a details route",
		Long: `Decode a details route, or just its token, and print the podcast.

No request is made: the route already holds every field.

Example:
  podcasts show podcasts/details/v1.eyJ2IjoxLC...`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := strings.TrimSpace(args[0])
			if !strings.HasPrefix(strings.TrimPrefix(arg, "/"), "podcasts") {
				arg = "podcasts/details/" + arg
			}

			route, err := navigation.ParseRoute(arg)
			if err != nil {
				return err
			}
			if route.Screen != navigation.ScreenDetails {
				colours.Warning.Fprintln(cmd.OutOrStdout(), "The list route carries no podcast")
				return nil
			}

			p := route.Podcast
			out := cmd.OutOrStdout()
			colours.Title.Fprintln(out, p.Title)
			if p.Publisher != "" {
				colours.Publisher.Fprintln(out, p.Publisher)
			}
			colours.Info.Fprintf(out, "id: %s\n", p.ID)
			if p.Image != "" {
				colours.Info.Fprintf(out, "image: %s\n", p.Image)
			}
			if text := tui.PlainText(p.Description); text != "" {
				_, err = out.Write([]byte("\n" + text + "\n"))
			}
			return err
		},
	}
}
