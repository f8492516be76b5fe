package cmd

import (
	"os/signal"
	"syscall"

	"github.com/killallgit/podcast-browser/internal/tui"
	"github.com/killallgit/podcast-browser/pkg/config"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var noAltScreen bool

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the best podcasts in the terminal",
		Long: `Open the interactive browser.

The list screen shows the best podcasts as soon as the catalog answers.
Press enter to open a podcast, esc to go back, / to filter, r to refresh
and q to quit. Logs are written to the configured log file so they do not
disturb the screen.`,
		Args: cobra.NoArgs,
		// The terminal owns stdout while the browser runs
		Annotations: map[string]string{annotationLogOutput: "file"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			list := newPodcastList(ctx, cfg)
			defer list.Close()

			return tui.Run(ctx, list, tui.Options{
				DescriptionWidth: cfg.UI.DescriptionWidth,
				AltScreen:        cfg.UI.AltScreen && !noAltScreen,
			})
		},
	}

	browseCmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")
	return browseCmd
}
