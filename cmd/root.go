package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/killallgit/podcast-browser/pkg/config"
	"github.com/killallgit/podcast-browser/pkg/logger"
	"github.com/spf13/cobra"
)

// Annotation keys read by the root command before a subcommand runs
const (
	annotationSkipConfig = "skip_config"
	annotationLogOutput  = "log_output"
)

// logCloser releases the log file opened for the running command
var logCloser io.Closer

// NewRootCmd builds the command tree. Each call returns a fresh tree so
// flag state never leaks between invocations.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "podcasts",
		Short: "Best podcasts browser",
		Long: `Podcast Browser - browse the best podcasts from the Listen Notes catalog

The list is fetched once at startup and held as observable state. Selecting
a podcast opens its details through a route that carries the whole podcast
as a URL-safe token.

Features:
  • Interactive terminal browser with a list and a details screen
  • One-shot colour listing with details routes
  • HTTP API with a websocket stream of list snapshots`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				_ = logCloser.Close()
				logCloser = nil
			}
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(),
		newBrowseCmd(),
		newListCmd(),
		newShowCmd(),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and configures logging for commands that need it
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[annotationSkipConfig] == "true" {
		return nil
	}

	if err := config.Init(); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	closer, err := logger.Init(loggerOptions(cmd, cfg))
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	logCloser = closer
	return nil
}

// loggerOptions merges logging config with the persistent flags. Flags win
// when set, and a command may pin the output through its annotations.
func loggerOptions(cmd *cobra.Command, cfg *config.Config) logger.Options {
	opts := logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
		File:   cfg.Logging.FilePath,
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		opts.Level, _ = flags.GetString("log-level")
	}
	if jsonLogs, _ := flags.GetBool("json-logs"); jsonLogs {
		opts.Format = "json"
	}
	if out := cmd.Annotations[annotationLogOutput]; out != "" {
		opts.Output = out
	}
	return opts
}
