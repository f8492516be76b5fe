package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-browser/api"
	"github.com/killallgit/podcast-browser/api/types"
	"github.com/killallgit/podcast-browser/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	host string
	port int
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the Podcast Browser API server with the configured settings.

The server fetches the best podcasts once at startup and serves the list,
the details routes and a websocket stream of list snapshots.

Example:
  podcasts serve
  podcasts serve --port 9090
  podcasts serve --host 0.0.0.0 --port 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, opts)
		},
	}

	serveCmd.Flags().StringVar(&opts.host, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&opts.port, "port", 0, "server port (overrides config)")
	return serveCmd
}

func runServer(cmd *cobra.Command, opts *serveOptions) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	host, port := cfg.Server.Host, cfg.Server.Port
	if cmd.Flags().Changed("host") {
		host = opts.host
	}
	if cmd.Flags().Changed("port") {
		port = opts.port
	}

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	list := newPodcastList(ctx, cfg)
	defer list.Close()

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	server := api.NewServer(api.OptionsFromConfig(addr, cfg))
	server.SetDependencies(&types.Dependencies{Podcasts: list, Version: Version})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	logrus.WithField("address", addr).Info("Podcast Browser API server started")

	select {
	case <-ctx.Done():
		logrus.Info("Shutting down server...")
	case err := <-serverErr:
		logrus.WithError(err).Error("Server stopped unexpectedly")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
		return err
	}

	logrus.Info("Server gracefully stopped")
	return nil
}
