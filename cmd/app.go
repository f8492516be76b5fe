package cmd

import (
	"context"

	"github.com/killallgit/podcast-browser/internal/services/listennotes"
	"github.com/killallgit/podcast-browser/internal/services/podcastlist"
	"github.com/killallgit/podcast-browser/internal/services/podcasts"
	"github.com/killallgit/podcast-browser/pkg/config"
)

// newPodcastList wires client, repository and list state. The initial
// fetch starts immediately and is cancelled with ctx.
func newPodcastList(ctx context.Context, cfg *config.Config) *podcastlist.ViewModel {
	client := listennotes.NewClient(listennotes.Config{
		BaseURL:       cfg.Catalog.BaseURL,
		Endpoint:      cfg.Catalog.Endpoint,
		EnvelopeField: cfg.Catalog.EnvelopeField,
		APIKey:        cfg.Catalog.APIKey,
		UserAgent:     cfg.Catalog.UserAgent,
		Timeout:       cfg.Catalog.Timeout,
		RateLimit:     cfg.Catalog.RateLimit,
	})

	return podcastlist.New(
		podcasts.NewRepository(client),
		podcastlist.WithParent(ctx),
		podcastlist.WithFetchTimeout(cfg.Catalog.Timeout),
	)
}
