package podcasts

import (
	"context"

	"github.com/killallgit/podcast-browser/internal/models"
	"github.com/killallgit/podcast-browser/internal/services/listennotes"
	"github.com/killallgit/podcast-browser/pkg/result"
)

// CatalogClient fetches the remote catalog. It may fail with any error.
type CatalogClient interface {
	FetchTopItems(ctx context.Context) (*listennotes.Envelope, error)
}

// PodcastRepository is the error boundary between transport and the
// application: it never returns a bare error or panics.
type PodcastRepository interface {
	GetPodcasts(ctx context.Context) result.Result[[]models.Podcast]
}
