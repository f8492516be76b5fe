package podcasts

import (
	"context"
	"fmt"

	"github.com/killallgit/podcast-browser/internal/models"
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
	"github.com/killallgit/podcast-browser/pkg/result"
)

type Repository struct {
	client CatalogClient
}

func NewRepository(client CatalogClient) PodcastRepository {
	return &Repository{client: client}
}

// GetPodcasts calls the catalog client exactly once and folds its outcome
// into a Result. Order of the envelope is preserved.
func (r *Repository) GetPodcasts(ctx context.Context) (res result.Result[[]models.Podcast]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = result.Failure[[]models.Podcast](
				apperrors.Newf(apperrors.ErrCodeInternal, "catalog client panicked: %v", rec))
		}
	}()

	envelope, err := r.client.FetchTopItems(ctx)
	if err != nil {
		return result.Failure[[]models.Podcast](err)
	}
	if envelope == nil {
		return result.Failure[[]models.Podcast](
			apperrors.ParseError("empty envelope", fmt.Errorf("client returned no envelope")))
	}

	return result.Success(models.ClonePodcasts(envelope.Podcasts))
}
