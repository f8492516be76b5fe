package types

import (
	"github.com/killallgit/podcast-browser/internal/models"
	"github.com/killallgit/podcast-browser/internal/navigation"
)

// FromModelPodcast converts a podcast to its API form with its details route
func FromModelPodcast(p models.Podcast) (Podcast, error) {
	route, err := navigation.DetailsRoute(p)
	if err != nil {
		return Podcast{}, err
	}
	token, _ := navigation.TokenFromRoute(route)

	return Podcast{
		ID:          p.ID,
		Title:       p.Title,
		Publisher:   p.Publisher,
		Image:       p.Image,
		Description: p.Description,
		Token:       token,
		Route:       route,
	}, nil
}

// FromModelPodcastList converts a list, skipping podcasts that cannot be
// routed. The second return value counts skipped entries.
func FromModelPodcastList(podcasts []models.Podcast) ([]Podcast, int) {
	result := make([]Podcast, 0, len(podcasts))
	skipped := 0
	for _, p := range podcasts {
		dto, err := FromModelPodcast(p)
		if err != nil {
			skipped++
			continue
		}
		result = append(result, dto)
	}
	return result, skipped
}
