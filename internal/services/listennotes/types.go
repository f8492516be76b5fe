package listennotes

import "github.com/killallgit/podcast-browser/internal/models"

// Envelope is the parsed best-podcasts response. Podcasts keep the ranking
// order the API returned them in.
type Envelope struct {
	Podcasts []models.Podcast
}

// wirePodcast mirrors one element of the envelope array. Pointers let the
// decoder tell a missing member from an empty string.
type wirePodcast struct {
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	Publisher   *string `json:"publisher"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
}
