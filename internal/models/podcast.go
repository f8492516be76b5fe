package models

// Podcast is one entry of the best-podcasts catalog. It is a value type:
// copies never share state, so a Podcast can be held in list state and
// embedded in a route at the same time.
type Podcast struct {
	ID          string `json:"id" example:"4d3fe717742d4963a85562e9f84d8c79"`
	Title       string `json:"title" example:"Star Wars 7x7"`
	Publisher   string `json:"publisher" example:"Allen Voivod"`
	Image       string `json:"image" example:"https://cdn-images-1.listennotes.com/podcasts/star-wars-7x7.jpg"`
	Description string `json:"description" example:"<p>The Star Wars podcast that won't waste your time.</p>"`
}

// Valid reports whether the podcast carries an identifier. Any non-empty
// string is an identifier, whitespace included.
func (p Podcast) Valid() bool {
	return p.ID != ""
}

// ClonePodcasts returns a copy of the slice so callers can't alias a
// published snapshot.
func ClonePodcasts(podcasts []Podcast) []Podcast {
	if podcasts == nil {
		return []Podcast{}
	}
	out := make([]Podcast, len(podcasts))
	copy(out, podcasts)
	return out
}
