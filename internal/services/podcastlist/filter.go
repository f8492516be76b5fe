package podcastlist

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/killallgit/podcast-browser/internal/models"
)

// Filter returns the podcasts matching query, best matches first. Substring
// hits on title or publisher rank ahead of near misses, which are words
// within a small edit distance of the query. Ties keep catalog order. An
// empty query returns every podcast.
func Filter(list []models.Podcast, query string) []models.Podcast {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return models.ClonePodcasts(list)
	}

	type scored struct {
		podcast models.Podcast
		score   int
	}

	maxDistance := len([]rune(q)) / 3
	if maxDistance < 1 {
		maxDistance = 1
	}

	matches := make([]scored, 0, len(list))
	for _, p := range list {
		haystack := strings.ToLower(p.Title + " " + p.Publisher)
		if strings.Contains(haystack, q) {
			matches = append(matches, scored{podcast: p, score: 0})
			continue
		}

		best := -1
		for _, word := range strings.Fields(haystack) {
			d := levenshtein.ComputeDistance(word, q)
			if best == -1 || d < best {
				best = d
			}
		}
		if best != -1 && best <= maxDistance {
			matches = append(matches, scored{podcast: p, score: best})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	out := make([]models.Podcast, len(matches))
	for i, m := range matches {
		out[i] = m.podcast
	}
	return out
}
