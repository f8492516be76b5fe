package types

import (
	"github.com/killallgit/podcast-browser/internal/models"
	"github.com/killallgit/podcast-browser/internal/state"
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
)

// PodcastList is the list state served over HTTP
type PodcastList interface {
	Podcasts() state.ReadOnly[[]models.Podcast]
	Refresh() bool
	Loading() bool
	LastError() *apperrors.AppError
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Podcasts PodcastList
	Version  string
}
