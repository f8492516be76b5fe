package navigation

import (
	"fmt"
	"strings"

	"github.com/killallgit/podcast-browser/internal/models"
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
)

// Screen identifies one of the two destinations.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetails
)

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenDetails:
		return "details"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

const (
	listPath    = "podcasts"
	detailsPath = "podcasts/details/"
)

// Route is a parsed destination. List carries no payload; Details carries
// exactly one podcast.
type Route struct {
	Screen  Screen
	Podcast *models.Podcast
}

// ListRoute returns the route string of the List screen.
func ListRoute() string {
	return listPath
}

// DetailsRoute builds the route string that opens p on the Details screen.
func DetailsRoute(p models.Podcast) (string, error) {
	token, err := Encode(p)
	if err != nil {
		return "", err
	}
	return detailsPath + token, nil
}

// TokenFromRoute returns the token segment of a details route.
func TokenFromRoute(route string) (string, bool) {
	token, ok := strings.CutPrefix(strings.Trim(route, "/"), detailsPath)
	if !ok || token == "" || strings.Contains(token, "/") {
		return "", false
	}
	return token, true
}

// ParseRoute resolves a route string. A details route whose token does not
// decode fails with a DECODE error.
func ParseRoute(route string) (Route, error) {
	route = strings.Trim(route, "/")

	if route == listPath {
		return Route{Screen: ScreenList}, nil
	}

	if token, ok := strings.CutPrefix(route, detailsPath); ok || route+"/" == detailsPath {
		if token == "" || strings.Contains(token, "/") {
			return Route{}, apperrors.DecodeError("details route needs exactly one token segment", nil)
		}
		p, err := Decode(token)
		if err != nil {
			return Route{}, err
		}
		return Route{Screen: ScreenDetails, Podcast: &p}, nil
	}

	return Route{}, apperrors.New(apperrors.ErrCodeNotFound, fmt.Sprintf("unknown route %q", route)).
		WithDetail("route", route)
}
