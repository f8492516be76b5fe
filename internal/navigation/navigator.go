package navigation

import (
	"sync"

	"github.com/sirupsen/logrus"

	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
)

// Navigator moves between screens by route string.
type Navigator interface {
	// Navigate opens route. On error the current screen is unchanged.
	Navigate(route string) error
	// Back pops to the previous screen and reports whether it did.
	Back() bool
	Current() Route
}

// Stack is a back-stack Navigator that starts on the List screen. The only
// legal moves are List to Details and, through Back, Details to List.
type Stack struct {
	mu     sync.Mutex
	routes []Route
}

var _ Navigator = (*Stack)(nil)

// NewStack returns a navigator positioned on the List screen.
func NewStack() *Stack {
	return &Stack{routes: []Route{{Screen: ScreenList}}}
}

func (s *Stack) Navigate(route string) error {
	next, err := ParseRoute(route)
	if err != nil {
		logrus.WithError(err).WithField("route", truncate(route, 64)).Warn("Navigation aborted")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.routes[len(s.routes)-1]
	switch {
	case current.Screen == ScreenList && next.Screen == ScreenDetails:
		s.routes = append(s.routes, next)
		return nil
	case current.Screen == ScreenList && next.Screen == ScreenList:
		return nil
	default:
		return apperrors.Newf(apperrors.ErrCodeTransition, "cannot navigate from %s to %s", current.Screen, next.Screen)
	}
}

func (s *Stack) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.routes) == 1 {
		return false
	}
	s.routes = s.routes[:len(s.routes)-1]
	return true
}

// Current returns the top of the stack. The returned podcast is a copy.
func (s *Stack) Current() Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.routes[len(s.routes)-1]
	if r.Podcast != nil {
		p := *r.Podcast
		r.Podcast = &p
	}
	return r
}

// depth reports how many screens are on the stack.
func (s *Stack) depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.routes)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
