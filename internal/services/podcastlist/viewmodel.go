// Package podcastlist owns the observable list of best podcasts shown on the
// List screen. It turns one asynchronous catalog fetch into state that any
// number of readers can watch.
package podcastlist

import (
	"context"
	"sync"
	"time"

	"github.com/killallgit/podcast-browser/internal/models"
	"github.com/killallgit/podcast-browser/internal/services/podcasts"
	"github.com/killallgit/podcast-browser/internal/state"
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Option configures a ViewModel
type Option func(*ViewModel)

// WithParent ties the view model's lifetime to ctx: cancelling ctx cancels
// any pending fetch.
func WithParent(ctx context.Context) Option {
	return func(vm *ViewModel) {
		vm.parent = ctx
	}
}

// WithFetchTimeout bounds each fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(vm *ViewModel) {
		vm.fetchTimeout = d
	}
}

// ViewModel is the only writer of the podcast list. Failed fetches are
// logged and leave the list as it was.
type ViewModel struct {
	repo         podcasts.PodcastRepository
	cell         *state.Cell[[]models.Podcast]
	parent       context.Context
	fetchTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	done    chan struct{} // closed when the in-flight fetch settles; nil when idle
	closed  bool
	lastErr *apperrors.AppError
}

// New creates the view model and schedules the initial fetch.
func New(repo podcasts.PodcastRepository, opts ...Option) *ViewModel {
	vm := &ViewModel{
		repo:   repo,
		cell:   state.New([]models.Podcast{}, state.WithCopy(models.ClonePodcasts)),
		parent: context.Background(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.ctx, vm.cancel = context.WithCancel(vm.parent)

	vm.launch()
	return vm
}

// Podcasts exposes the list state. The initial value is an empty list.
func (vm *ViewModel) Podcasts() state.ReadOnly[[]models.Podcast] {
	return vm.cell.ReadOnly()
}

// Refresh schedules another fetch. It returns false when a fetch is
// already in flight or the view model's scope has ended.
func (vm *ViewModel) Refresh() bool {
	return vm.launch()
}

// Loading reports whether a fetch is in flight.
func (vm *ViewModel) Loading() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.done != nil
}

// LastError returns the failure of the most recent fetch, or nil if it
// succeeded. It does not affect the list.
func (vm *ViewModel) LastError() *apperrors.AppError {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.lastErr
}

// Wait blocks until the in-flight fetch, if any, has settled.
func (vm *ViewModel) Wait() {
	vm.mu.Lock()
	done := vm.done
	vm.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close cancels a pending fetch and discards its result. Nothing is written
// to the list after Close returns and all subscriptions are closed.
func (vm *ViewModel) Close() {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	vm.closed = true
	done := vm.done
	vm.mu.Unlock()

	vm.cancel()
	if done != nil {
		<-done
	}
	vm.cell.Close()
}

func (vm *ViewModel) launch() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.closed || vm.done != nil || vm.ctx.Err() != nil {
		return false
	}
	done := make(chan struct{})
	vm.done = done

	go vm.fetch(done)
	return true
}

func (vm *ViewModel) fetch(done chan struct{}) {
	defer close(done)

	ctx := vm.ctx
	if vm.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, vm.fetchTimeout)
		defer cancel()
	}

	res := vm.repo.GetPodcasts(ctx)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.done = nil

	if vm.closed || vm.ctx.Err() != nil {
		logrus.Debug("Podcast fetch settled after teardown, discarding result")
		return
	}

	if list, ok := res.Value(); ok {
		vm.lastErr = nil
		vm.cell.Set(list)
		logrus.WithField("count", len(list)).Info("Loaded best podcasts")
		return
	}

	vm.lastErr = res.Err()
	logrus.WithError(vm.lastErr).
		WithField("code", vm.lastErr.Code).
		Warn("Failed to load podcasts, keeping previous list")
}
