// Package feed is the live read model of the reservation set. Every
// committed mutation triggers a reload and a push of the complete,
// creation-descending snapshot to all subscribers; consumers replace their
// local state wholesale on every push and never merge partial edits.
package feed

import (
	"context"
	"log/slog"
	"sync"

	"tablebook/internal/usecase/queries"

	"tablebook/internal/pkg/errs"
)

// Snapshot is the full current reservation set, newest first.
type Snapshot []*queries.ReservationView

// Feed fans snapshots out to subscribers.
type Feed struct {
	mu     sync.RWMutex
	nextID int64
	subs   map[int64]func(Snapshot)
	last   Snapshot
	warm   bool
}

func New() *Feed {
	return &Feed{
		subs: make(map[int64]func(Snapshot)),
	}
}

// Subscribe registers fn and returns its unsubscribe. If a snapshot has
// already been published, fn receives it immediately.
func (f *Feed) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	warm, last := f.warm, f.last
	f.mu.Unlock()

	if warm {
		fn(last)
	}

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

// Publish replaces the current snapshot and pushes it to every subscriber.
func (f *Feed) Publish(s Snapshot) {
	f.mu.Lock()
	f.last = s
	f.warm = true
	fns := make([]func(Snapshot), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// Current returns the last published snapshot, if any.
func (f *Feed) Current() (Snapshot, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.last, f.warm
}

// SnapshotSource loads the complete reservation set in creation-descending
// order.
type SnapshotSource interface {
	AllByCreationDesc(ctx context.Context) ([]*queries.ReservationView, error)
}

// Refresher reloads the snapshot from the store and publishes it. Commands
// call Refresh after every committed mutation.
type Refresher struct {
	source SnapshotSource
	feed   *Feed
}

func NewRefresher(source SnapshotSource, feed *Feed) *Refresher {
	return &Refresher{source: source, feed: feed}
}

func (r *Refresher) Refresh(ctx context.Context) error {
	snapshot, err := r.source.AllByCreationDesc(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to load reservation snapshot")
	}
	r.feed.Publish(snapshot)
	return nil
}

// TryRefresh is the post-commit hook. It reloads inline on the caller's
// goroutine; a failed reload only delays the next push, it must never fail
// the mutation that triggered it.
func (r *Refresher) TryRefresh(ctx context.Context) {
	if err := r.Refresh(ctx); err != nil {
		slog.Warn("reservation feed refresh failed", "error", err.Error())
	}
}
