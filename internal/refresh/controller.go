// Package refresh manages the fetch lifecycle of backend-sourced
// collections: load on demand, manual refresh, and timed polling. Each
// controller holds the last successfully loaded snapshot; view layers
// filter, sort and paginate over that snapshot without triggering fetches.
package refresh

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gtohub/admin-portal/internal/metrics"
)

// RegionState describes what a view region should render. Failed is distinct
// from Empty: a load error never masquerades as "no records".
type RegionState int

const (
	RegionLoading RegionState = iota
	RegionEmpty
	RegionPopulated
	RegionFailed
)

func (s RegionState) String() string {
	switch s {
	case RegionLoading:
		return "loading"
	case RegionEmpty:
		return "empty"
	case RegionPopulated:
		return "populated"
	case RegionFailed:
		return "failed"
	}
	return "unknown"
}

// FetchFunc produces a fresh snapshot of the collection.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Controller owns one collection snapshot. Load replaces the snapshot
// wholesale on success and keeps the previous one on failure. Overlapping
// loads are guarded by a generation counter: a response from an older
// request never overwrites state written by a newer one.
type Controller[T any] struct {
	name  string
	fetch FetchFunc[T]
	log   *log.Logger

	mu       sync.Mutex
	items    []T
	loadedAt time.Time
	loaded   bool
	lastErr  error
	inflight int

	issued  uint64 // generation of the most recently started load
	applied uint64 // generation of the most recently applied outcome

	cron     *cron.Cron
	entryID  cron.EntryID
	onUpdate func([]T)
}

// Option configures a controller.
type Option[T any] func(*Controller[T])

// WithLogger injects a custom logger.
func WithLogger[T any](l *log.Logger) Option[T] {
	return func(c *Controller[T]) { c.log = l }
}

// WithOnUpdate registers a callback invoked with each successfully applied
// snapshot. Used to push poll results to live listeners.
func WithOnUpdate[T any](fn func([]T)) Option[T] {
	return func(c *Controller[T]) { c.onUpdate = fn }
}

// New creates a controller for the named collection.
func New[T any](name string, fetch FetchFunc[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{name: name, fetch: fetch, log: log.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches a fresh snapshot. On success the entire held collection is
// replaced; on failure the previous snapshot is kept and the error recorded
// for display. Stale responses (an older load resolving after a newer one)
// are discarded.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	gen := c.issued
	c.inflight++
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--

	if gen <= c.applied {
		// A newer load already resolved; this response is stale.
		metrics.SnapshotRefreshes.WithLabelValues(c.name, "stale").Inc()
		return nil
	}
	c.applied = gen

	if err != nil {
		c.lastErr = err
		metrics.SnapshotRefreshes.WithLabelValues(c.name, "error").Inc()
		c.log.Printf("refresh: %s load failed: %v", c.name, err)
		return err
	}

	c.items = items
	c.loadedAt = time.Now()
	c.loaded = true
	c.lastErr = nil
	metrics.SnapshotRefreshes.WithLabelValues(c.name, "ok").Inc()

	if c.onUpdate != nil {
		snapshot := make([]T, len(items))
		copy(snapshot, items)
		go c.onUpdate(snapshot)
	}
	return nil
}

// Refresh is a user- or timer-invoked re-entry into Load.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// Snapshot returns a copy of the held collection, when it was loaded, and
// the last load error (non-nil after a failed refresh even when stale data
// is still shown).
func (c *Controller[T]) Snapshot() ([]T, time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items, c.loadedAt, c.lastErr
}

// State reports what the owning view region should render.
func (c *Controller[T]) State() RegionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case !c.loaded && c.inflight > 0:
		return RegionLoading
	case !c.loaded && c.lastErr != nil:
		return RegionFailed
	case !c.loaded:
		return RegionLoading
	case len(c.items) == 0:
		return RegionEmpty
	default:
		return RegionPopulated
	}
}

// Poll schedules a periodic Load while the controller runs. The timer is a
// scoped resource: Stop (or server shutdown) cancels it under every exit
// path, so no poll fires against a torn-down page.
func (c *Controller[T]) Poll(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("refresh: %s poll interval must be positive", c.name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cron != nil {
		return fmt.Errorf("refresh: %s already polling", c.name)
	}

	c.cron = cron.New()
	id, err := c.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()
		_ = c.Load(ctx)
	})
	if err != nil {
		c.cron = nil
		return fmt.Errorf("refresh: %s schedule poll: %w", c.name, err)
	}
	c.entryID = id
	c.cron.Start()
	return nil
}

// Stop cancels polling and waits for any running poll job to return.
func (c *Controller[T]) Stop() {
	c.mu.Lock()
	cr := c.cron
	c.cron = nil
	c.mu.Unlock()

	if cr != nil {
		<-cr.Stop().Done()
	}
}
