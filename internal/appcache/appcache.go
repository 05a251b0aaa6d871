// Package appcache holds a background-refreshed snapshot of installed
// applications, annotated with process liveness. It follows the
// ticker-driven, mutex-guarded lifecycle of the teacher's filesystem
// watcher (stopCh/doneCh, atomic snapshot swap), but keeps the teacher's
// fsnotify fast path alongside it: process liveness still needs the
// periodic tick regardless, while an fsnotify event on a scan root (a
// .desktop file dropped or removed) short-circuits straight to a refresh
// instead of waiting out the rest of the interval.
package appcache

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leechristophermurray/launch/internal/logging"
	"github.com/leechristophermurray/launch/internal/model"
	"github.com/leechristophermurray/launch/internal/ports"
)

// rootsProvider is implemented by AppRepository adapters that can name the
// directories they scan, so the cache can watch those directories for
// fast-path invalidation. Optional: an AppRepository that doesn't
// implement it just runs on the ticker alone.
type rootsProvider interface {
	ScanRoots() []string
}

// Stats reports the cache's background-refresh activity.
type Stats struct {
	RefreshCount        int
	LastRefreshAt        time.Time
	LastRefreshDuration time.Duration
	LastError           error
}

// Cache holds the current snapshot of installed applications and keeps it
// fresh on a fixed interval.
type Cache struct {
	apps   ports.AppRepository
	procs  ports.ProcessMonitor
	period time.Duration

	mu       sync.RWMutex
	snapshot []model.Application
	stats    Stats

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	runMu   sync.Mutex
}

// New builds a Cache and takes its first, blocking snapshot before
// returning, so callers never observe an empty cache at startup.
func New(apps ports.AppRepository, procs ports.ProcessMonitor, period time.Duration) (*Cache, error) {
	c := &Cache{
		apps:   apps,
		procs:  procs,
		period: period,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	if err := c.refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

// Start begins the background refresh loop. Non-blocking; call Stop to
// shut it down. Calling Start twice is a no-op.
func (c *Cache) Start() {
	c.runMu.Lock()
	defer c.runMu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.stopCh = make(chan struct{})
	c.doneCh = make(chan struct{})
	go c.run(c.stopCh, c.doneCh)
}

// Stop halts the background refresh loop and waits for it to exit.
func (c *Cache) Stop() {
	c.runMu.Lock()
	defer c.runMu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	close(c.stopCh)
	<-c.doneCh
}

func (c *Cache) run(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	watcher, events := c.watchScanRoots()
	if watcher != nil {
		defer watcher.Close()
	}

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if err := c.refresh(); err != nil {
				logging.Get(logging.CategoryCache).Warnw("refresh failed", "error", err)
			}
		case evt, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if !evt.Op.Has(fsnotify.Create) && !evt.Op.Has(fsnotify.Remove) &&
				!evt.Op.Has(fsnotify.Write) && !evt.Op.Has(fsnotify.Rename) {
				continue
			}
			if err := c.refresh(); err != nil {
				logging.Get(logging.CategoryCache).Warnw("fsnotify-triggered refresh failed", "error", err)
			}
		}
	}
}

// watchScanRoots starts an fsnotify watcher over the app repository's scan
// roots, if it exposes any (see rootsProvider). Returns a nil watcher and
// nil channel when the repository doesn't support it or watching fails;
// the ticker alone still keeps the cache fresh in that case.
func (c *Cache) watchScanRoots() (*fsnotify.Watcher, chan fsnotify.Event) {
	rp, ok := c.apps.(rootsProvider)
	if !ok {
		return nil, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Get(logging.CategoryCache).Warnw("fsnotify watcher unavailable, falling back to ticker only", "error", err)
		return nil, nil
	}

	watched := 0
	for _, root := range rp.ScanRoots() {
		if err := watcher.Add(root); err != nil {
			logging.Get(logging.CategoryCache).Debugw("could not watch scan root", "root", root, "error", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		watcher.Close()
		return nil, nil
	}
	return watcher, watcher.Events
}

// refresh scans applications, annotates liveness, and atomically swaps the
// snapshot. On failure the prior snapshot is kept (graceful degradation
// per the poisoned-state invariant) and the error is recorded in Stats.
func (c *Cache) refresh() error {
	start := time.Now()

	apps, err := c.apps.FindApps()
	if err != nil {
		c.recordFailure(err)
		return err
	}
	if err := c.procs.Annotate(apps); err != nil {
		logging.Get(logging.CategoryCache).Debugw("process annotation incomplete", "error", err)
	}

	c.mu.Lock()
	c.snapshot = apps
	c.stats.RefreshCount++
	c.stats.LastRefreshAt = start
	c.stats.LastRefreshDuration = time.Since(start)
	c.stats.LastError = nil
	c.mu.Unlock()
	return nil
}

func (c *Cache) recordFailure(err error) {
	c.mu.Lock()
	c.stats.LastError = err
	c.mu.Unlock()
}

// Snapshot returns a defensive copy of the current application list. If
// the cache has never successfully refreshed, it returns an empty, non-nil
// slice rather than an error.
func (c *Cache) Snapshot() []model.Application {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Application, len(c.snapshot))
	copy(out, c.snapshot)
	return out
}

// Stats returns a copy of the current refresh statistics.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Refresh forces an immediate, synchronous refresh, useful for tests and
// for callers that cannot wait for the next tick.
func (c *Cache) Refresh() error {
	return c.refresh()
}
