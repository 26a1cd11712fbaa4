// Package querycache is a process-wide keyed cache of server snapshots.
//
// Reads go through Query, which returns a fresh cached value or fetches one.
// Concurrent reads of a cold or stale key share one fetch. Mutations never
// patch cached data: they call Invalidate, which marks entries stale and, for
// keys somebody is subscribed to, schedules a single background refetch per
// key. Invalidations that arrive while that refetch is in flight collapse into
// at most one follow-up refetch.
//
//	cache := querycache.New(&cfg.Cache, logger)
//	defer cache.Close()
//
//	todos, err := querycache.Query(ctx, cache, "todos", api.ListTodos)
//	cache.Invalidate("todos")
//
// Fetch errors are returned to the caller and never cached; the previous
// value, if any, stays available through Peek.
package querycache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/atsushi-h/go-todo/internal/platform/config"
	"github.com/atsushi-h/go-todo/internal/platform/telemetry"
)

// ErrClosed is returned by operations on a closed cache.
var ErrClosed = errors.New("query cache closed")

const defaultJanitorInterval = time.Minute

// Fetcher loads the server snapshot for one key.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Option configures optional Cache behavior.
type Option func(*Cache)

// WithClock replaces time.Now. Tests use it to step over the stale time.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithMetrics records cache reads on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Cache) {
		c.metrics = m
	}
}

// WithJanitorInterval sets how often unobserved entries are checked against
// the GC time. Zero disables the janitor.
func WithJanitorInterval(d time.Duration) Option {
	return func(c *Cache) {
		c.janitorInterval = d
	}
}

type entry struct {
	value     any
	hasValue  bool
	updatedAt time.Time
	lastUsed  time.Time
	stale     bool

	// gen changes on every Invalidate or Set; a fetch started under an older
	// gen cannot make the entry fresh.
	gen uint64

	fetch func(context.Context) (any, error)
	// values carries the request-scoped values (session cookie, logger) of
	// the most recent reader for background refetches. It is never canceled.
	values context.Context

	refetching bool
	dirty      bool
}

// Cache is a keyed cache of server snapshots. The zero value is not usable;
// construct with New and release with Close.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	subs    map[string]map[chan Event]struct{}
	gen     uint64
	closed  bool

	group singleflight.Group

	staleTime       time.Duration
	gcTime          time.Duration
	refetchTimeout  time.Duration
	janitorInterval time.Duration

	now     func() time.Time
	logger  *slog.Logger
	metrics *telemetry.Metrics

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a cache and starts its janitor.
func New(cfg *config.CacheConfig, logger *slog.Logger, opts ...Option) *Cache {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Cache{
		entries:         make(map[string]*entry),
		subs:            make(map[string]map[chan Event]struct{}),
		staleTime:       cfg.StaleTime,
		gcTime:          cfg.GCTime,
		refetchTimeout:  cfg.RefetchTimeout,
		janitorInterval: defaultJanitorInterval,
		now:             time.Now,
		logger:          logger,
		ctx:             ctx,
		cancel:          cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.refetchTimeout <= 0 {
		c.refetchTimeout = 30 * time.Second
	}

	if c.janitorInterval > 0 && c.gcTime > 0 {
		c.wg.Add(1)
		go c.janitor()
	}

	return c
}

// Close stops background work, closes all subscription channels and waits
// for in-flight background refetches to return. Close is idempotent.
func (c *Cache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.cancel()
	for key, set := range c.subs {
		for ch := range set {
			close(ch)
		}
		delete(c.subs, key)
	}
	c.mu.Unlock()

	c.wg.Wait()
	return nil
}

// Name identifies the cache in health reports.
func (c *Cache) Name() string {
	return "query-cache"
}

// HealthCheck fails once the cache is closed.
func (c *Cache) HealthCheck(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return nil
}

// Query returns the cached value for key when it is fresh, otherwise fetches
// it. Reads that find the key stale or missing at the same time share a
// single fetch. If ctx is done before the fetch completes, Query returns
// ctx.Err() and the fetch still populates the cache.
func Query[T any](ctx context.Context, c *Cache, key string, fetch Fetcher[T]) (T, error) {
	var zero T

	v, err := c.get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("querycache: key %q holds %T, want %T", key, v, zero)
	}
	return t, nil
}

// Peek returns the last stored value for key without fetching, fresh or not.
func Peek[T any](c *Cache, key string) (T, bool) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.hasValue {
		return zero, false
	}
	if e.value == nil {
		return zero, true
	}
	t, ok := e.value.(T)
	return t, ok
}

// Set stores value as a fresh snapshot for key.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	e := c.entryLocked(key)
	c.gen++
	e.gen = c.gen
	e.value = value
	e.hasValue = true
	e.stale = false
	e.updatedAt = c.now()
	e.lastUsed = e.updatedAt
	c.publishLocked(Event{Type: EventUpdated, Key: key})
}

// Invalidate marks keys stale. Keys with subscribers are refetched in the
// background; others are refetched by the next Query. Unknown keys are
// ignored.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	for _, key := range keys {
		e, ok := c.entries[key]
		if !ok {
			continue
		}
		c.gen++
		e.gen = c.gen
		e.stale = true
		c.publishLocked(Event{Type: EventInvalidated, Key: key})

		if len(c.subs[key]) > 0 && e.fetch != nil {
			c.scheduleRefetchLocked(key, e)
		}
	}
}

// Remove drops keys from the cache.
func (c *Cache) Remove(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		if _, ok := c.entries[key]; !ok {
			continue
		}
		delete(c.entries, key)
		c.publishLocked(Event{Type: EventRemoved, Key: key})
	}
}

// RemovePrefix drops every key that starts with prefix and returns how many
// were removed.
func (c *Cache) RemovePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key := range c.entries {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		delete(c.entries, key)
		c.publishLocked(Event{Type: EventRemoved, Key: key})
		n++
	}
	return n
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) entryLocked(key string) *entry {
	e, ok := c.entries[key]
	if !ok {
		c.gen++
		e = &entry{gen: c.gen, lastUsed: c.now()}
		c.entries[key] = e
	}
	return e
}

func (c *Cache) get(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}

	now := c.now()
	e := c.entryLocked(key)
	e.fetch = fetch
	e.values = context.WithoutCancel(ctx)
	e.lastUsed = now

	if e.hasValue && !e.stale && now.Sub(e.updatedAt) < c.staleTime {
		v := e.value
		c.mu.Unlock()
		c.metrics.RecordCacheFetch(ctx, KeyKind(key), telemetry.ResultHit)
		return v, nil
	}

	gen := e.gen
	c.mu.Unlock()

	c.metrics.RecordCacheFetch(ctx, KeyKind(key), telemetry.ResultMiss)
	return c.load(ctx, key, e, gen, fetch)
}

// load runs fetch for (key, gen) through singleflight. Callers waiting on the
// same generation share the result.
func (c *Cache) load(
	ctx context.Context,
	key string,
	e *entry,
	gen uint64,
	fetch func(context.Context) (any, error),
) (any, error) {
	ch := c.group.DoChan(fmt.Sprintf("%s#%d", key, gen), func() (any, error) {
		return c.fetchAndStore(ctx, key, e, gen, fetch)
	})

	select {
	case res := <-ch:
		if res.Shared {
			c.metrics.RecordCacheFetch(ctx, KeyKind(key), telemetry.ResultShared)
		}
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) fetchAndStore(
	ctx context.Context,
	key string,
	e *entry,
	gen uint64,
	fetch func(context.Context) (any, error),
) (any, error) {
	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.refetchTimeout)
	defer cancel()
	stop := context.AfterFunc(c.ctx, cancel)
	defer stop()

	v, err := fetch(fctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		if c.entries[key] == e {
			c.publishLocked(Event{Type: EventFetchFailed, Key: key, Err: err})
		}
		return nil, err
	}

	// Removed or replaced while fetching: hand the result to the caller but
	// do not resurrect the entry.
	if c.closed || c.entries[key] != e {
		return v, nil
	}

	if e.gen != gen && !e.stale {
		// A newer Set or fetch already made the entry fresh.
		return v, nil
	}

	e.value = v
	e.hasValue = true
	e.updatedAt = c.now()
	e.stale = e.gen != gen
	c.publishLocked(Event{Type: EventUpdated, Key: key})

	return v, nil
}

func (c *Cache) scheduleRefetchLocked(key string, e *entry) {
	if e.refetching {
		e.dirty = true
		return
	}
	e.refetching = true
	c.wg.Add(1)
	go c.refetchLoop(key, e)
}

func (c *Cache) refetchLoop(key string, e *entry) {
	defer c.wg.Done()

	for {
		c.mu.Lock()
		if c.closed || c.entries[key] != e {
			e.refetching = false
			c.mu.Unlock()
			return
		}
		e.dirty = false
		gen, fetch, values := e.gen, e.fetch, e.values
		c.mu.Unlock()

		c.metrics.RecordCacheFetch(values, KeyKind(key), telemetry.ResultRefetch)
		if _, err := c.load(values, key, e, gen, fetch); err != nil {
			c.logger.WarnContext(values, "background refetch failed",
				slog.String("operation", "querycache.Invalidate"),
				slog.String("key_kind", KeyKind(key)),
				slog.Any("error", err),
			)
		}

		c.mu.Lock()
		if !e.dirty || c.closed {
			e.refetching = false
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()
	}
}

func (c *Cache) janitor() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.collect()
		}
	}
}

// collect evicts entries nobody observes that have been idle for gcTime.
func (c *Cache) collect() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for key, e := range c.entries {
		if len(c.subs[key]) > 0 || e.refetching {
			continue
		}
		if now.Sub(e.lastUsed) < c.gcTime {
			continue
		}
		delete(c.entries, key)
		c.publishLocked(Event{Type: EventRemoved, Key: key})
		n++
	}
	if n > 0 {
		c.logger.Debug("query cache evicted idle entries", slog.Int("count", n))
	}
	return n
}
