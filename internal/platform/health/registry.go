// Package health runs the readiness checks of the web frontend's
// dependencies, the todo service client and the query cache.
package health

import (
	"context"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/atsushi-h/go-todo/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithTimeout bounds a whole CheckAll run.
func WithTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.timeout = d
	}
}

type entry struct {
	name    string
	checker ports.HealthChecker
}

// Registry holds named checkers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	timeout time.Duration
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under its Name, replacing any checker already
// registered under that name.
func (r *Registry) Register(checker ports.HealthChecker) {
	e := entry{name: checker.Name(), checker: checker}

	r.mu.Lock()
	defer r.mu.Unlock()
	if i := slices.IndexFunc(r.entries, func(x entry) bool { return x.name == e.name }); i >= 0 {
		r.entries[i] = e
		return
	}
	r.entries = append(r.entries, e)
}

// CheckAll runs every check concurrently. The map has one key per
// registered name; a nil value means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	entries := slices.Clone(r.entries)
	r.mu.RUnlock()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// Failures are results, so no goroutine returns an error to the group.
	errs := make([]error, len(entries))
	var g errgroup.Group
	for i, e := range entries {
		g.Go(func() error {
			errs[i] = e.checker.HealthCheck(ctx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(entries))
	for i, e := range entries {
		results[e.name] = errs[i]
	}
	return results
}
