// Package workspace maps browser sessions to their own Coordinator and
// SessionService. All workspaces share one query cache; each gets a key scope
// derived from a SHA-256 fingerprint of its session cookie, so the raw
// cookie never appears in keys or logs.
package workspace

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/atsushi-h/go-todo/internal/app"
	"github.com/atsushi-h/go-todo/internal/app/selection"
	"github.com/atsushi-h/go-todo/internal/domain"
	"github.com/atsushi-h/go-todo/internal/platform/httpclient"
	"github.com/atsushi-h/go-todo/internal/platform/querycache"
	"github.com/atsushi-h/go-todo/internal/platform/telemetry"
	"github.com/atsushi-h/go-todo/internal/ports"
)

// Compile-time check that Registry implements ports.WorkspaceResolver.
var _ ports.WorkspaceResolver = (*Registry)(nil)

const minSweepInterval = time.Second

// Option configures a Registry.
type Option func(*Registry)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithMetrics passes m to every workspace's services.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithSweepInterval sets how often idle workspaces are looked for. Zero
// disables the sweeper.
func WithSweepInterval(d time.Duration) Option {
	return func(r *Registry) {
		r.sweepInterval = d
	}
}

type workspace struct {
	scope    string
	todos    *app.Coordinator
	session  *app.SessionService
	lastUsed time.Time
}

var errRegistryClosed = fmt.Errorf("workspace registry closed: %w", domain.ErrUnavailable)

// Registry creates workspaces on first use and evicts them after
// idleTimeout without a request.
type Registry struct {
	api         ports.TodoAPI
	cache       *querycache.Cache
	idleTimeout time.Duration

	sweepInterval time.Duration
	now           func() time.Time
	metrics       *telemetry.Metrics
	logger        *slog.Logger

	mu     sync.Mutex
	spaces map[string]*workspace
	closed bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Registry and starts its sweeper.
func New(
	api ports.TodoAPI,
	cache *querycache.Cache,
	idleTimeout time.Duration,
	logger *slog.Logger,
	opts ...Option,
) *Registry {
	r := &Registry{
		api:           api,
		cache:         cache,
		idleTimeout:   idleTimeout,
		sweepInterval: max(idleTimeout/2, minSweepInterval),
		now:           time.Now,
		logger:        logger,
		spaces:        make(map[string]*workspace),
	}
	for _, opt := range opts {
		opt(r)
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	if r.sweepInterval > 0 && r.idleTimeout > 0 {
		r.wg.Add(1)
		go r.sweeper(ctx)
	}
	return r
}

// Todos returns the todo service of the session carried by ctx.
func (r *Registry) Todos(ctx context.Context) (ports.TodoService, error) {
	ws, err := r.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return ws.todos, nil
}

// Session returns the session service of the session carried by ctx.
func (r *Registry) Session(ctx context.Context) (ports.SessionService, error) {
	ws, err := r.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return ws.session, nil
}

// Release drops the workspace of the session carried by ctx along with its
// cached data. Unknown sessions are ignored.
func (r *Registry) Release(ctx context.Context) {
	cookie, ok := httpclient.SessionCookieFromContext(ctx)
	if !ok {
		return
	}
	fp := Fingerprint(cookie)

	r.mu.Lock()
	ws, ok := r.spaces[fp]
	if ok {
		delete(r.spaces, fp)
	}
	r.mu.Unlock()

	if ok {
		r.drop(ws)
		r.logger.DebugContext(ctx, "workspace released", slog.String("session", fp))
	}
}

// Len returns the number of live workspaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.spaces)
}

// Close stops the sweeper and drops every workspace.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	spaces := r.spaces
	r.spaces = make(map[string]*workspace)
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()

	for _, ws := range spaces {
		r.drop(ws)
	}
	return nil
}

// Fingerprint returns a stable, non-reversible identifier for a session
// cookie value.
func Fingerprint(cookie string) string {
	sum := sha256.Sum256([]byte(cookie))
	return hex.EncodeToString(sum[:16])
}

func (r *Registry) resolve(ctx context.Context) (*workspace, error) {
	cookie, ok := httpclient.SessionCookieFromContext(ctx)
	if !ok || cookie == "" {
		return nil, domain.ErrUnauthorized
	}
	fp := Fingerprint(cookie)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, errRegistryClosed
	}
	if ws, ok := r.spaces[fp]; ok {
		ws.lastUsed = r.now()
		return ws, nil
	}

	scope := "ws-" + fp
	sel := selection.New()
	opts := []app.Option{app.WithScope(scope), app.WithMetrics(r.metrics)}
	logger := r.logger.With(slog.String("session", fp))

	ws := &workspace{
		scope:    scope,
		todos:    app.NewCoordinator(r.api, r.cache, sel, logger, opts...),
		session:  app.NewSessionService(r.api, r.cache, sel, logger, opts...),
		lastUsed: r.now(),
	}
	r.spaces[fp] = ws
	logger.DebugContext(ctx, "workspace created")
	return ws, nil
}

func (r *Registry) drop(ws *workspace) {
	r.cache.RemovePrefix(ws.scope + "/")
}

func (r *Registry) sweeper(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.evictIdle()
		}
	}
}

// evictIdle drops workspaces unused for idleTimeout and returns how many.
func (r *Registry) evictIdle() int {
	now := r.now()

	r.mu.Lock()
	var idle []*workspace
	for fp, ws := range r.spaces {
		if now.Sub(ws.lastUsed) >= r.idleTimeout {
			delete(r.spaces, fp)
			idle = append(idle, ws)
		}
	}
	r.mu.Unlock()

	for _, ws := range idle {
		r.drop(ws)
	}
	if len(idle) > 0 {
		r.logger.Info("evicted idle workspaces", slog.Int("count", len(idle)))
	}
	return len(idle)
}
