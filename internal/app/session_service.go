package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/atsushi-h/go-todo/internal/app/selection"
	"github.com/atsushi-h/go-todo/internal/domain"
	"github.com/atsushi-h/go-todo/internal/domain/user"
	"github.com/atsushi-h/go-todo/internal/platform/logging"
	"github.com/atsushi-h/go-todo/internal/platform/querycache"
	"github.com/atsushi-h/go-todo/internal/platform/telemetry"
	"github.com/atsushi-h/go-todo/internal/ports"
)

// Compile-time check that SessionService implements ports.SessionService.
var _ ports.SessionService = (*SessionService)(nil)

// SessionService implements ports.SessionService. Ending the session, by
// logout or account deletion, drops everything cached under the session's
// scope and clears its selection.
type SessionService struct {
	api       ports.TodoAPI
	cache     *querycache.Cache
	selection *selection.Set
	opts      options
	logger    *slog.Logger
}

// NewSessionService creates a SessionService. Pass the same selection and
// scope as the session's Coordinator.
func NewSessionService(
	api ports.TodoAPI,
	cache *querycache.Cache,
	sel *selection.Set,
	logger *slog.Logger,
	opts ...Option,
) *SessionService {
	if sel == nil {
		sel = selection.New()
	}
	return &SessionService{
		api:       api,
		cache:     cache,
		selection: sel,
		opts:      buildOptions(opts),
		logger:    logging.OrDiscard(logger),
	}
}

// CurrentUser returns the session user through the cache. An unauthorized
// answer is not cached, so the next call asks again.
func (s *SessionService) CurrentUser(ctx context.Context) (*user.User, error) {
	u, err := querycache.Query(ctx, s.cache, s.opts.key(KeyMe), s.api.CurrentUser)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.logger.DebugContext(ctx, "no active session")
		} else if !errors.Is(err, context.Canceled) {
			logFailure(ctx, s.logger, "CurrentUser", err)
		}
		return nil, err
	}
	return u, nil
}

// Logout ends the session on the server and forgets it locally. A session
// the server already considers gone is forgotten too, and reported as
// success.
func (s *SessionService) Logout(ctx context.Context) error {
	const op = "Logout"

	err := s.api.Logout(ctx)
	if errors.Is(err, domain.ErrUnauthorized) {
		s.logger.DebugContext(ctx, "session already ended on the server")
		err = nil
	}
	if err := settle(ctx, s.logger, s.opts.metrics, op, err); err != nil {
		return err
	}

	s.forget(ctx)
	s.opts.metrics.RecordMutation(ctx, op, telemetry.ResultSuccess)
	s.logger.InfoContext(ctx, "logged out")
	return nil
}

// DeleteAccount deletes the account and forgets the session.
func (s *SessionService) DeleteAccount(ctx context.Context) error {
	const op = "DeleteAccount"

	err := s.api.DeleteAccount(ctx)
	if err := settle(ctx, s.logger, s.opts.metrics, op, err); err != nil {
		return err
	}

	s.forget(ctx)
	s.opts.metrics.RecordMutation(ctx, op, telemetry.ResultSuccess)
	s.logger.InfoContext(ctx, "account deleted")
	return nil
}

// LoginURL returns the URL a browser should open to log in.
func (s *SessionService) LoginURL() string {
	return s.api.LoginURL()
}

func (s *SessionService) forget(ctx context.Context) {
	s.cache.Remove(s.opts.key(KeyMe))
	n := s.cache.RemovePrefix(s.opts.scopePrefix())
	s.selection.Clear()
	s.logger.DebugContext(ctx, "dropped session cache", slog.Int("keys", n))
}
