package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/atsushi-h/go-todo/internal/platform/config"
	"github.com/atsushi-h/go-todo/internal/platform/logging"
)

const (
	// DefaultDrainTimeout bounds how long Serve waits for in-flight
	// requests once its context is canceled.
	DefaultDrainTimeout = 15 * time.Second

	readHeaderTimeout = 5 * time.Second
)

// Server is the web frontend's HTTP listener.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
	drain  time.Duration

	mu sync.Mutex
	ln net.Listener
}

// NewServer builds a server for handler on the configured address. Nothing
// is bound until Listen or Serve.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		logger: logging.OrDiscard(logger),
		drain:  DefaultDrainTimeout,
	}
}

// Listen binds the address so a taken port fails before anything else
// starts. It is a no-op once bound.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	s.ln = ln
	return nil
}

// Serve handles requests until ctx is canceled, then stops accepting and
// waits up to the drain timeout for in-flight requests. A clean stop
// returns nil.
func (s *Server) Serve(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "serving", slog.String("addr", s.Addr()))

	served := make(chan error, 1)
	go func() {
		served <- s.srv.Serve(s.ln)
	}()

	select {
	case err := <-served:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("draining requests", slog.Duration("timeout", s.drain))
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.drain)
	defer cancel()

	shutdownErr := s.srv.Shutdown(drainCtx)
	if err := <-served; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	if shutdownErr != nil {
		return fmt.Errorf("draining: %w", shutdownErr)
	}
	return nil
}

// Addr is the bound address once listening and the configured one before.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}
