// Command todo-web is the browser backend for the todo service. It serves a
// JSON API, forwards each browser's session cookie to the todo service and
// keeps one cached workspace per session. The object graph is built with
// samber/do; SIGINT or SIGTERM drains in-flight requests before exit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/atsushi-h/go-todo/internal/adapters/http"
	"github.com/atsushi-h/go-todo/internal/adapters/http/handlers"
	"github.com/atsushi-h/go-todo/internal/adapters/http/middleware"

	"github.com/atsushi-h/go-todo/internal/adapters/clients/acl"
	"github.com/atsushi-h/go-todo/internal/app/workspace"
	"github.com/atsushi-h/go-todo/internal/platform/config"
	"github.com/atsushi-h/go-todo/internal/platform/health"
	"github.com/atsushi-h/go-todo/internal/platform/httpclient"
	"github.com/atsushi-h/go-todo/internal/platform/logging"
	"github.com/atsushi-h/go-todo/internal/platform/querycache"
	"github.com/atsushi-h/go-todo/internal/platform/telemetry"
	"github.com/atsushi-h/go-todo/internal/ports"
)

const flushTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := flag.String("profile", os.Getenv("APP_PROFILE"), "config profile (local, prod)")
	configDir := flag.String("config", "configs", "directory holding base.yaml and profile files")
	flag.Parse()
	if *profile == "" {
		return errors.New("no profile: set APP_PROFILE or pass -profile")
	}

	cfg, err := config.Load(*profile, config.WithConfigDir(*configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		logging.WithSessionCookie(cfg.Session.CookieName),
		logging.WithComponent("todo-web"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry flush failed", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, otel.Metrics)
	provide(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring: %w", err)
	}
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.TodoAPIClient](injector))
	registry.Register(do.MustInvoke[*querycache.Cache](injector))

	serveErr := server.Serve(ctx)
	if serveErr == nil {
		logger.Info("stopped", slog.String("cause", context.Cause(ctx).Error()))
	}

	// Workspaces hold cache subscriptions, so they go before the cache.
	if err := do.MustInvoke[*workspace.Registry](injector).Close(); err != nil {
		logger.Error("closing workspaces", slog.Any("error", err))
	}
	if err := do.MustInvoke[*querycache.Cache](injector).Close(); err != nil {
		logger.Error("closing cache", slog.Any("error", err))
	}
	return serveErr
}

// provide registers every component in the injector. Metrics may be nil.
func provide(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	metrics := func(i do.Injector) *telemetry.Metrics {
		return do.MustInvoke[*telemetry.Metrics](i)
	}

	do.Provide(injector, func(i do.Injector) (*acl.TodoAPIClient, error) {
		client := httpclient.New(&cfg.Client, "todo-api", metrics(i), logger,
			httpclient.WithCookieName(cfg.Session.CookieName),
		)
		return acl.NewTodoAPIClient(client, cfg.Session.LoginPath, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (*querycache.Cache, error) {
		return querycache.New(&cfg.Cache, logger, querycache.WithMetrics(metrics(i))), nil
	})
	do.Provide(injector, func(i do.Injector) (*workspace.Registry, error) {
		return workspace.New(
			do.MustInvoke[*acl.TodoAPIClient](i),
			do.MustInvoke[*querycache.Cache](i),
			cfg.Session.IdleTimeout, logger,
			workspace.WithMetrics(metrics(i)),
		), nil
	})
	do.Provide(injector, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		workspaces := do.MustInvoke[*workspace.Registry](i)
		loginURL := do.MustInvoke[*acl.TodoAPIClient](i).LoginURL()

		return adapthttp.NewRouter(
			handlers.NewSessionHandler(workspaces, loginURL, cfg.Session.CookieName),
			handlers.NewTodoHandler(workspaces),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.SessionGate(cfg.Session.CookieName, "/"),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics(i)),
			middleware.Logging(logger),
			middleware.ForwardSession(cfg.Session.CookieName),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
