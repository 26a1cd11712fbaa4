// Command todo is the terminal client for the todo service. With no
// subcommand it opens the full-screen list; see `todo help` for the rest.
// The session cookie is stored next to the client's log file in the user's
// config directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/atsushi-h/go-todo/internal/adapters/cli"
	"github.com/atsushi-h/go-todo/internal/adapters/clients/acl"
	"github.com/atsushi-h/go-todo/internal/adapters/credentials"
	"github.com/atsushi-h/go-todo/internal/adapters/tui"
	"github.com/atsushi-h/go-todo/internal/app"
	"github.com/atsushi-h/go-todo/internal/app/selection"
	"github.com/atsushi-h/go-todo/internal/platform/config"
	"github.com/atsushi-h/go-todo/internal/platform/httpclient"
	"github.com/atsushi-h/go-todo/internal/platform/logging"
	"github.com/atsushi-h/go-todo/internal/platform/querycache"
)

const logFileName = "todo.log"

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	profile := fs.String("profile", envOr("APP_PROFILE", "local"), "config profile")
	configDir := fs.String("config", "configs", "directory holding base.yaml and profile files")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return cli.ExitUsage
	}

	cfg, err := config.Load(*profile, config.WithConfigDir(*configDir), config.WithOptionalFiles())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading config: %v\n", err)
		return cli.ExitFailure
	}

	creds, err := credentials.NewStore(cfg.Session.CredentialsFile, cfg.Session.CookieName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return cli.ExitFailure
	}

	// The terminal belongs to the UI; logs go to a file.
	logOut, closeLog := openLog(filepath.Join(filepath.Dir(creds.Path()), logFileName))
	defer closeLog()
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut,
		logging.WithSessionCookie(cfg.Session.CookieName),
		logging.WithComponent("todo"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	client := httpclient.New(&cfg.Client, "todo-api", nil, logger,
		httpclient.WithCookieName(cfg.Session.CookieName),
	)
	api := acl.NewTodoAPIClient(client, cfg.Session.LoginPath, logger)

	cache := querycache.New(&cfg.Cache, logger)
	defer func() {
		if err := cache.Close(); err != nil {
			logger.Error("cache shutdown error", slog.Any("error", err))
		}
	}()

	sel := selection.New()
	todos := app.NewCoordinator(api, cache, sel, logger)
	session := app.NewSessionService(api, cache, sel, logger)

	runner := cli.New(todos, session, creds,
		cli.WithTUI(func(ctx context.Context) error {
			return tui.Run(ctx, todos, session)
		}),
	)

	code := runner.Run(ctx, fs.Args())
	logger.Debug("exit", slog.Int("code", code))
	return code
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openLog appends to path, discarding logs when the file cannot be opened.
func openLog(path string) (io.Writer, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}
