// Package cli routes terminal subcommands to the todo and session services.
//
// Every subcommand except help and login needs a stored session cookie.
// Without one the command prints where to sign in and exits with status 2,
// mirroring the web frontend's presence-only session gate.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atsushi-h/go-todo/internal/adapters/credentials"
	"github.com/atsushi-h/go-todo/internal/domain"
	"github.com/atsushi-h/go-todo/internal/domain/todo"
	"github.com/atsushi-h/go-todo/internal/platform/httpclient"
	"github.com/atsushi-h/go-todo/internal/ports"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// CredentialStore persists the session cookie between runs.
type CredentialStore interface {
	Load() (*credentials.Credentials, error)
	Save(cookie string) error
	Clear() error
	Path() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithTUI sets the function run by the tui subcommand, which is also the
// default when no subcommand is given.
func WithTUI(run func(ctx context.Context) error) Option {
	return func(r *Runner) {
		r.tui = run
	}
}

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(r *Runner) {
		r.in = in
		r.out = out
		r.errOut = errOut
	}
}

// Runner dispatches one subcommand per Run call.
type Runner struct {
	todos   ports.TodoService
	session ports.SessionService
	creds   CredentialStore
	tui     func(ctx context.Context) error

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// New creates a Runner.
func New(todos ports.TodoService, session ports.SessionService, creds CredentialStore, opts ...Option) *Runner {
	r := &Runner{
		todos:   todos,
		session: session,
		creds:   creds,
		in:      os.Stdin,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes args and returns the process exit code.
func (r *Runner) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		args = []string{"tui"}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		r.PrintHelp()
		return ExitOK
	case "login":
		return r.doLogin(ctx, a)
	}

	protected := map[string]func(context.Context, []string) int{
		"logout":         r.doLogout,
		"whoami":         r.doWhoAmI,
		"delete-account": r.doDeleteAccount,
		"ls":             r.doList,
		"add":            r.doAdd,
		"done":           r.doDone,
		"rm":             r.doRemove,
		"tui":            r.doTUI,
	}
	run, found := protected[cmd]
	if !found {
		fail(r.errOut, "unknown subcommand: "+cmd)
		fmt.Fprintln(r.errOut)
		r.PrintHelp()
		return ExitUsage
	}

	ctx, code := r.authenticated(ctx)
	if code != ExitOK {
		return code
	}
	return run(ctx, a)
}

// PrintHelp writes usage to stdout.
func (r *Runner) PrintHelp() {
	fmt.Fprint(r.out, `todo - terminal client for the todo service

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  tui                     Full-screen list (default)
  login [cookie]          Sign in and store the session cookie
  logout                  End the session and forget the cookie
  whoami                  Show the signed-in user
  delete-account [-yes]   Delete the account and all its todos
  ls                      List todos
  add <title...> [-d desc]
                          Add a todo
  done <id>               Mark a todo completed
  rm <id>                 Delete a todo

Examples:
  todo login
  todo add Buy milk -d "2 litres"
  todo done 42
`)
}

// authenticated adds the stored session cookie to ctx. Without one it
// prints where to sign in.
func (r *Runner) authenticated(ctx context.Context) (context.Context, int) {
	c, err := r.creds.Load()
	if err != nil {
		fail(r.errOut, "credentials: "+err.Error())
		return ctx, ExitFailure
	}
	if c == nil {
		fail(r.errOut, "not logged in")
		hint(r.errOut, "Sign in at "+r.session.LoginURL()+" and run `todo login`.")
		return ctx, ExitUsage
	}
	return httpclient.WithSessionCookie(ctx, c.Cookie), ExitOK
}

func (r *Runner) doLogin(ctx context.Context, args []string) int {
	if len(args) > 1 {
		fail(r.errOut, "usage: todo login [cookie]")
		return ExitUsage
	}

	var cookie string
	if len(args) == 1 {
		cookie = args[0]
	} else {
		fmt.Fprintln(r.out, "Open this URL in your browser and sign in:")
		fmt.Fprintln(r.out, "  "+r.session.LoginURL())
		fmt.Fprint(r.out, "Then paste the session cookie value: ")

		line, err := bufio.NewReader(r.in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fail(r.errOut, "read cookie: "+err.Error())
			return ExitFailure
		}
		cookie = line
	}

	if err := r.creds.Save(cookie); err != nil {
		if errors.Is(err, credentials.ErrEmptyCookie) {
			fail(r.errOut, "login: no cookie given")
			return ExitUsage
		}
		fail(r.errOut, "save credentials: "+err.Error())
		return ExitFailure
	}

	ctx, code := r.authenticated(ctx)
	if code != ExitOK {
		return code
	}
	u, err := r.session.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			_ = r.creds.Clear()
			fail(r.errOut, "the todo service rejected that cookie")
			return ExitFailure
		}
		// Saved; the server can be checked later with whoami.
		r.reportError(err)
		return ExitFailure
	}

	ok(r.out, "logged in as "+u.DisplayName())
	return ExitOK
}

func (r *Runner) doLogout(ctx context.Context, _ []string) int {
	code := ExitOK
	if err := r.session.Logout(ctx); err != nil {
		r.reportError(err)
		code = ExitFailure
	}

	if c, _ := r.creds.Load(); c != nil && c.Source == credentials.SourceEnv {
		hint(r.out, "The cookie comes from "+credentials.EnvSession+"; unset it to stay logged out.")
		return code
	}
	if err := r.creds.Clear(); err != nil {
		fail(r.errOut, "clear credentials: "+err.Error())
		return ExitFailure
	}
	if code == ExitOK {
		ok(r.out, "logged out")
	}
	return code
}

func (r *Runner) doWhoAmI(ctx context.Context, _ []string) int {
	u, err := r.session.CurrentUser(ctx)
	if err != nil {
		r.reportError(err)
		return ExitFailure
	}

	lines := []string{
		titleStyle.Render(u.DisplayName()),
		"email:    " + u.Email,
	}
	if u.Provider != "" {
		lines = append(lines, "provider: "+u.Provider)
	}
	panel(r.out, lines)
	return ExitOK
}

func (r *Runner) doDeleteAccount(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("delete-account", flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if !*yes {
		fmt.Fprint(r.out, "This deletes your account and every todo. Type \"delete\" to confirm: ")
		line, _ := bufio.NewReader(r.in).ReadString('\n')
		if strings.TrimSpace(line) != "delete" {
			hint(r.out, "Aborted.")
			return ExitFailure
		}
	}

	if err := r.session.DeleteAccount(ctx); err != nil {
		r.reportError(err)
		return ExitFailure
	}
	if err := r.creds.Clear(); err != nil {
		fail(r.errOut, "clear credentials: "+err.Error())
		return ExitFailure
	}
	ok(r.out, "account deleted")
	return ExitOK
}

func (r *Runner) doList(ctx context.Context, _ []string) int {
	todos, err := r.todos.ListTodos(ctx)
	if err != nil {
		r.reportError(err)
		return ExitFailure
	}
	if len(todos) == 0 {
		hint(r.out, "No todos yet. Add one with `todo add <title>`.")
		return ExitOK
	}

	done, pending := todo.Stats(todos)
	lines := []string{
		fmt.Sprintf("%s   %s %d  %s %d   %s",
			titleStyle.Render("Todos"),
			successStyle.Render("✔"), done,
			pendingStyle.Render("•"), pending,
			progressBar(done, len(todos), barWidth),
		),
	}
	for _, t := range todos {
		lines = append(lines, formatTodo(t))
	}
	panel(r.out, lines)
	return ExitOK
}

func (r *Runner) doAdd(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	desc := fs.String("d", "", "description")

	words, err := parseInterleaved(fs, args)
	if err != nil {
		return ExitUsage
	}
	if len(words) == 0 {
		fail(r.errOut, "usage: todo add <title...> [-d description]")
		return ExitUsage
	}

	t, err := r.todos.CreateTodo(ctx, strings.Join(words, " "), *desc)
	if err != nil {
		r.reportError(err)
		if errors.Is(err, domain.ErrValidation) {
			return ExitUsage
		}
		return ExitFailure
	}
	ok(r.out, fmt.Sprintf("added #%d %s", t.ID, t.Title))
	return ExitOK
}

func (r *Runner) doDone(ctx context.Context, args []string) int {
	id, code := r.parseID("done", args)
	if code != ExitOK {
		return code
	}

	t, err := r.todos.UpdateTodo(ctx, id, todo.CompletedPatch(true))
	if err != nil {
		r.reportError(err)
		return ExitFailure
	}
	ok(r.out, fmt.Sprintf("completed #%d %s", t.ID, t.Title))
	return ExitOK
}

func (r *Runner) doRemove(ctx context.Context, args []string) int {
	id, code := r.parseID("rm", args)
	if code != ExitOK {
		return code
	}

	if err := r.todos.DeleteTodo(ctx, id); err != nil {
		r.reportError(err)
		return ExitFailure
	}
	ok(r.out, fmt.Sprintf("removed #%d", id))
	return ExitOK
}

func (r *Runner) doTUI(ctx context.Context, _ []string) int {
	if r.tui == nil {
		fail(r.errOut, "interactive mode is not available")
		return ExitFailure
	}
	if err := r.tui(ctx); err != nil {
		fail(r.errOut, "tui: "+err.Error())
		return ExitFailure
	}
	return ExitOK
}

func (r *Runner) parseID(cmd string, args []string) (int64, int) {
	if len(args) != 1 {
		fail(r.errOut, "usage: todo "+cmd+" <id>")
		return 0, ExitUsage
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 64)
	if err != nil || id <= 0 {
		fail(r.errOut, cmd+": not a todo id: "+args[0])
		hint(r.errOut, "Hint: run `todo ls` to see ids")
		return 0, ExitUsage
	}
	return id, ExitOK
}

// reportError prints the user-facing message for err, plus a sign-in hint
// for auth failures.
func (r *Runner) reportError(err error) {
	msg, _ := domain.UserMessage(err)
	fail(r.errOut, msg)
	if domain.KindOf(err) == domain.KindAuth {
		hint(r.errOut, "Sign in at "+r.session.LoginURL()+" and run `todo login`.")
	}
}

func formatTodo(t todo.Todo) string {
	box := mutedStyle.Render(boxUnchecked)
	title := t.Title
	if t.Completed {
		box = successStyle.Render(boxChecked)
		title = doneStyle.Render(title)
	}
	line := fmt.Sprintf("%s %s %s", box, mutedStyle.Render(fmt.Sprintf("#%-4d", t.ID)), title)
	if t.Description != "" {
		line += "  " + mutedStyle.Render(t.Description)
	}
	return line
}

// parseInterleaved parses flags that may appear between positional
// arguments, as in `todo add Buy milk -d "2 litres"`.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}
