package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/atsushi-h/go-todo/internal/platform/logging"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	return rec
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level      string
		wantDebug  bool
		wantInfo   bool
		wantWarn   bool
		wantSource bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true, wantWarn: true, wantSource: true},
		{level: "DEBUG", wantDebug: true, wantInfo: true, wantWarn: true, wantSource: true},
		{level: "info", wantInfo: true, wantWarn: true},
		{level: "warn", wantWarn: true},
		{level: "error"},
		{level: "verbose", wantInfo: true, wantWarn: true},
		{level: "", wantInfo: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := logging.New(tt.level, "json", &buf)
			ctx := context.Background()

			if got := logger.Enabled(ctx, slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if got := logger.Enabled(ctx, slog.LevelInfo); got != tt.wantInfo {
				t.Errorf("info enabled = %v, want %v", got, tt.wantInfo)
			}
			if got := logger.Enabled(ctx, slog.LevelWarn); got != tt.wantWarn {
				t.Errorf("warn enabled = %v, want %v", got, tt.wantWarn)
			}

			logger.Error("boom")
			_, hasSource := decodeLine(t, &buf)[slog.SourceKey]
			if hasSource != tt.wantSource {
				t.Errorf("source present = %v, want %v", hasSource, tt.wantSource)
			}
		})
	}
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format   string
		wantJSON bool
	}{
		{format: "json", wantJSON: true},
		{format: "text"},
		{format: "TEXT"},
		{format: "xml", wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("listed todos", slog.Int("count", 3))

			out := buf.String()
			isJSON := json.Valid(bytes.TrimSpace(buf.Bytes()))
			if isJSON != tt.wantJSON {
				t.Errorf("JSON output = %v, want %v: %s", isJSON, tt.wantJSON, out)
			}
			if !strings.Contains(out, "listed todos") {
				t.Errorf("output missing message: %s", out)
			}
		})
	}
}

func TestNew_Component(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf, logging.WithComponent("todo-web")).Info("ready")

	if got := decodeLine(t, &buf)["component"]; got != "todo-web" {
		t.Errorf("component = %v, want %q", got, "todo-web")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   []logging.Option
		attr   slog.Attr
		secret string
	}{
		{name: "cookie header", attr: slog.String("cookie", "go_todo_session=abc"), secret: "abc"},
		{name: "session field", attr: slog.String("session", "opaque-value"), secret: "opaque-value"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "secret prefix", attr: slog.String("secret_key", "k-123"), secret: "k-123"},
		{name: "bearer in value", attr: slog.String("detail", "sent Bearer tok.en-123"), secret: "tok.en-123"},
		{
			name:   "default cookie in value",
			attr:   slog.String("detail", "header was go_todo_session=s3cr3t; Path=/"),
			secret: "s3cr3t",
		},
		{
			name:   "configured cookie in value",
			opts:   []logging.Option{logging.WithSessionCookie("sid")},
			attr:   slog.String("detail", "Set-Cookie: sid=zzz999; HttpOnly"),
			secret: "zzz999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf, tt.opts...).Info("request", tt.attr)

			if strings.Contains(buf.String(), tt.secret) {
				t.Errorf("log leaked %q: %s", tt.secret, buf.String())
			}
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("updated todo",
		slog.String("operation", "UpdateTodo"),
		slog.Int64("todo_id", 42),
		slog.String("title", "Buy milk"),
	)

	rec := decodeLine(t, &buf)
	if rec["operation"] != "UpdateTodo" || rec["title"] != "Buy milk" {
		t.Errorf("ordinary fields altered: %v", rec)
	}
	if id, _ := rec["todo_id"].(float64); id != 42 {
		t.Errorf("todo_id = %v, want 42", rec["todo_id"])
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext(empty) is not slog.Default()")
	}

	first := logging.Discard()
	second := logging.Discard()
	ctx := logging.WithLogger(context.Background(), first)
	ctx = logging.WithLogger(ctx, second)
	if got := logging.FromContext(ctx); got != second {
		t.Error("FromContext did not return the most recent logger")
	}
}

func TestOrDiscard(t *testing.T) {
	t.Parallel()

	if logging.OrDiscard(nil) == nil {
		t.Fatal("OrDiscard(nil) = nil")
	}
	logger := logging.Discard()
	if got := logging.OrDiscard(logger); got != logger {
		t.Error("OrDiscard replaced a non-nil logger")
	}
}
