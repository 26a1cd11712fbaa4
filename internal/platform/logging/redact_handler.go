package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"

	"github.com/atsushi-h/go-todo/internal/platform/config"
)

// secretFields are attribute keys whose values are always replaced. The
// header names match what the HTTP middleware logs.
var secretFields = []string{
	"authorization",
	"cookie",
	"set-cookie",
	"x-api-key",
	"password",
	"secret",
	"token",
	"session",
	"session_cookie",
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// Three dot-separated segments of ten or more characters, so version
	// strings are left alone.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
)

// cookiePattern matches "name=value" as it appears in Cookie and
// Set-Cookie values or in a pasted credential.
func cookiePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name) + `\s*=\s*[^;\s]+`)
}

// redactor returns a masq ReplaceAttr covering secretFields, bearer tokens,
// JWTs and the session cookie under the default and the configured name.
func redactor(cookieName string) func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(secretFields)+5)
	for _, f := range secretFields {
		opts = append(opts, masq.WithFieldName(f))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(cookiePattern(config.DefaultCookieName)),
	)
	if cookieName != "" && cookieName != config.DefaultCookieName {
		opts = append(opts, masq.WithRegex(cookiePattern(cookieName)))
	}
	return masq.New(opts...)
}
