package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// problems collects validation failures so Validate can report all of them
// at once.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p problems) err() error {
	return errors.Join(p...)
}

// Validate reports every invalid setting, joined into one error.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Client.validate(&p)
	c.Session.validate(&p)
	c.Cache.validate(&p)
	c.Telemetry.validate(&p)
	return p.err()
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
}

func (l *LogConfig) validate(p *problems) {
	p.check(slices.Contains([]string{"debug", "info", "warn", "error"}, l.Level),
		"log.level must be one of debug, info, warn or error; got %q", l.Level)
	p.check(l.Format == "json" || l.Format == "text",
		"log.format must be json or text; got %q", l.Format)
}

func (cl *ClientConfig) validate(p *problems) {
	u, err := url.Parse(cl.BaseURL)
	p.check(err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "",
		"client.base_url must be an absolute http(s) URL, got %q", cl.BaseURL)
	p.check(cl.Timeout > 0, "client.timeout must be positive")

	r := cl.Retry
	p.check(r.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", r.MaxAttempts)
	p.check(r.MutationMaxAttempts >= 1,
		"client.retry.mutation_max_attempts must be >= 1, got %d", r.MutationMaxAttempts)
	p.check(r.Multiplier >= 1, "client.retry.multiplier must be >= 1, got %g", r.Multiplier)
	p.check(r.MaxInterval >= r.InitialInterval,
		"client.retry.max_interval (%s) is below initial_interval (%s)", r.MaxInterval, r.InitialInterval)

	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.check(rl.RequestsPerSecond >= 0, "client.rate_limit.requests_per_second must not be negative")
	p.check(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when limiting, got %d", rl.BurstSize)
}

func (s *SessionConfig) validate(p *problems) {
	p.check(validCookieName(s.CookieName), "session.cookie_name %q is not a valid cookie name", s.CookieName)
	p.check(strings.HasPrefix(s.LoginPath, "/"), "session.login_path must start with /, got %q", s.LoginPath)
	p.check(s.IdleTimeout > 0, "session.idle_timeout must be positive")
}

func (c *CacheConfig) validate(p *problems) {
	p.check(c.StaleTime >= 0, "cache.stale_time must not be negative")
	p.check(c.GCTime > 0, "cache.gc_time must be positive")
	p.check(c.RefetchTimeout > 0, "cache.refetch_timeout must be positive")
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.check(t.Exporter == "stdout" || t.Exporter == "otlp",
		"telemetry.exporter must be stdout or otlp; got %q", t.Exporter)
	p.check(t.Exporter != "otlp" || t.Endpoint != "",
		"telemetry.endpoint must be set when exporter is otlp")
}

// validCookieName reports whether name is a non-empty RFC 6265 token.
func validCookieName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r <= ' ' || r >= 0x7f || strings.ContainsRune(`()<>@,;:\"/[]?={}`, r) {
			return false
		}
	}
	return true
}
