package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts         = 4
	defaultRetryMutationMaxAttempts = 2
	defaultRetryMultiplier          = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 20.0
	defaultRateLimitBurst = 10

	// DefaultCookieName is the session cookie issued by the todo service.
	DefaultCookieName = "go_todo_session"
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "35s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.mutation_max_attempts":     defaultRetryMutationMaxAttempts,
		"client.retry.initial_interval":          "1s",
		"client.retry.max_interval":              "5s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"session.cookie_name":      DefaultCookieName,
		"session.login_path":       "/auth/google",
		"session.credentials_file": "",
		"session.idle_timeout":     "30m",

		"cache.stale_time":      "5m",
		"cache.gc_time":         "10m",
		"cache.refetch_timeout": "30s",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "go-todo",
	}
}
