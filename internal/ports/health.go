package ports

import "context"

// HealthChecker reports whether one dependency can serve traffic, such as
// the todo service client ("todo-api") or the query cache ("query-cache").
type HealthChecker interface {
	Name() string
	// HealthCheck returns nil when healthy. It must honor ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps every registered name to its result; nil is healthy.
	CheckAll(ctx context.Context) map[string]error
}
