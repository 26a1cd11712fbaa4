// Package http provides the inbound HTTP adapter: a backend-for-frontend
// JSON API over the todo service, with routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atsushi-h/go-todo/internal/adapters/http/handlers"
)

// NewRouter mounts the browser API. middlewares wrap every route in the
// order given; gate additionally wraps /todos and is normally
// middleware.SessionGate.
func NewRouter(
	session *handlers.SessionHandler,
	todos *handlers.TodoHandler,
	health *handlers.HealthHandler,
	gate func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Get("/", session.Landing)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	// Answer 401 instead of redirecting.
	r.Get("/me", session.Me)
	r.Post("/logout", session.Logout)
	r.Delete("/users/me", session.DeleteAccount)

	r.Group(func(r chi.Router) {
		r.Use(gate)

		r.Get("/todos", todos.ListTodos)
		r.Post("/todos", todos.CreateTodo)
		r.Get("/todos/{id}", todos.GetTodo)
		r.Patch("/todos/{id}", todos.UpdateTodo)
		r.Delete("/todos/{id}", todos.DeleteTodo)

		// Static segments win over {id} in chi's tree.
		r.Post("/todos/batch-complete", todos.BatchComplete)
		r.Post("/todos/batch-delete", todos.BatchDelete)
		r.Get("/todos/selection", todos.GetSelection)
		r.Delete("/todos/selection", todos.ClearSelection)
		r.Post("/todos/selection/{id}/toggle", todos.ToggleSelection)
	})

	return r
}
