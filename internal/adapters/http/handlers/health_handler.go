package handlers

import (
	"net/http"

	"github.com/atsushi-h/go-todo/internal/adapters/http/dto"
	"github.com/atsushi-h/go-todo/internal/ports"
)

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler reports on the checkers in registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Readiness handles GET /health/ready: 503 while the todo service breaker
// is open or the query cache has been closed.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	checks := h.registry.CheckAll(r.Context())

	resp := dto.HealthResponse{Status: "ready", Checks: make(map[string]string, len(checks))}
	for name, err := range checks {
		resp.Checks[name] = "ok"
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "not_ready"
		}
	}

	status := http.StatusOK
	if resp.Status != "ready" {
		status = http.StatusServiceUnavailable
	}
	respond(w, r, status, resp)
}
