package handlers

import (
	"net/http"

	"github.com/atsushi-h/go-todo/internal/adapters/http/dto"
	"github.com/atsushi-h/go-todo/internal/ports"
)

// SessionHandler serves the landing page data and the session endpoints.
type SessionHandler struct {
	workspaces ports.WorkspaceResolver
	loginURL   string
	cookieName string
}

// NewSessionHandler creates a SessionHandler. loginURL is where a browser
// starts the OAuth flow; cookieName is the session cookie checked by the
// landing endpoint and cleared on logout.
func NewSessionHandler(workspaces ports.WorkspaceResolver, loginURL, cookieName string) *SessionHandler {
	return &SessionHandler{
		workspaces: workspaces,
		loginURL:   loginURL,
		cookieName: cookieName,
	}
}

// Landing handles GET /. Authenticated only reports whether the session
// cookie is present; it is not validated.
func (h *SessionHandler) Landing(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(h.cookieName)
	respond(w, r, http.StatusOK, dto.LandingResponse{
		LoginURL:      h.loginURL,
		Authenticated: err == nil && c.Value != "",
	})
}

// Me handles GET /me.
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	svc, err := h.workspaces.Session(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	u, err := svc.CurrentUser(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToUserResponse(u))
}

// Logout handles POST /logout. On success the workspace is released and
// the browser's cookie is expired.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	svc, err := h.workspaces.Session(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := svc.Logout(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.endSession(w, r)
	respond(w, r, http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// DeleteAccount handles DELETE /users/me.
func (h *SessionHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	svc, err := h.workspaces.Session(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := svc.DeleteAccount(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.endSession(w, r)
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) endSession(w http.ResponseWriter, r *http.Request) {
	h.workspaces.Release(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
