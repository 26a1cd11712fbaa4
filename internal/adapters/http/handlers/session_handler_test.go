package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/atsushi-h/go-todo/internal/adapters/http/dto"
	"github.com/atsushi-h/go-todo/internal/adapters/http/handlers"
	"github.com/atsushi-h/go-todo/internal/domain"
	"github.com/atsushi-h/go-todo/internal/domain/user"
	"github.com/atsushi-h/go-todo/mocks"
)

const testLoginURL = "http://api.example.com/auth/google"

func newSessionHandler(t *testing.T) (*handlers.SessionHandler, *mocks.MockWorkspaceResolver, *mocks.MockSessionService) {
	t.Helper()
	svc := mocks.NewMockSessionService(t)
	resolver := mocks.NewMockWorkspaceResolver(t)
	resolver.EXPECT().Session(mock.Anything).Return(svc, nil).Maybe()
	return handlers.NewSessionHandler(resolver, testLoginURL, testCookieName), resolver, svc
}

// expiredCookie returns the Set-Cookie that clears the session, if any.
func expiredCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName && c.MaxAge < 0 {
			return c
		}
	}
	return nil
}

func TestLanding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cookie string
		want   bool
	}{
		{name: "anonymous", want: false},
		{name: "cookie present", cookie: "anything", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, _ := newSessionHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: testCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			h.Landing(rec, req)

			requireStatus(t, rec, http.StatusOK)
			resp := decodeJSON[dto.LandingResponse](t, rec)
			if resp.Authenticated != tt.want {
				t.Errorf("Authenticated = %v, want %v", resp.Authenticated, tt.want)
			}
			if resp.LoginURL != testLoginURL {
				t.Errorf("LoginURL = %q, want %q", resp.LoginURL, testLoginURL)
			}
		})
	}
}

func TestMe(t *testing.T) {
	t.Parallel()
	h, _, svc := newSessionHandler(t)

	svc.EXPECT().CurrentUser(mock.Anything).Return(&user.User{
		ID: 1, Email: "a@example.com", Name: "Ada", Provider: "google",
	}, nil)

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/me", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.UserResponse](t, rec); resp.DisplayName != "Ada" {
		t.Errorf("DisplayName = %q, want %q", resp.DisplayName, "Ada")
	}
}

func TestMe_NoSession(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockWorkspaceResolver(t)
	resolver.EXPECT().Session(mock.Anything).Return(nil, domain.ErrUnauthorized)
	h := handlers.NewSessionHandler(resolver, testLoginURL, testCookieName)

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/me", http.NoBody))

	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestLogout_ReleasesWorkspaceAndClearsCookie(t *testing.T) {
	t.Parallel()
	h, resolver, svc := newSessionHandler(t)

	svc.EXPECT().Logout(mock.Anything).Return(nil)
	resolver.EXPECT().Release(mock.Anything).Return()

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/logout", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.MessageResponse](t, rec); resp.Message != "Logged out" {
		t.Errorf("Message = %q, want %q", resp.Message, "Logged out")
	}
	if expiredCookie(rec) == nil {
		t.Error("session cookie was not expired")
	}
}

func TestLogout_FailureKeepsSession(t *testing.T) {
	t.Parallel()
	h, _, svc := newSessionHandler(t)

	svc.EXPECT().Logout(mock.Anything).Return(domain.ErrTransport)

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/logout", http.NoBody))

	requireStatus(t, rec, http.StatusBadGateway)
	if expiredCookie(rec) != nil {
		t.Error("session cookie expired although logout failed")
	}
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()
	h, resolver, svc := newSessionHandler(t)

	svc.EXPECT().DeleteAccount(mock.Anything).Return(nil)
	resolver.EXPECT().Release(mock.Anything).Return()

	rec := httptest.NewRecorder()
	h.DeleteAccount(rec, httptest.NewRequest(http.MethodDelete, "/users/me", http.NoBody))

	requireStatus(t, rec, http.StatusNoContent)
	if expiredCookie(rec) == nil {
		t.Error("session cookie was not expired")
	}
}
