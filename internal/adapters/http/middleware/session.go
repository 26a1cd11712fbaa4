package middleware

import (
	"net/http"

	"github.com/atsushi-h/go-todo/internal/platform/httpclient"
)

// sessionCookie returns the non-empty value of the named cookie.
func sessionCookie(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// ForwardSession returns middleware that copies the session cookie into the
// request context, where httpclient picks it up for calls to the todo
// service and the workspace registry uses it to find the session's state.
// The value is opaque and never validated here.
func ForwardSession(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if v, ok := sessionCookie(r, cookieName); ok {
				r = r.WithContext(httpclient.WithSessionCookie(r.Context(), v))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionGate returns middleware that redirects requests without the
// session cookie to redirectTo with 307 Temporary Redirect. It checks
// presence only: an expired or forged cookie passes and is rejected by the
// todo service.
func SessionGate(cookieName, redirectTo string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessionCookie(r, cookieName); !ok {
				http.Redirect(w, r, redirectTo, http.StatusTemporaryRedirect)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
