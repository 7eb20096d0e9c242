package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"bizcelona-backend/internal/security"
	"bizcelona-backend/internal/service"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionCookieName carries the session token between requests.
const SessionCookieName = "session"

// Middleware resolves the caller's session and enforces the two access
// policies: JSON endpoints answer 401, admin views redirect.
type Middleware struct {
	tokens security.TokenManager
	guard  service.AccessGuard
}

func NewMiddleware(tokens security.TokenManager, guard service.AccessGuard) *Middleware {
	return &Middleware{
		tokens: tokens,
		guard:  guard,
	}
}

// sessionFromRequest reads the session token from the cookie or the
// Authorization header and validates it. A nil result means no session.
func (m *Middleware) sessionFromRequest(r *http.Request) *security.SessionClaims {
	token := ""
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		token = cookie.Value
	}
	if token == "" {
		if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if token == "" {
		return nil
	}

	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return nil
	}
	return claims
}

// RequireUser guards JSON endpoints: any caller without a valid session
// receives 401 with the standard error envelope.
func (m *Middleware) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := m.sessionFromRequest(r)
		if claims == nil {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin guards admin views. Callers without a session are redirected
// to the login page carrying the original path; signed-in non-admins are
// redirected to the member dashboard before any application data is read.
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := m.sessionFromRequest(r)
		if claims == nil {
			target := "/login?redirectTo=" + url.QueryEscape(r.URL.Path)
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		isAdmin, err := m.guard.IsAdmin(r.Context(), claims.UserID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !isAdmin {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// sessionFromContext returns the claims stored by the guards.
func sessionFromContext(ctx context.Context) *security.SessionClaims {
	claims, _ := ctx.Value(sessionContextKey).(*security.SessionClaims)
	return claims
}
