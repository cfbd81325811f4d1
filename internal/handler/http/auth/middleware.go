// Package auth provides session-based authentication endpoints and middleware.
// Logging in sets a signed, HTTP-only session cookie; the middleware verifies
// it on protected routes.
package auth

import (
	"context"
	"errors"
	"net/http"

	"nashra/internal/handler/http/respond"
	authsvc "nashra/internal/service/auth"
)

type ctxKey string

const ctxUserID ctxKey = "user_id"

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "session"

// UserIDFromContext returns the authenticated user's ID, or an empty string
// when the request was not authenticated.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxUserID).(string); ok {
		return id
	}
	return ""
}

// RequireAuth returns middleware that rejects requests without a valid
// session cookie. On success the user ID from the session is stored in the
// request context.
func RequireAuth(sessions *authsvc.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, errors.New("authentication required"))
				return
			}

			userID, err := sessions.Parse(cookie.Value)
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, errors.New("invalid session"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionCookie builds the session cookie shared by login and logout.
// An empty token with negative max age clears the cookie.
func sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
