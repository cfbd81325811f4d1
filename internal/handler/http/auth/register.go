package auth

import (
	"log/slog"
	"net/http"

	authsvc "nashra/internal/service/auth"
	userUC "nashra/internal/usecase/user"
)

// Register registers all auth-related HTTP handlers with the given mux.
// The loginLimit middleware throttles brute-force attempts against login.
func Register(mux *http.ServeMux, users *userUC.Service, sessions *authsvc.Sessions, logger *slog.Logger, loginLimit func(http.Handler) http.Handler) {
	mux.Handle("POST /api/auth/login", loginLimit(LoginHandler{
		Users:    users,
		Sessions: sessions,
		Logger:   logger,
	}))
	mux.Handle("POST /api/auth/logout", LogoutHandler{})
	mux.Handle("POST /api/auth/setup", SetupHandler{Users: users})
	mux.Handle("GET  /api/auth/me", RequireAuth(sessions)(MeHandler{Users: users}))
}
