package auth

import (
	"errors"
	"net/http"

	"nashra/internal/handler/http/respond"
	userUC "nashra/internal/usecase/user"
)

// MeHandler serves GET /api/auth/me for the authenticated user.
// It must run behind RequireAuth.
type MeHandler struct {
	Users *userUC.Service
}

func (h MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	if userID == "" {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	user, err := h.Users.Get(r.Context(), userID)
	if err != nil {
		// The session outlived the account
		if errors.Is(err, userUC.ErrUserNotFound) {
			respond.SafeError(w, http.StatusUnauthorized, errors.New("invalid session"))
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, userDTO{ID: user.ID, Username: user.Username})
}
