package auth

import (
	"net/http"

	"nashra/internal/handler/http/respond"
)

// LogoutHandler serves POST /api/auth/logout. It clears the session cookie;
// the tokens themselves are stateless, so there is nothing else to revoke.
type LogoutHandler struct{}

func (h LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, sessionCookie("", -1))
	respond.JSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
