package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"nashra/internal/handler/http/respond"
	"nashra/internal/observability/logging"
	"nashra/internal/observability/metrics"
	authsvc "nashra/internal/service/auth"
	userUC "nashra/internal/usecase/user"
)

// userDTO is the JSON shape for user data. The password hash never leaves
// the server.
type userDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler serves POST /api/auth/login. Successful logins set the
// session cookie; failures are reported uniformly so usernames cannot be
// probed.
type LoginHandler struct {
	Users    *userUC.Service
	Sessions *authsvc.Sessions
	Logger   *slog.Logger
}

func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	var req credentialsRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	user, err := h.Users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		metrics.RecordAuthAttempt(false)
		logger.Warn("login failed", "username", req.Username)
		respond.SafeError(w, http.StatusUnauthorized, userUC.ErrInvalidCredentials)
		return
	}

	token, expiresAt, err := h.Sessions.Issue(user.ID)
	if err != nil {
		logger.Error("failed to issue session", "error", err.Error())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.RecordAuthAttempt(true)
	logger.Info("login succeeded", "user_id", user.ID)

	cookie := sessionCookie(token, int(h.Sessions.TTL().Seconds()))
	cookie.Expires = expiresAt
	http.SetCookie(w, cookie)

	respond.JSON(w, http.StatusOK, userDTO{ID: user.ID, Username: user.Username})
}
