package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"nashra/internal/domain/entity"
	"nashra/internal/handler/http/respond"
	userUC "nashra/internal/usecase/user"
)

// SetupHandler serves POST /api/auth/setup. It creates an admin account;
// duplicate usernames are rejected.
type SetupHandler struct {
	Users *userUC.Service
}

func (h SetupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	user, err := h.Users.CreateUser(r.Context(), entity.NewUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	respond.JSON(w, http.StatusCreated, userDTO{ID: user.ID, Username: user.Username})
}
