package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ovasilescu/travel-planner/internal/service"
)

// userResponse is the wire shape of an account. The password hash never
// leaves the server (domain.User already excludes it from JSON; this type
// makes the surface explicit).
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register handles POST /api/v1/auth/register.
// Duplicate usernames come back as 409 with a field-level message; validation
// failures as 422. Nothing is written on either.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req service.Registration
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	})
}

// loginRequest is the body for POST /api/v1/auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login.
// On success it issues a bearer token carrying the user's ID and username.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	user, err := s.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := s.tokens.Issue(user.ID.String(), user.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user": userResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Email:    user.Email,
		},
	})
}
