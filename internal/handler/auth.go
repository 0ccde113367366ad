package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dishdelight/backend/internal/service"
)

// AuthHandler exposes the two credential endpoints.
//
// HANDLER RESPONSIBILITIES:
//   - HandleRegister → decode JSON, call AuthService.Register, 201 + user
//   - HandleLogin    → decode JSON, call AuthService.Login, 200 + token
//
// Both endpoints sit OUTSIDE the auth middleware — you can't be asked for a
// token while trying to obtain one. Everything beyond JSON decoding lives in
// the service; the handler never sees a password hash or the signing secret.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler. All dependencies are injected here;
// the handler has no knowledge of how they're constructed.
func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

// registerRequest is the expected body for POST /api/register.
// Decoding into a dedicated struct (rather than model.User) means the
// client can never smuggle in fields like an ID or a ready-made hash.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse mirrors the original API: the token plus the username.
type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    string `json:"user"`
}

// HandleRegister creates a new account.
//
// HTTP: POST /api/register
// REQUEST BODY: {"username": "alice", "email": "a@x.com", "password": "Abcdef1!"}
//
// Responses: 201 with the created user's public fields (id, username,
// email, createdAt — never a password field), 400 on missing fields or a
// policy violation, 409 when the email is taken.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid register JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	user, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// HandleLogin verifies credentials and returns a bearer token.
//
// HTTP: POST /api/login
// REQUEST BODY: {"email": "a@x.com", "password": "Abcdef1!"}
//
// Responses: 200 with {"token": ..., "user": <username>}, 400 on missing
// fields (before any store access), 401 on a credential mismatch — the same
// 401 body whether the email is unknown or the password is wrong.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid login JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "login successful",
		Token:   result.Token,
		User:    result.Username,
	})
}
