package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/D1Massacre007/York-Realty/internal/repository"
	"github.com/D1Massacre007/York-Realty/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRequest defines the payload for registration
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FullName == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "full name, email and password are required")
		return
	}

	user, err := h.authService.Register(req.FullName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			writeJSON(w, http.StatusConflict, errorResponse{
				Error:   "registration failed",
				Details: "email already registered, please use a different email or log in",
			})
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to register user", "error", err)
			writeError(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Registration successful",
		"userId":  user.ID,
	})
}

// Login handles POST /login. Unknown email and wrong password produce the
// exact same response, so the endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
			return
		}
		slog.Error("failed to log in user", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}
