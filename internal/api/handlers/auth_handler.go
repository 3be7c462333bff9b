package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/tward/kennel/internal/services"
)

// AuthHandler handles HTTP requests for signup and signin.
type AuthHandler struct {
	auth     services.AuthServiceProvider
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth services.AuthServiceProvider) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		validate: validator.New(),
	}
}

// SignupPayload defines the structure for registration requests.
type SignupPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"`
}

// Signup handles new user registration. The token is returned as the plain
// response body; signup doubles as a login.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.auth.SignUp(r.Context(), payload.Username, payload.Password, payload.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			http.Error(w, "Invalid request body", http.StatusBadRequest)
		case errors.Is(err, services.ErrDuplicateUsername):
			http.Error(w, "Username already taken", http.StatusConflict)
		default:
			log.Error().Err(err).Str("username", payload.Username).Msg("Failed to register user")
			http.Error(w, "Failed to register user", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(token))
}

// Signin handles login with HTTP Basic credentials and returns a fresh token.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.auth.SignIn(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same response for unknown username and wrong password.
			log.Warn().Str("username", username).Msg("Failed authentication attempt")
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Error().Err(err).Msg("Failed to sign in user")
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(token))
}
