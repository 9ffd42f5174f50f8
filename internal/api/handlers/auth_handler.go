package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/merchops/sku-dash-be/internal/apperr"
	"github.com/merchops/sku-dash-be/internal/auth"
	"github.com/merchops/sku-dash-be/internal/models"
	"github.com/merchops/sku-dash-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service   services.UserServiceProvider
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, jwtSecret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{service: service, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by both auth endpoints.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// Register handles new user registration and returns a fresh token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Register(payload.Username, payload.Email, payload.Password, payload.Role)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		respondWithError(w, apperr.HTTPStatus(err), "Username or email already registered")
		return
	}

	h.respondWithToken(w, http.StatusCreated, user)
}

// Login handles credential verification and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
		respondWithError(w, apperr.HTTPStatus(err), "Incorrect username or password")
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, code int, user models.User) {
	token, err := auth.GenerateToken(user.Username, h.jwtSecret, h.tokenTTL)
	if err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("Failed to generate token")
		respondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondWithJSON(w, code, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}
