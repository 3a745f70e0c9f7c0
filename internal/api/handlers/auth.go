package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arash/truth-or-dare-bot/internal/api/middleware"
	"github.com/arash/truth-or-dare-bot/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

type TokenRequest struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type TokenResponse struct {
	Token   string `json:"token"`
	UserID  int64  `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
}

// Token exchanges a platform user identity for a bearer token. The bot
// transport authenticates itself with the pre-shared API key; the user was
// already authenticated by the chat platform.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.CheckAPIKey(r.Header.Get("X-Api-Key")); err != nil {
		http.Error(w, "Invalid API key", http.StatusUnauthorized)
		return
	}

	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Register(r.Context(), service.RegisterInput{
		ID:        req.UserID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{
		Token:   token,
		UserID:  user.ID,
		IsAdmin: h.userService.IsAdmin(user.ID),
	})
}

// Me returns the caller's profile and counters.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
