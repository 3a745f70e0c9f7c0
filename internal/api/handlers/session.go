package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/arash/truth-or-dare-bot/internal/api/middleware"
	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/events"
	"github.com/arash/truth-or-dare-bot/internal/service"
	"github.com/go-chi/chi/v5"
)

type SessionHandler struct {
	sessionService *service.SessionService
	hub            *events.Hub
}

func NewSessionHandler(sessionService *service.SessionService, hub *events.Hub) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, hub: hub}
}

type CreateSessionRequest struct {
	Difficulty string `json:"difficulty"`
	Mode       string `json:"mode"`
}

type SessionResponse struct {
	ID            int64   `json:"id"`
	CreatorID     int64   `json:"creatorId"`
	Status        string  `json:"status"`
	Players       []int64 `json:"players"`
	CurrentPlayer int64   `json:"currentPlayer"`
	Difficulty    string  `json:"difficulty"`
	Mode          string  `json:"mode"`
}

func sessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		CreatorID:     s.CreatorID,
		Status:        string(s.Status),
		Players:       s.Players,
		CurrentPlayer: s.CurrentPlayer,
		Difficulty:    string(s.Difficulty),
		Mode:          string(s.Mode),
	}
}

func sessionID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = string(domain.DifficultyMixed)
	}
	if req.Mode == "" {
		req.Mode = string(domain.ModeClassic)
	}

	session, err := h.sessionService.Create(r.Context(), userID, domain.Difficulty(req.Difficulty), domain.Mode(req.Mode))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse(session))
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		http.Error(w, "Invalid session id", http.StatusBadRequest)
		return
	}

	session, err := h.sessionService.GetInfo(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session))
}

func (h *SessionHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := sessionID(r)
	if err != nil {
		http.Error(w, "Invalid session id", http.StatusBadRequest)
		return
	}

	if err := h.sessionService.Join(r.Context(), id, userID); err != nil {
		writeError(w, err)
		return
	}

	h.hub.Publish(id, events.MessageTypePlayerJoined, events.PlayerJoinedPayload{
		SessionID: id,
		UserID:    userID,
	})

	session, err := h.sessionService.GetInfo(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session))
}

func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := sessionID(r)
	if err != nil {
		http.Error(w, "Invalid session id", http.StatusBadRequest)
		return
	}

	if err := h.sessionService.Start(r.Context(), id, userID); err != nil {
		writeError(w, err)
		return
	}

	session, err := h.sessionService.GetInfo(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	h.hub.Publish(id, events.MessageTypeSessionStarted, events.SessionStartedPayload{
		SessionID:     id,
		CurrentPlayer: session.CurrentPlayer,
	})
	writeJSON(w, http.StatusOK, sessionResponse(session))
}

func (h *SessionHandler) NextTurn(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		http.Error(w, "Invalid session id", http.StatusBadRequest)
		return
	}

	next, err := h.sessionService.NextTurn(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	h.hub.Publish(id, events.MessageTypeTurnChanged, events.TurnChangedPayload{
		SessionID:     id,
		CurrentPlayer: next,
	})
	writeJSON(w, http.StatusOK, map[string]int64{"currentPlayer": next})
}

func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := sessionID(r)
	if err != nil {
		http.Error(w, "Invalid session id", http.StatusBadRequest)
		return
	}

	if err := h.sessionService.End(r.Context(), id, userID); err != nil {
		writeError(w, err)
		return
	}

	h.hub.Publish(id, events.MessageTypeSessionEnded, events.SessionEndedPayload{
		SessionID: id,
		Status:    string(domain.SessionStatusEnded),
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": string(domain.SessionStatusEnded)})
}
