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

type ActionHandler struct {
	actionService  *service.ActionService
	sessionService *service.SessionService
	promptService  *service.PromptService
	hub            *events.Hub
}

func NewActionHandler(actionService *service.ActionService, sessionService *service.SessionService, promptService *service.PromptService, hub *events.Hub) *ActionHandler {
	return &ActionHandler{
		actionService:  actionService,
		sessionService: sessionService,
		promptService:  promptService,
		hub:            hub,
	}
}

type RecordActionRequest struct {
	Kind string `json:"kind"`
}

type RecordActionResponse struct {
	TurnID int64  `json:"turnId"`
	Kind   string `json:"kind"`
	Prompt string `json:"prompt"`
}

// Record serves a prompt for the caller's turn and records it: the prompt
// is drawn from the session's difficulty/mode, then the turn is written.
// The turn guard itself is re-checked by the recorder under the store lock.
func (h *ActionHandler) Record(w http.ResponseWriter, r *http.Request) {
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

	var req RecordActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	kind, err := domain.ParseActionKind(req.Kind)
	if err != nil {
		writeError(w, err)
		return
	}

	session, err := h.sessionService.GetInfo(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	prompt, err := h.promptService.SelectPrompt(r.Context(), kind, session.Difficulty, session.Mode)
	if err != nil {
		writeError(w, err)
		return
	}

	turnID, err := h.actionService.RecordAction(r.Context(), id, userID, kind, prompt)
	if err != nil {
		writeError(w, err)
		return
	}

	h.hub.Publish(id, events.MessageTypePromptServed, events.PromptServedPayload{
		SessionID: id,
		PlayerID:  userID,
		Kind:      string(kind),
		Prompt:    prompt,
		TurnID:    turnID,
	})
	writeJSON(w, http.StatusCreated, RecordActionResponse{
		TurnID: turnID,
		Kind:   string(kind),
		Prompt: prompt,
	})
}

type CompleteActionRequest struct {
	Done bool `json:"done"`
}

// Complete reports the outcome of a turn. Ownership is verified here, at
// the transport boundary, before the recorder writes the flag.
func (h *ActionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	turnID, err := strconv.ParseInt(chi.URLParam(r, "turnId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid turn id", http.StatusBadRequest)
		return
	}

	var req CompleteActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	record, err := h.actionService.GetTurn(r.Context(), turnID)
	if err != nil {
		writeError(w, err)
		return
	}
	if record.PlayerID != userID {
		writeError(w, domain.ErrNotTurnOwner)
		return
	}

	if err := h.actionService.CompleteAction(r.Context(), turnID, req.Done); err != nil {
		writeError(w, err)
		return
	}

	h.hub.Publish(record.SessionID, events.MessageTypeActionCompleted, events.ActionCompletedPayload{
		SessionID: record.SessionID,
		PlayerID:  userID,
		TurnID:    turnID,
		Done:      req.Done,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"done": req.Done})
}
