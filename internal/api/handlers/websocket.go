package handlers

import (
	"net/http"
	"strconv"

	"github.com/arash/truth-or-dare-bot/internal/events"
	"github.com/arash/truth-or-dare-bot/internal/service"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The feed carries no secrets beyond what the REST surface serves.
		return true
	},
}

type WebSocketHandler struct {
	hub            *events.Hub
	sessionService *service.SessionService
}

func NewWebSocketHandler(hub *events.Hub, sessionService *service.SessionService) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, sessionService: sessionService}
}

// Handle subscribes the caller to one session's event feed.
func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(r.URL.Query().Get("session_id"), 10, 64)
	if err != nil {
		http.Error(w, "session_id query parameter required", http.StatusBadRequest)
		return
	}

	if _, err := h.sessionService.GetInfo(r.Context(), sessionID); err != nil {
		writeError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	events.NewClient(h.hub, conn, sessionID).Subscribe()
}
