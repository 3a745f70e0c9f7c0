// Package events fans session state changes out to subscribed transport
// clients. The hub holds no game state: it only forwards messages the
// handlers publish after the core has committed a change.
package events

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

type Hub struct {
	sessions   map[int64]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan outbound
	stop       chan struct{}
	done       chan struct{}
}

type outbound struct {
	sessionID int64
	data      []byte
}

func NewHub() *Hub {
	return &Hub{
		sessions:   make(map[int64]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan outbound, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			for _, clients := range h.sessions {
				for client := range clients {
					client.Close()
				}
			}
			h.sessions = make(map[int64]map[*Client]bool)
			return

		case client := <-h.register:
			clients, ok := h.sessions[client.sessionID]
			if !ok {
				clients = make(map[*Client]bool)
				h.sessions[client.sessionID] = clients
			}
			clients[client] = true

		case client := <-h.unregister:
			if clients, ok := h.sessions[client.sessionID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					client.Close()
					if len(clients) == 0 {
						delete(h.sessions, client.sessionID)
					}
				}
			}

		case msg := <-h.broadcast:
			for client := range h.sessions[msg.sessionID] {
				select {
				case client.send <- msg.data:
				default:
					// Slow consumer; drop it rather than stall the hub.
					delete(h.sessions[msg.sessionID], client)
					client.Close()
				}
			}
		}
	}
}

// Publish sends an event to every client subscribed to the session.
func (h *Hub) Publish(sessionID int64, msgType MessageType, payload interface{}) {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		log.Error().Err(err).Str("type", string(msgType)).Msg("failed to build event message")
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Str("type", string(msgType)).Msg("failed to marshal event message")
		return
	}

	select {
	case h.broadcast <- outbound{sessionID: sessionID, data: data}:
	case <-h.done:
	}
}

func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}
