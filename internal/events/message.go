package events

import (
	"encoding/json"
	"time"
)

type MessageType string

const (
	MessageTypePlayerJoined    MessageType = "PLAYER_JOINED"
	MessageTypeSessionStarted  MessageType = "SESSION_STARTED"
	MessageTypeTurnChanged     MessageType = "TURN_CHANGED"
	MessageTypePromptServed    MessageType = "PROMPT_SERVED"
	MessageTypeActionCompleted MessageType = "ACTION_COMPLETED"
	MessageTypeSessionEnded    MessageType = "SESSION_ENDED"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

type PlayerJoinedPayload struct {
	SessionID int64 `json:"sessionId"`
	UserID    int64 `json:"userId"`
}

type SessionStartedPayload struct {
	SessionID     int64 `json:"sessionId"`
	CurrentPlayer int64 `json:"currentPlayer"`
}

type TurnChangedPayload struct {
	SessionID     int64 `json:"sessionId"`
	CurrentPlayer int64 `json:"currentPlayer"`
}

type PromptServedPayload struct {
	SessionID int64  `json:"sessionId"`
	PlayerID  int64  `json:"playerId"`
	Kind      string `json:"kind"`
	Prompt    string `json:"prompt"`
	TurnID    int64  `json:"turnId"`
}

type ActionCompletedPayload struct {
	SessionID int64 `json:"sessionId"`
	PlayerID  int64 `json:"playerId"`
	TurnID    int64 `json:"turnId"`
	Done      bool  `json:"done"`
}

type SessionEndedPayload struct {
	SessionID int64  `json:"sessionId"`
	Status    string `json:"status"`
}
