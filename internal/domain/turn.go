package domain

import "time"

type ActionKind string

const (
	ActionTruth ActionKind = "truth"
	ActionDare  ActionKind = "dare"
)

func ParseActionKind(s string) (ActionKind, error) {
	switch ActionKind(s) {
	case ActionTruth, ActionDare:
		return ActionKind(s), nil
	}
	return "", ErrInvalidActionKind
}

// TurnRecord is one served prompt and its outcome within a session.
// Completed is tri-state: nil until the acting player reports back, then
// written exactly once.
type TurnRecord struct {
	ID         int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	SessionID  int64      `json:"sessionId" gorm:"not null;index"`
	PlayerID   int64      `json:"playerId" gorm:"not null;index"`
	Kind       ActionKind `json:"kind" gorm:"type:varchar(5);not null"`
	PromptText string     `json:"promptText" gorm:"not null"`
	Completed  *bool      `json:"completed"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"index"`
}

func (TurnRecord) TableName() string {
	return "turn_records"
}
