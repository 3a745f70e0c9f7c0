package domain

import (
	"time"

	"gorm.io/datatypes"
)

type SessionStatus string

const (
	SessionStatusWaiting SessionStatus = "waiting"
	SessionStatusStarted SessionStatus = "started"
	SessionStatusEnded   SessionStatus = "ended"
	SessionStatusTimeout SessionStatus = "timeout"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyMixed  Difficulty = "mixed"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
		return Difficulty(s), nil
	}
	return "", ErrInvalidDifficulty
}

type Mode string

const (
	ModeClassic     Mode = "classic"
	ModeChallenge   Mode = "challenge"
	ModePerformance Mode = "performance"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeClassic, ModeChallenge, ModePerformance:
		return Mode(s), nil
	}
	return "", ErrInvalidMode
}

// Category returns the prompt category a game mode draws from. Unknown
// modes report false and selection falls back to category-agnostic queries.
func (m Mode) Category() (string, bool) {
	switch m {
	case ModeClassic:
		return CategoryGeneral, true
	case ModeChallenge:
		return CategoryChallenge, true
	case ModePerformance:
		return CategoryPerformance, true
	}
	return "", false
}

// Session is one instance of the game. Players is the ordered participant
// list: insertion order is turn order and the creator is always index 0.
type Session struct {
	ID            int64                      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatorID     int64                      `json:"creatorId" gorm:"not null;index"`
	Status        SessionStatus              `json:"status" gorm:"type:varchar(10);not null;default:'waiting';index"`
	Players       datatypes.JSONSlice[int64] `json:"players" gorm:"not null"`
	CurrentPlayer int64                      `json:"currentPlayer"`
	Difficulty    Difficulty                 `json:"difficulty" gorm:"type:varchar(10);not null;default:'mixed'"`
	Mode          Mode                       `json:"mode" gorm:"type:varchar(15);not null;default:'classic'"`
	CreatedAt     time.Time                  `json:"createdAt"`
	LastActivity  time.Time                  `json:"lastActivity" gorm:"index"`
}

func (Session) TableName() string {
	return "sessions"
}

// IsActive reports whether the session can still be played or joined.
func (s *Session) IsActive() bool {
	return s.Status == SessionStatusWaiting || s.Status == SessionStatusStarted
}

func (s *Session) HasPlayer(userID int64) bool {
	for _, id := range s.Players {
		if id == userID {
			return true
		}
	}
	return false
}

// NextAfter returns the circular successor of current in the participant
// list. If current is not in the list the first participant is returned.
// ok is false when the list is empty.
func (s *Session) NextAfter(current int64) (next int64, ok bool) {
	if len(s.Players) == 0 {
		return 0, false
	}
	for i, id := range s.Players {
		if id == current {
			return s.Players[(i+1)%len(s.Players)], true
		}
	}
	return s.Players[0], true
}
