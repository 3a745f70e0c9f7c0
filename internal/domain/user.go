package domain

import (
	"fmt"
	"strings"
	"time"
)

// User is a platform participant. The ID is assigned by the chat platform,
// never by us. Counter columns are mutated only by the action recorder and
// the session lifecycle; profile fields are refreshed on every contact.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	JoinedAt     time.Time `json:"joinedAt"`
	GamesPlayed  int       `json:"gamesPlayed" gorm:"not null;default:0"`
	TruthsChosen int       `json:"truthsChosen" gorm:"not null;default:0"`
	DaresChosen  int       `json:"daresChosen" gorm:"not null;default:0"`
	Points       int       `json:"points" gorm:"not null;default:0"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName prefers the handle, then the full name, then a numeric label.
func (u *User) DisplayName() string {
	if handle := strings.TrimSpace(u.Username); handle != "" {
		return "@" + handle
	}
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full != "" {
		return full
	}
	return fmt.Sprintf("user %d", u.ID)
}

// UserStats is the cumulative counter projection served to gameplay and
// admin views. Unknown users read as all zeros.
type UserStats struct {
	UserID       int64 `json:"userId"`
	GamesPlayed  int   `json:"gamesPlayed"`
	TruthsChosen int   `json:"truthsChosen"`
	DaresChosen  int   `json:"daresChosen"`
	Points       int   `json:"points"`
}

// UserActivity counts one user's turn records inside a trailing window.
type UserActivity struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	Actions   int64  `json:"actions"`
}
