package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestParseDifficulty(t *testing.T) {
	for _, valid := range []string{"easy", "medium", "hard", "mixed"} {
		got, err := ParseDifficulty(valid)
		assert.NoError(t, err)
		assert.Equal(t, Difficulty(valid), got)
	}

	_, err := ParseDifficulty("brutal")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
	_, err = ParseDifficulty("")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
	_, err = ParseDifficulty("Easy")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"classic", "challenge", "performance"} {
		got, err := ParseMode(valid)
		assert.NoError(t, err)
		assert.Equal(t, Mode(valid), got)
	}

	_, err := ParseMode("speedrun")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestModeCategory(t *testing.T) {
	tests := []struct {
		mode     Mode
		category string
		ok       bool
	}{
		{ModeClassic, CategoryGeneral, true},
		{ModeChallenge, CategoryChallenge, true},
		{ModePerformance, CategoryPerformance, true},
		{Mode("unknown"), "", false},
	}
	for _, tt := range tests {
		category, ok := tt.mode.Category()
		assert.Equal(t, tt.category, category)
		assert.Equal(t, tt.ok, ok)
	}
}

func TestSessionIsActive(t *testing.T) {
	assert.True(t, (&Session{Status: SessionStatusWaiting}).IsActive())
	assert.True(t, (&Session{Status: SessionStatusStarted}).IsActive())
	assert.False(t, (&Session{Status: SessionStatusEnded}).IsActive())
	assert.False(t, (&Session{Status: SessionStatusTimeout}).IsActive())
}

func TestSessionHasPlayer(t *testing.T) {
	session := &Session{Players: datatypes.JSONSlice[int64]{1, 2, 3}}

	assert.True(t, session.HasPlayer(2))
	assert.False(t, session.HasPlayer(4))
	assert.False(t, (&Session{}).HasPlayer(1))
}

func TestSessionNextAfter(t *testing.T) {
	session := &Session{Players: datatypes.JSONSlice[int64]{10, 20, 30}}

	next, ok := session.NextAfter(10)
	assert.True(t, ok)
	assert.Equal(t, int64(20), next)

	next, ok = session.NextAfter(20)
	assert.True(t, ok)
	assert.Equal(t, int64(30), next)

	// The last participant wraps around to the first
	next, ok = session.NextAfter(30)
	assert.True(t, ok)
	assert.Equal(t, int64(10), next)

	// Unknown current falls back to the first participant
	next, ok = session.NextAfter(99)
	assert.True(t, ok)
	assert.Equal(t, int64(10), next)

	_, ok = (&Session{}).NextAfter(10)
	assert.False(t, ok)
}
