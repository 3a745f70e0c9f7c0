package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/store"
	"github.com/arash/truth-or-dare-bot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedSession(t *testing.T, db *gorm.DB, status domain.SessionStatus, lastActivity time.Time) *domain.Session {
	t.Helper()
	session := &domain.Session{
		CreatorID:     1,
		Status:        status,
		Players:       datatypes.JSONSlice[int64]{1},
		CurrentPlayer: 1,
		Difficulty:    domain.DifficultyMixed,
		Mode:          domain.ModeClassic,
		CreatedAt:     lastActivity,
		LastActivity:  lastActivity,
	}
	require.NoError(t, db.Create(session).Error)
	return session
}

func TestSweeper_RunOnce(t *testing.T) {
	gateway, db := testutil.NewGateway(t)
	sweeper := store.NewSweeper(gateway, time.Minute, time.Hour)
	ctx := context.Background()

	stale := time.Now().Add(-2 * time.Hour)
	fresh := time.Now()

	idleWaiting := seedSession(t, db, domain.SessionStatusWaiting, stale)
	idleStarted := seedSession(t, db, domain.SessionStatusStarted, stale)
	activeStarted := seedSession(t, db, domain.SessionStatusStarted, fresh)
	alreadyEnded := seedSession(t, db, domain.SessionStatusEnded, stale)

	expired, err := sweeper.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), expired)

	read := func(id int64) domain.SessionStatus {
		var s domain.Session
		require.NoError(t, db.First(&s, "id = ?", id).Error)
		return s.Status
	}

	assert.Equal(t, domain.SessionStatusTimeout, read(idleWaiting.ID))
	assert.Equal(t, domain.SessionStatusTimeout, read(idleStarted.ID))
	assert.Equal(t, domain.SessionStatusStarted, read(activeStarted.ID))
	// A finished session keeps its terminal status
	assert.Equal(t, domain.SessionStatusEnded, read(alreadyEnded.ID))

	// A second sweep finds nothing left to expire
	expired, err = sweeper.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, expired)
}

func TestSweeper_StartStop(t *testing.T) {
	gateway, db := testutil.NewGateway(t)
	sweeper := store.NewSweeper(gateway, 10*time.Millisecond, time.Hour)

	seedSession(t, db, domain.SessionStatusWaiting, time.Now().Add(-2*time.Hour))

	require.NoError(t, sweeper.Start())
	defer func() { require.NoError(t, sweeper.Stop()) }()

	assert.Eventually(t, func() bool {
		var s domain.Session
		if err := db.First(&s).Error; err != nil {
			return false
		}
		return s.Status == domain.SessionStatusTimeout
	}, 2*time.Second, 20*time.Millisecond)
}

func TestSweeper_StopBeforeStart(t *testing.T) {
	gateway, _ := testutil.NewGateway(t)
	sweeper := store.NewSweeper(gateway, time.Minute, time.Hour)
	assert.NoError(t, sweeper.Stop())
}
