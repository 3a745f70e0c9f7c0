package service_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/service"
	"github.com/arash/truth-or-dare-bot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_UserOverview(t *testing.T) {
	gateway, db := testutil.NewGateway(t)
	sessions := service.NewSessionService(gateway)
	actions := service.NewActionService(gateway)
	stats := service.NewStatsService(gateway)
	ctx := context.Background()

	testutil.NewUserBuilder().Build(t, db)
	session, creator, _ := startedSession(t, db, sessions)

	_, err := actions.RecordAction(ctx, session.ID, creator.ID, domain.ActionTruth, "anything")
	require.NoError(t, err)

	overview, err := stats.UserOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), overview.TotalUsers)
	assert.Equal(t, int64(1), overview.ActiveLast7Days)
}

func TestStatsService_SessionOverview(t *testing.T) {
	gateway, db := testutil.NewGateway(t)
	sessions := service.NewSessionService(gateway)
	stats := service.NewStatsService(gateway)
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		overview, err := stats.SessionOverview(ctx)
		require.NoError(t, err)
		assert.Zero(t, overview.TotalSessions)
		assert.Zero(t, overview.ActiveSessions)
		assert.Empty(t, overview.PopularMode)
	})

	creator := testutil.NewUserBuilder().Build(t, db)
	_, err := sessions.Create(ctx, creator.ID, domain.DifficultyMixed, domain.ModeClassic)
	require.NoError(t, err)
	_, err = sessions.Create(ctx, creator.ID, domain.DifficultyMixed, domain.ModeClassic)
	require.NoError(t, err)
	ended, err := sessions.Create(ctx, creator.ID, domain.DifficultyMixed, domain.ModeChallenge)
	require.NoError(t, err)
	require.NoError(t, sessions.End(ctx, ended.ID, creator.ID))

	overview, err := stats.SessionOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), overview.TotalSessions)
	assert.Equal(t, int64(2), overview.ActiveSessions)
	assert.Equal(t, int64(3), overview.CreatedToday)
	assert.Equal(t, domain.ModeClassic, overview.PopularMode)
}

func TestStatsService_PromptOverview(t *testing.T) {
	gateway, db := testutil.NewGateway(t)
	stats := service.NewStatsService(gateway)
	ctx := context.Background()

	popular := testutil.NewPromptBuilder().WithKind(domain.ActionTruth).Build(t, db)
	testutil.NewPromptBuilder().WithKind(domain.ActionTruth).Build(t, db)
	require.NoError(t, db.Model(&domain.Prompt{}).
		Where("id = ?", popular.ID).
		Update("times_used", 4).Error)

	overview, err := stats.PromptOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), overview.Truth.Count)
	assert.Equal(t, popular.Text, overview.Truth.MostUsedText)
	assert.Equal(t, 4, overview.Truth.MostUsedHits)

	// Empty dare bank reads as zeros
	assert.Zero(t, overview.Dare.Count)
	assert.Empty(t, overview.Dare.MostUsedText)
}

func TestStatsService_MostActiveUsers(t *testing.T) {
	gateway, db := testutil.NewGateway(t)
	sessions := service.NewSessionService(gateway)
	actions := service.NewActionService(gateway)
	stats := service.NewStatsService(gateway)
	ctx := context.Background()

	session, creator, other := startedSession(t, db, sessions)

	// Creator takes two turns, the other player one
	turnID, err := actions.RecordAction(ctx, session.ID, creator.ID, domain.ActionTruth, "a")
	require.NoError(t, err)
	require.NoError(t, actions.CompleteAction(ctx, turnID, true))
	_, err = actions.RecordAction(ctx, session.ID, creator.ID, domain.ActionTruth, "b")
	require.NoError(t, err)

	_, err = sessions.NextTurn(ctx, session.ID)
	require.NoError(t, err)
	_, err = actions.RecordAction(ctx, session.ID, other.ID, domain.ActionDare, "c")
	require.NoError(t, err)

	ranked, err := stats.MostActiveUsers(ctx, 24*time.Hour, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, creator.ID, ranked[0].UserID)
	assert.Equal(t, int64(2), ranked[0].Actions)
	assert.Equal(t, other.ID, ranked[1].UserID)
	assert.Equal(t, int64(1), ranked[1].Actions)
}

func TestStatsService_SearchUsers(t *testing.T) {
	gateway, db := testutil.NewGateway(t)
	stats := service.NewStatsService(gateway)
	ctx := context.Background()

	alice := testutil.NewUserBuilder().WithUsername("alice_wonder").Build(t, db)
	testutil.NewUserBuilder().WithUsername("bob_builder").Build(t, db)

	t.Run("numeric query looks up by id", func(t *testing.T) {
		found, err := stats.SearchUsers(ctx, strconv.FormatInt(alice.ID, 10), 0)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, alice.ID, found[0].ID)
	})

	t.Run("unknown id yields an empty result", func(t *testing.T) {
		found, err := stats.SearchUsers(ctx, "424242", 0)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("handle substring", func(t *testing.T) {
		found, err := stats.SearchUsers(ctx, "wonder", 0)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, alice.ID, found[0].ID)
	})
}
