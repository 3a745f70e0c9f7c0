package service_test

import (
	"context"
	"testing"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/service"
	"github.com/arash/truth-or-dare-bot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptService_SelectPrompt(t *testing.T) {
	gateway, db := testutil.NewGateway(t)
	prompts := service.NewPromptService(gateway)
	ctx := context.Background()

	categoryMatch := testutil.NewPromptBuilder().
		WithKind(domain.ActionTruth).
		WithText("general medium truth").
		WithDifficulty(domain.DifficultyMedium).
		WithCategory(domain.CategoryGeneral).
		Build(t, db)
	difficultyOnly := testutil.NewPromptBuilder().
		WithKind(domain.ActionTruth).
		WithText("performance hard truth").
		WithDifficulty(domain.DifficultyHard).
		WithCategory(domain.CategoryPerformance).
		Build(t, db)

	t.Run("category and difficulty match wins", func(t *testing.T) {
		text, err := prompts.SelectPrompt(ctx, domain.ActionTruth, domain.DifficultyMedium, domain.ModeClassic)
		require.NoError(t, err)
		assert.Equal(t, categoryMatch.Text, text)
	})

	t.Run("mixed difficulty ignores the difficulty constraint", func(t *testing.T) {
		text, err := prompts.SelectPrompt(ctx, domain.ActionTruth, domain.DifficultyMixed, domain.ModePerformance)
		require.NoError(t, err)
		assert.Equal(t, difficultyOnly.Text, text)
	})

	t.Run("falls back to difficulty when the category is empty", func(t *testing.T) {
		// Challenge category has no truths; the hard prompt in another
		// category still serves.
		text, err := prompts.SelectPrompt(ctx, domain.ActionTruth, domain.DifficultyHard, domain.ModeChallenge)
		require.NoError(t, err)
		assert.Equal(t, difficultyOnly.Text, text)
	})

	t.Run("falls back to any prompt of the kind", func(t *testing.T) {
		// No easy truth exists anywhere; any truth will do.
		text, err := prompts.SelectPrompt(ctx, domain.ActionTruth, domain.DifficultyEasy, domain.ModeClassic)
		require.NoError(t, err)
		assert.Contains(t, []string{categoryMatch.Text, difficultyOnly.Text}, text)
	})

	t.Run("empty bank serves the placeholder", func(t *testing.T) {
		text, err := prompts.SelectPrompt(ctx, domain.ActionDare, domain.DifficultyMixed, domain.ModeClassic)
		require.NoError(t, err)
		assert.Equal(t, service.PlaceholderDare, text)
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := prompts.SelectPrompt(ctx, "riddle", domain.DifficultyEasy, domain.ModeClassic)
		assert.ErrorIs(t, err, domain.ErrInvalidActionKind)
	})

	t.Run("invalid difficulty", func(t *testing.T) {
		_, err := prompts.SelectPrompt(ctx, domain.ActionTruth, "brutal", domain.ModeClassic)
		assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
	})
}

func TestPromptService_CreateAndList(t *testing.T) {
	gateway, _ := testutil.NewGateway(t)
	prompts := service.NewPromptService(gateway)
	ctx := context.Background()

	created, err := prompts.CreatePrompt(ctx, domain.ActionDare, "swap shirts with your neighbor", domain.DifficultyMedium, domain.CategoryChallenge)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = prompts.CreatePrompt(ctx, domain.ActionDare, "anything", "brutal", domain.CategoryGeneral)
	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)

	listed, err := prompts.ListPrompts(ctx, domain.ActionDare, 0, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.Text, listed[0].Text)

	// The other kind's bank stays empty
	truths, err := prompts.ListPrompts(ctx, domain.ActionTruth, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, truths)
}
