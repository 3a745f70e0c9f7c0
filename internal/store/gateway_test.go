package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/repository"
	"github.com/arash/truth-or-dare-bot/internal/store"
	"github.com/arash/truth-or-dare-bot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_AtomicCommits(t *testing.T) {
	gateway, db := testutil.NewGateway(t)
	ctx := context.Background()

	err := gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		return repos.User.Upsert(ctx, &domain.User{ID: 1, Username: "alice"})
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGateway_AtomicRollsBackOnError(t *testing.T) {
	gateway, db := testutil.NewGateway(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		if err := repos.User.Upsert(ctx, &domain.User{ID: 1, Username: "alice"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// The write before the failure never became visible
	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &store.StorageError{Op: "create prompt", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "create prompt")
	assert.Contains(t, err.Error(), "disk full")
}
