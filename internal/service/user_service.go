package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/repository"
	"github.com/arash/truth-or-dare-bot/internal/store"
	"gorm.io/gorm"
)

// UserService registers platform users and serves their cumulative stats.
type UserService struct {
	gateway  *store.Gateway
	adminIDs map[int64]struct{}
}

func NewUserService(gateway *store.Gateway, adminIDs []int64) *UserService {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &UserService{gateway: gateway, adminIDs: admins}
}

type RegisterInput struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// Register upserts the user: created on first contact, profile fields
// refreshed on every contact, counters never touched.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.ID <= 0 {
		return nil, domain.ErrInvalidUserID
	}

	user := &domain.User{
		ID:        input.ID,
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	err := s.gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		if err := repos.User.Upsert(ctx, user); err != nil {
			return &store.StorageError{Op: "register user", Err: err}
		}
		// Re-read so counters reflect the stored row, not the zero value.
		stored, err := repos.User.GetByID(ctx, input.ID)
		if err != nil {
			return &store.StorageError{Op: "load user", Err: err}
		}
		user = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) IsAdmin(userID int64) bool {
	_, ok := s.adminIDs[userID]
	return ok
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var user *domain.User
	err := s.gateway.View(ctx, func(repos *repository.Repositories) error {
		found, err := repos.User.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return &store.StorageError{Op: "load user", Err: err}
		}
		user = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetStats returns the user's counters; unknown users read as zeros.
func (s *UserService) GetStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	stats := &domain.UserStats{UserID: userID}
	err := s.gateway.View(ctx, func(repos *repository.Repositories) error {
		user, err := repos.User.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return &store.StorageError{Op: "load user stats", Err: err}
		}
		stats.GamesPlayed = user.GamesPlayed
		stats.TruthsChosen = user.TruthsChosen
		stats.DaresChosen = user.DaresChosen
		stats.Points = user.Points
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// UpdateStats adds the given deltas to the user's counters.
func (s *UserService) UpdateStats(ctx context.Context, userID int64, truths, dares, points int) error {
	if userID <= 0 {
		return domain.ErrInvalidUserID
	}
	return s.gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		if err := repos.User.AddStats(ctx, userID, truths, dares, points); err != nil {
			return &store.StorageError{Op: "update user stats", Err: err}
		}
		return nil
	})
}

// DisplayName resolves a user-facing label; handle first, then full name,
// then a numeric fallback even for unknown users.
func (s *UserService) DisplayName(ctx context.Context, userID int64) string {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return fmt.Sprintf("user %d", userID)
	}
	return user.DisplayName()
}
