package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/repository"
	"github.com/arash/truth-or-dare-bot/internal/store"
	"gorm.io/gorm"
)

// StatsService is the read-side projection over the store: global user,
// session and prompt counts for the admin surface. No mutation.
type StatsService struct {
	gateway *store.Gateway
}

func NewStatsService(gateway *store.Gateway) *StatsService {
	return &StatsService{gateway: gateway}
}

type UserOverview struct {
	TotalUsers      int64 `json:"totalUsers"`
	ActiveLast7Days int64 `json:"activeLast7Days"`
}

type SessionOverview struct {
	TotalSessions  int64       `json:"totalSessions"`
	ActiveSessions int64       `json:"activeSessions"`
	CreatedToday   int64       `json:"createdToday"`
	PopularMode    domain.Mode `json:"popularMode"`
}

type PromptKindOverview struct {
	Count        int64  `json:"count"`
	MostUsedText string `json:"mostUsedText"`
	MostUsedHits int    `json:"mostUsedHits"`
}

type PromptOverview struct {
	Truth PromptKindOverview `json:"truth"`
	Dare  PromptKindOverview `json:"dare"`
}

func (s *StatsService) UserOverview(ctx context.Context) (*UserOverview, error) {
	overview := &UserOverview{}
	err := s.gateway.View(ctx, func(repos *repository.Repositories) error {
		total, err := repos.Stats.CountUsers(ctx)
		if err != nil {
			return &store.StorageError{Op: "count users", Err: err}
		}
		active, err := repos.Stats.CountActivePlayers(ctx, time.Now().AddDate(0, 0, -7))
		if err != nil {
			return &store.StorageError{Op: "count active players", Err: err}
		}
		overview.TotalUsers = total
		overview.ActiveLast7Days = active
		return nil
	})
	if err != nil {
		return nil, err
	}
	return overview, nil
}

func (s *StatsService) SessionOverview(ctx context.Context) (*SessionOverview, error) {
	overview := &SessionOverview{}
	err := s.gateway.View(ctx, func(repos *repository.Repositories) error {
		total, err := repos.Stats.CountSessions(ctx)
		if err != nil {
			return &store.StorageError{Op: "count sessions", Err: err}
		}
		active, err := repos.Stats.CountActiveSessions(ctx)
		if err != nil {
			return &store.StorageError{Op: "count active sessions", Err: err}
		}
		midnight := time.Now().Truncate(24 * time.Hour)
		today, err := repos.Stats.CountSessionsSince(ctx, midnight)
		if err != nil {
			return &store.StorageError{Op: "count sessions today", Err: err}
		}
		mode, err := repos.Stats.MostPopularMode(ctx)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return &store.StorageError{Op: "find popular mode", Err: err}
		}

		overview.TotalSessions = total
		overview.ActiveSessions = active
		overview.CreatedToday = today
		overview.PopularMode = mode
		return nil
	})
	if err != nil {
		return nil, err
	}
	return overview, nil
}

func (s *StatsService) PromptOverview(ctx context.Context) (*PromptOverview, error) {
	overview := &PromptOverview{}
	err := s.gateway.View(ctx, func(repos *repository.Repositories) error {
		for _, kind := range []domain.ActionKind{domain.ActionTruth, domain.ActionDare} {
			count, err := repos.Prompt.Count(ctx, kind)
			if err != nil {
				return &store.StorageError{Op: "count prompts", Err: err}
			}
			entry := PromptKindOverview{Count: count}
			mostUsed, err := repos.Prompt.MostUsed(ctx, kind)
			if err == nil {
				entry.MostUsedText = mostUsed.Text
				entry.MostUsedHits = mostUsed.TimesUsed
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return &store.StorageError{Op: "find most used prompt", Err: err}
			}
			if kind == domain.ActionTruth {
				overview.Truth = entry
			} else {
				overview.Dare = entry
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return overview, nil
}

// MostActiveUsers counts turn records per user inside the trailing window.
func (s *StatsService) MostActiveUsers(ctx context.Context, window time.Duration, limit int) ([]*domain.UserActivity, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []*domain.UserActivity
	err := s.gateway.View(ctx, func(repos *repository.Repositories) error {
		found, err := repos.Stats.MostActiveUsers(ctx, time.Now().Add(-window), limit)
		if err != nil {
			return &store.StorageError{Op: "rank active users", Err: err}
		}
		rows = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchUsers looks a user up by numeric id, or by handle substring.
func (s *StatsService) SearchUsers(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	if limit <= 0 {
		limit = 10
	}
	var users []*domain.User
	err := s.gateway.View(ctx, func(repos *repository.Repositories) error {
		if id, convErr := strconv.ParseInt(query, 10, 64); convErr == nil {
			user, err := repos.User.GetByID(ctx, id)
			if err == nil {
				users = []*domain.User{user}
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return &store.StorageError{Op: "search user by id", Err: err}
			}
			return nil
		}

		found, err := repos.User.SearchByHandle(ctx, query, limit)
		if err != nil {
			return &store.StorageError{Op: "search users", Err: err}
		}
		users = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
