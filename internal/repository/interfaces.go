package repository

import (
	"context"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/domain"
)

type UserRepository interface {
	// Upsert inserts the user on first contact and refreshes profile
	// fields on every subsequent contact. Counters are never touched.
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// AddStats adds the deltas to the user's cumulative counters.
	AddStats(ctx context.Context, id int64, truths, dares, points int) error
	// IncrementGamesPlayed bumps the played counter for every given user.
	IncrementGamesPlayed(ctx context.Context, ids []int64) error
	SearchByHandle(ctx context.Context, query string, limit int) ([]*domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	// ExpireIdle transitions waiting/started sessions whose last activity
	// predates cutoff to timeout and returns how many were affected. Only
	// the background sweeper may call this.
	ExpireIdle(ctx context.Context, cutoff time.Time) (int64, error)
}

type TurnRepository interface {
	Create(ctx context.Context, record *domain.TurnRecord) error
	GetByID(ctx context.Context, id int64) (*domain.TurnRecord, error)
	SetCompleted(ctx context.Context, id int64, done bool) error
}

type PromptRepository interface {
	Create(ctx context.Context, prompt *domain.Prompt) error
	List(ctx context.Context, kind domain.ActionKind, limit, offset int) ([]*domain.Prompt, error)
	// Random picks uniformly among prompts of the kind matching the given
	// difficulty and category; empty values leave that column unconstrained.
	// Returns gorm.ErrRecordNotFound when nothing matches.
	Random(ctx context.Context, kind domain.ActionKind, difficulty domain.Difficulty, category string) (*domain.Prompt, error)
	// IncrementUsage bumps times_used of the prompt with this exact text.
	// Texts not present in the bank are a no-op.
	IncrementUsage(ctx context.Context, kind domain.ActionKind, text string) error
	Count(ctx context.Context, kind domain.ActionKind) (int64, error)
	MostUsed(ctx context.Context, kind domain.ActionKind) (*domain.Prompt, error)
}

type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountActivePlayers(ctx context.Context, since time.Time) (int64, error)
	MostActiveUsers(ctx context.Context, since time.Time, limit int) ([]*domain.UserActivity, error)
	CountSessions(ctx context.Context) (int64, error)
	CountActiveSessions(ctx context.Context) (int64, error)
	CountSessionsSince(ctx context.Context, since time.Time) (int64, error)
	MostPopularMode(ctx context.Context) (domain.Mode, error)
}

type Repositories struct {
	User    UserRepository
	Session SessionRepository
	Turn    TurnRepository
	Prompt  PromptRepository
	Stats   StatsRepository
}
