package sqlite

import (
	"context"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	if user.JoinedAt.IsZero() {
		user.JoinedAt = time.Now()
	}
	// Refresh profile columns on conflict, leave counters alone.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "first_name", "last_name"}),
	}).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) AddStats(ctx context.Context, id int64, truths, dares, points int) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"truths_chosen": gorm.Expr("truths_chosen + ?", truths),
			"dares_chosen":  gorm.Expr("dares_chosen + ?", dares),
			"points":        gorm.Expr("points + ?", points),
		}).Error
}

func (r *userRepository) IncrementGamesPlayed(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id IN ?", ids).
		Update("games_played", gorm.Expr("games_played + 1")).Error
}

func (r *userRepository) SearchByHandle(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.WithContext(ctx).
		Where("username LIKE ?", "%"+query+"%").
		Order("id").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
