package sqlite

import (
	"context"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *statsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountActivePlayers(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.TurnRecord{}).
		Where("created_at >= ?", since).
		Distinct("player_id").
		Count(&count).Error
	return count, err
}

func (r *statsRepository) MostActiveUsers(ctx context.Context, since time.Time, limit int) ([]*domain.UserActivity, error) {
	var rows []*domain.UserActivity
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Select("users.id AS user_id, users.username, users.first_name, COUNT(turn_records.id) AS actions").
		Joins("LEFT JOIN turn_records ON turn_records.player_id = users.id AND turn_records.created_at >= ?", since).
		Group("users.id").
		Order("actions DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepository) CountSessions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Session{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountActiveSessions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Session{}).
		Where("status IN ?", []domain.SessionStatus{domain.SessionStatusWaiting, domain.SessionStatusStarted}).
		Count(&count).Error
	return count, err
}

func (r *statsRepository) CountSessionsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Session{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *statsRepository) MostPopularMode(ctx context.Context) (domain.Mode, error) {
	var mode domain.Mode
	err := r.db.WithContext(ctx).Model(&domain.Session{}).
		Select("mode").
		Group("mode").
		Order("COUNT(*) DESC").
		Limit(1).
		Scan(&mode).Error
	if err != nil {
		return "", err
	}
	return mode, nil
}
