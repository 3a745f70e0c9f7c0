package sqlite

import (
	"context"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"gorm.io/gorm"
)

type promptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) *promptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) Create(ctx context.Context, prompt *domain.Prompt) error {
	return r.db.WithContext(ctx).Create(prompt).Error
}

func (r *promptRepository) List(ctx context.Context, kind domain.ActionKind, limit, offset int) ([]*domain.Prompt, error) {
	var prompts []*domain.Prompt
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

func (r *promptRepository) Random(ctx context.Context, kind domain.ActionKind, difficulty domain.Difficulty, category string) (*domain.Prompt, error) {
	q := r.db.WithContext(ctx).Where("kind = ?", kind)
	if difficulty != "" {
		q = q.Where("difficulty = ?", difficulty)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var prompt domain.Prompt
	// RANDOM() is uniform over the matched row set.
	if err := q.Order("RANDOM()").First(&prompt).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (r *promptRepository) IncrementUsage(ctx context.Context, kind domain.ActionKind, text string) error {
	return r.db.WithContext(ctx).Model(&domain.Prompt{}).
		Where("kind = ? AND text = ?", kind, text).
		Update("times_used", gorm.Expr("times_used + 1")).Error
}

func (r *promptRepository) Count(ctx context.Context, kind domain.ActionKind) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Prompt{}).
		Where("kind = ?", kind).
		Count(&count).Error
	return count, err
}

func (r *promptRepository) MostUsed(ctx context.Context, kind domain.ActionKind) (*domain.Prompt, error) {
	var prompt domain.Prompt
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("times_used DESC").
		First(&prompt).Error
	if err != nil {
		return nil, err
	}
	return &prompt, nil
}
