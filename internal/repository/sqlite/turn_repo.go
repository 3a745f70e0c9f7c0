package sqlite

import (
	"context"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"gorm.io/gorm"
)

type turnRepository struct {
	db *gorm.DB
}

func NewTurnRepository(db *gorm.DB) *turnRepository {
	return &turnRepository{db: db}
}

func (r *turnRepository) Create(ctx context.Context, record *domain.TurnRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *turnRepository) GetByID(ctx context.Context, id int64) (*domain.TurnRecord, error) {
	var record domain.TurnRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *turnRepository) SetCompleted(ctx context.Context, id int64, done bool) error {
	return r.db.WithContext(ctx).Model(&domain.TurnRecord{}).
		Where("id = ?", id).
		Update("completed", done).Error
}
