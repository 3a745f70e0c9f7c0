package sqlite

import (
	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the embedded store and creates any missing tables.
// Schema creation is idempotent and runs once at startup.
func NewConnection(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	// Serialized access lives in the store gateway; a single underlying
	// connection keeps sqlite's own locking out of the picture.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.TurnRecord{},
		&domain.Prompt{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepository(db),
		Session: NewSessionRepository(db),
		Turn:    NewTurnRepository(db),
		Prompt:  NewPromptRepository(db),
		Stats:   NewStatsRepository(db),
	}
}
