package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/config"
	"github.com/arash/truth-or-dare-bot/internal/repository/sqlite"
	"github.com/arash/truth-or-dare-bot/internal/store"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestAPIKey is the raw key matching TestConfig's API_KEY_HASH.
const TestAPIKey = "test-api-key"

// NewTestDB opens an embedded store under t.TempDir with the schema
// migrated. The file is reaped with the test's temp dir.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "truth_dare_test.db")
	db, err := sqlite.NewConnection(dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

// NewGateway wraps a fresh test DB in a storage gateway. The raw handle is
// returned alongside for fixture setup and assertions.
func NewGateway(t *testing.T) (*store.Gateway, *gorm.DB) {
	t.Helper()
	db := NewTestDB(t)
	return store.New(db), db
}

// TestConfig returns a configuration suitable for testing.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestAPIKey), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test api key: %v", err)
	}

	return &config.Config{
		Port:               "0",
		Environment:        "test",
		JWTSecret:          "test-jwt-secret-key-for-testing-only",
		JWTExpirationHours: 1,
		APIKeyHash:         string(hash),
		AdminIDs:           []int64{900},
		GameTimeout:        time.Hour,
		SweepInterval:      time.Minute,
	}
}
