package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	id        int64
	username  string
	firstName string
}

var nextUserID int64 = 1000

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	nextUserID++
	return &UserBuilder{
		id:        nextUserID,
		username:  fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		firstName: "Test",
	}
}

func (b *UserBuilder) WithID(id int64) *UserBuilder {
	b.id = id
	return b
}

func (b *UserBuilder) WithUsername(name string) *UserBuilder {
	b.username = name
	return b
}

func (b *UserBuilder) WithFirstName(name string) *UserBuilder {
	b.firstName = name
	return b
}

// Build creates the user in the database
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:        b.id,
		Username:  b.username,
		FirstName: b.firstName,
		JoinedAt:  time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// PromptBuilder creates bank prompts for tests
type PromptBuilder struct {
	kind       domain.ActionKind
	text       string
	difficulty domain.Difficulty
	category   string
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		kind:       domain.ActionTruth,
		text:       fmt.Sprintf("test prompt %s", uuid.New().String()[:8]),
		difficulty: domain.DifficultyEasy,
		category:   domain.CategoryGeneral,
	}
}

func (b *PromptBuilder) WithKind(kind domain.ActionKind) *PromptBuilder {
	b.kind = kind
	return b
}

func (b *PromptBuilder) WithText(text string) *PromptBuilder {
	b.text = text
	return b
}

func (b *PromptBuilder) WithDifficulty(difficulty domain.Difficulty) *PromptBuilder {
	b.difficulty = difficulty
	return b
}

func (b *PromptBuilder) WithCategory(category string) *PromptBuilder {
	b.category = category
	return b
}

func (b *PromptBuilder) Build(t *testing.T, db *gorm.DB) *domain.Prompt {
	t.Helper()

	prompt := &domain.Prompt{
		Kind:       b.kind,
		Text:       b.text,
		Difficulty: b.difficulty,
		Category:   b.category,
	}
	if err := db.Create(prompt).Error; err != nil {
		t.Fatalf("failed to create prompt: %v", err)
	}
	return prompt
}
