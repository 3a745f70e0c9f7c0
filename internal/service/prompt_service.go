package service

import (
	"context"
	"errors"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/repository"
	"github.com/arash/truth-or-dare-bot/internal/store"
	"gorm.io/gorm"
)

// Served when the bank has no prompt of the kind at all.
const (
	PlaceholderTruth = "Tell the group one true thing about yourself."
	PlaceholderDare  = "Do a dare of the group's choosing."
)

// PromptService selects pseudo-random prompts with layered fallback: the
// mode's category first, then category-agnostic, then difficulty-agnostic.
// Exhausted and unconfigured categories are deliberately treated the same.
type PromptService struct {
	gateway *store.Gateway
}

func NewPromptService(gateway *store.Gateway) *PromptService {
	return &PromptService{gateway: gateway}
}

func (s *PromptService) SelectPrompt(ctx context.Context, kind domain.ActionKind, difficulty domain.Difficulty, mode domain.Mode) (string, error) {
	if _, err := domain.ParseActionKind(string(kind)); err != nil {
		return "", err
	}
	if _, err := domain.ParseDifficulty(string(difficulty)); err != nil {
		return "", err
	}

	var text string
	err := s.gateway.View(ctx, func(repos *repository.Repositories) error {
		selected, err := selectPrompt(ctx, repos.Prompt, kind, difficulty, mode)
		if err != nil {
			return err
		}
		text = selected
		return nil
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func selectPrompt(ctx context.Context, prompts repository.PromptRepository, kind domain.ActionKind, difficulty domain.Difficulty, mode domain.Mode) (string, error) {
	if category, ok := mode.Category(); ok {
		constraint := difficulty
		if difficulty == domain.DifficultyMixed {
			constraint = ""
		}
		prompt, err := prompts.Random(ctx, kind, constraint, category)
		if err == nil {
			return prompt.Text, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &store.StorageError{Op: "select prompt", Err: err}
		}
	}

	if difficulty != domain.DifficultyMixed {
		prompt, err := prompts.Random(ctx, kind, difficulty, "")
		if err == nil {
			return prompt.Text, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &store.StorageError{Op: "select prompt", Err: err}
		}
	}

	prompt, err := prompts.Random(ctx, kind, "", "")
	if err == nil {
		return prompt.Text, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", &store.StorageError{Op: "select prompt", Err: err}
	}

	// Empty bank: never fail the turn over it.
	if kind == domain.ActionDare {
		return PlaceholderDare, nil
	}
	return PlaceholderTruth, nil
}

// CreatePrompt inserts a prompt into the bank (admin surface).
func (s *PromptService) CreatePrompt(ctx context.Context, kind domain.ActionKind, text string, difficulty domain.Difficulty, category string) (*domain.Prompt, error) {
	if _, err := domain.ParseActionKind(string(kind)); err != nil {
		return nil, err
	}
	if _, err := domain.ParseDifficulty(string(difficulty)); err != nil {
		return nil, err
	}

	prompt := &domain.Prompt{
		Kind:       kind,
		Text:       text,
		Difficulty: difficulty,
		Category:   category,
	}
	err := s.gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		if err := repos.Prompt.Create(ctx, prompt); err != nil {
			return &store.StorageError{Op: "create prompt", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prompt, nil
}

func (s *PromptService) ListPrompts(ctx context.Context, kind domain.ActionKind, limit, offset int) ([]*domain.Prompt, error) {
	if _, err := domain.ParseActionKind(string(kind)); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	var prompts []*domain.Prompt
	err := s.gateway.View(ctx, func(repos *repository.Repositories) error {
		found, err := repos.Prompt.List(ctx, kind, limit, offset)
		if err != nil {
			return &store.StorageError{Op: "list prompts", Err: err}
		}
		prompts = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prompts, nil
}
