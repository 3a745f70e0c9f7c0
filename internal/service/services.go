package service

import (
	"github.com/arash/truth-or-dare-bot/internal/config"
	"github.com/arash/truth-or-dare-bot/internal/store"
)

type Services struct {
	Auth    *AuthService
	User    *UserService
	Session *SessionService
	Action  *ActionService
	Prompt  *PromptService
	Stats   *StatsService
}

func NewServices(gateway *store.Gateway, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(cfg),
		User:    NewUserService(gateway, cfg.AdminIDs),
		Session: NewSessionService(gateway),
		Action:  NewActionService(gateway),
		Prompt:  NewPromptService(gateway),
		Stats:   NewStatsService(gateway),
	}
}
