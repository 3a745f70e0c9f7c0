// Package seed loads the default prompt bank on first startup.
package seed

import (
	"context"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/repository"
	"github.com/arash/truth-or-dare-bot/internal/store"
	"github.com/rs/zerolog/log"
)

// EnsureDefaults inserts the built-in prompts when the bank is empty.
// A non-empty bank is left alone so admin-curated content survives restarts.
func EnsureDefaults(ctx context.Context, gateway *store.Gateway) error {
	var inserted int
	err := gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		truths, err := repos.Prompt.Count(ctx, domain.ActionTruth)
		if err != nil {
			return err
		}
		dares, err := repos.Prompt.Count(ctx, domain.ActionDare)
		if err != nil {
			return err
		}
		if truths > 0 || dares > 0 {
			return nil
		}

		for _, prompt := range defaultPrompts {
			p := prompt
			if err := repos.Prompt.Create(ctx, &p); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return err
	}
	if inserted > 0 {
		log.Info().Int("prompts", inserted).Msg("seeded default prompt bank")
	}
	return nil
}
