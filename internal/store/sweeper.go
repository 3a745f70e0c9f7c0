package store

import (
	"context"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/repository"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Sweeper reaps idle sessions: on a fixed interval it transitions any
// waiting or started session whose last activity is older than maxIdle to
// timeout. It is the only component allowed to perform that bulk
// transition, and it takes the same gateway lock as foreground operations,
// so it is serialized with them rather than concurrent.
type Sweeper struct {
	gateway   *Gateway
	interval  time.Duration
	maxIdle   time.Duration
	scheduler gocron.Scheduler
}

func NewSweeper(gateway *Gateway, interval, maxIdle time.Duration) *Sweeper {
	return &Sweeper{
		gateway:  gateway,
		interval: interval,
		maxIdle:  maxIdle,
	}
}

func (s *Sweeper) Start() error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			expired, err := s.RunOnce(context.Background())
			if err != nil {
				log.Error().Err(err).Msg("session sweep failed")
				return
			}
			if expired > 0 {
				log.Info().Int64("expired", expired).Msg("idle sessions timed out")
			}
		}),
	)
	if err != nil {
		return err
	}

	s.scheduler = scheduler
	scheduler.Start()
	return nil
}

// RunOnce performs a single sweep and returns how many sessions expired.
func (s *Sweeper) RunOnce(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.maxIdle)
	var expired int64
	err := s.gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		n, err := repos.Session.ExpireIdle(ctx, cutoff)
		if err != nil {
			return &StorageError{Op: "expire idle sessions", Err: err}
		}
		expired = n
		return nil
	})
	return expired, err
}

func (s *Sweeper) Stop() error {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Shutdown()
}
