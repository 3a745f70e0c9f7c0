package service

import (
	"context"
	"errors"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/repository"
	"github.com/arash/truth-or-dare-bot/internal/store"
	"gorm.io/gorm"
)

// Points awarded for a completed action.
const (
	TruthPoints = 5
	DarePoints  = 10
)

// ActionService records turns and their outcomes. RecordAction re-checks
// the turn guard under the gateway lock; CompleteAction trusts the caller
// to have verified the acting player against the record (see GetTurn).
type ActionService struct {
	gateway *store.Gateway
}

func NewActionService(gateway *store.Gateway) *ActionService {
	return &ActionService{gateway: gateway}
}

// RecordAction bumps the served prompt's usage counter, inserts a turn
// record with the completion flag unset, refreshes session activity and
// returns the new record's id, all in one critical section.
func (s *ActionService) RecordAction(ctx context.Context, sessionID, playerID int64, kind domain.ActionKind, promptText string) (int64, error) {
	if _, err := domain.ParseActionKind(string(kind)); err != nil {
		return 0, err
	}

	record := &domain.TurnRecord{
		SessionID:  sessionID,
		PlayerID:   playerID,
		Kind:       kind,
		PromptText: promptText,
		CreatedAt:  time.Now(),
	}

	err := s.gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		session, err := getSession(ctx, repos, sessionID)
		if err != nil {
			return err
		}
		if session.Status != domain.SessionStatusStarted {
			return domain.ErrInvalidSessionState
		}
		if session.CurrentPlayer != playerID {
			return domain.ErrNotYourTurn
		}

		if err := repos.Prompt.IncrementUsage(ctx, kind, promptText); err != nil {
			return &store.StorageError{Op: "bump prompt usage", Err: err}
		}
		if err := repos.Turn.Create(ctx, record); err != nil {
			return &store.StorageError{Op: "record action", Err: err}
		}

		session.LastActivity = time.Now()
		if err := repos.Session.Update(ctx, session); err != nil {
			return &store.StorageError{Op: "refresh session activity", Err: err}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return record.ID, nil
}

// CompleteAction writes the completion flag exactly once and applies the
// acting player's counters: the chosen-kind counter always moves, points
// only when the action was done.
func (s *ActionService) CompleteAction(ctx context.Context, turnID int64, done bool) error {
	return s.gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		record, err := getTurn(ctx, repos, turnID)
		if err != nil {
			return err
		}
		if record.Completed != nil {
			return domain.ErrTurnAlreadyCompleted
		}

		if err := repos.Turn.SetCompleted(ctx, turnID, done); err != nil {
			return &store.StorageError{Op: "complete action", Err: err}
		}

		var truths, dares, points int
		switch record.Kind {
		case domain.ActionTruth:
			truths = 1
			if done {
				points = TruthPoints
			}
		case domain.ActionDare:
			dares = 1
			if done {
				points = DarePoints
			}
		}
		if err := repos.User.AddStats(ctx, record.PlayerID, truths, dares, points); err != nil {
			return &store.StorageError{Op: "update player stats", Err: err}
		}
		return nil
	})
}

// GetTurn serves the transport layer's ownership check before it calls
// CompleteAction.
func (s *ActionService) GetTurn(ctx context.Context, turnID int64) (*domain.TurnRecord, error) {
	var record *domain.TurnRecord
	err := s.gateway.View(ctx, func(repos *repository.Repositories) error {
		found, err := getTurn(ctx, repos, turnID)
		if err != nil {
			return err
		}
		record = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func getTurn(ctx context.Context, repos *repository.Repositories, turnID int64) (*domain.TurnRecord, error) {
	record, err := repos.Turn.GetByID(ctx, turnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTurnNotFound
		}
		return nil, &store.StorageError{Op: "load turn record", Err: err}
	}
	return record, nil
}
