package service

import (
	"context"
	"errors"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/repository"
	"github.com/arash/truth-or-dare-bot/internal/store"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SessionService drives the session state machine:
// waiting → started → {ended, timeout}. Creator and turn checks re-read
// session state inside the gateway critical section immediately before
// mutating, so concurrent callers on the same session are serialized in
// lock-acquisition order.
type SessionService struct {
	gateway *store.Gateway
}

func NewSessionService(gateway *store.Gateway) *SessionService {
	return &SessionService{gateway: gateway}
}

func (s *SessionService) Create(ctx context.Context, creatorID int64, difficulty domain.Difficulty, mode domain.Mode) (*domain.Session, error) {
	if creatorID <= 0 {
		return nil, domain.ErrInvalidUserID
	}
	if _, err := domain.ParseDifficulty(string(difficulty)); err != nil {
		return nil, err
	}
	if _, err := domain.ParseMode(string(mode)); err != nil {
		return nil, err
	}

	now := time.Now()
	session := &domain.Session{
		CreatorID:     creatorID,
		Status:        domain.SessionStatusWaiting,
		Players:       datatypes.JSONSlice[int64]{creatorID},
		CurrentPlayer: creatorID,
		Difficulty:    difficulty,
		Mode:          mode,
		CreatedAt:     now,
		LastActivity:  now,
	}

	err := s.gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		if err := repos.Session.Create(ctx, session); err != nil {
			return &store.StorageError{Op: "create session", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Join appends the user to the participant list. Expected race outcomes
// (unknown session, wrong status, duplicate join) come back as sentinel
// errors, never as storage failures.
func (s *SessionService) Join(ctx context.Context, sessionID, userID int64) error {
	if userID <= 0 {
		return domain.ErrInvalidUserID
	}

	return s.gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		session, err := getSession(ctx, repos, sessionID)
		if err != nil {
			return err
		}
		if session.Status != domain.SessionStatusWaiting {
			return domain.ErrInvalidSessionState
		}
		if session.HasPlayer(userID) {
			return domain.ErrAlreadyJoined
		}

		session.Players = append(session.Players, userID)
		session.LastActivity = time.Now()
		if err := repos.Session.Update(ctx, session); err != nil {
			return &store.StorageError{Op: "join session", Err: err}
		}
		return nil
	})
}

// Start transitions waiting → started. Requires at least two participants
// and the caller to be the creator; the first entrant takes the first turn.
func (s *SessionService) Start(ctx context.Context, sessionID, callerID int64) error {
	return s.gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		session, err := getSession(ctx, repos, sessionID)
		if err != nil {
			return err
		}
		if session.CreatorID != callerID {
			return domain.ErrNotCreator
		}
		if session.Status != domain.SessionStatusWaiting {
			return domain.ErrInvalidSessionState
		}
		if len(session.Players) < 2 {
			return domain.ErrNotEnoughPlayers
		}

		session.Status = domain.SessionStatusStarted
		session.CurrentPlayer = session.Players[0]
		session.LastActivity = time.Now()
		if err := repos.Session.Update(ctx, session); err != nil {
			return &store.StorageError{Op: "start session", Err: err}
		}
		return nil
	})
}

// NextTurn advances the turn pointer to the circular successor of the
// current player and returns the new current player.
func (s *SessionService) NextTurn(ctx context.Context, sessionID int64) (int64, error) {
	var next int64
	err := s.gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		session, err := getSession(ctx, repos, sessionID)
		if err != nil {
			return err
		}

		n, ok := session.NextAfter(session.CurrentPlayer)
		if !ok {
			return domain.ErrNoParticipants
		}
		next = n

		session.CurrentPlayer = next
		session.LastActivity = time.Now()
		if err := repos.Session.Update(ctx, session); err != nil {
			return &store.StorageError{Op: "advance turn", Err: err}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

// End transitions an active session to ended and bumps every participant's
// games-played counter in the same transaction. A second call finds the
// session already terminal and refuses, so the counters move exactly once.
func (s *SessionService) End(ctx context.Context, sessionID, callerID int64) error {
	return s.gateway.Atomic(ctx, func(repos *repository.Repositories) error {
		session, err := getSession(ctx, repos, sessionID)
		if err != nil {
			return err
		}
		if session.CreatorID != callerID {
			return domain.ErrNotCreator
		}
		if !session.IsActive() {
			return domain.ErrSessionFinished
		}

		session.Status = domain.SessionStatusEnded
		session.LastActivity = time.Now()
		if err := repos.Session.Update(ctx, session); err != nil {
			return &store.StorageError{Op: "end session", Err: err}
		}
		if err := repos.User.IncrementGamesPlayed(ctx, session.Players); err != nil {
			return &store.StorageError{Op: "count played sessions", Err: err}
		}
		return nil
	})
}

func (s *SessionService) GetInfo(ctx context.Context, sessionID int64) (*domain.Session, error) {
	var session *domain.Session
	err := s.gateway.View(ctx, func(repos *repository.Repositories) error {
		found, err := getSession(ctx, repos, sessionID)
		if err != nil {
			return err
		}
		session = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func getSession(ctx context.Context, repos *repository.Repositories, sessionID int64) (*domain.Session, error) {
	session, err := repos.Session.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, &store.StorageError{Op: "load session", Err: err}
	}
	return session, nil
}
