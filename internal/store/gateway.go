package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/arash/truth-or-dare-bot/internal/repository"
	"github.com/arash/truth-or-dare-bot/internal/repository/sqlite"
	"gorm.io/gorm"
)

// Gateway owns the embedded store. Every read or write funnels through one
// process-wide critical section: a logical operation is one Atomic (or View)
// call, so read-modify-write sequences see and mutate a consistent session
// under a single lock acquisition. No other component holds the *gorm.DB.
type Gateway struct {
	mu sync.Mutex
	db *gorm.DB
}

func New(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Atomic runs fn inside the critical section and one transaction. The
// repositories handed to fn are bound to that transaction; a nil return
// commits, any error rolls back so no half-applied statement is ever
// visible to other callers.
func (g *Gateway) Atomic(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(sqlite.NewRepositories(tx))
	})
	if err != nil {
		return err
	}
	return nil
}

// View is Atomic for read-only work. It still serializes with writers so a
// reader never observes a mutation in flight.
func (g *Gateway) View(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	return g.Atomic(ctx, fn)
}

// StorageError marks a failure of the underlying store as opposed to a
// domain refusal. The cause is always carried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
