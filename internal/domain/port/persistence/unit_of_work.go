package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// WithinTransaction runs fn inside a transaction. It commits when fn returns
	// nil and rolls back when fn returns an error or panics.
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error

	// GetCardRepository returns a card repository bound to the transaction in ctx,
	// or to the plain connection when ctx carries none
	GetCardRepository(ctx context.Context) CardRepository
}
