package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each service call.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained from it run inside the transaction between Begin and
// Commit/Rollback; without Begin they execute against the main connection.
//
// The recipient create path relies on this: the duplicate-identity check and
// the insert must land in the same transaction so the uniqueness invariant
// holds under concurrent creation.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Rolling back after a commit is a no-op.
	Rollback(ctx context.Context) error

	// RecipientRepository returns a RecipientRepository bound to the
	// current transaction, if one is active.
	RecipientRepository() RecipientRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction, if one is active.
	OrderRepository() OrderRepository
}
