// Package postgres provides the GORM-based implementation of the unit of work.
//
// A unit of work brackets one business transaction: repositories obtained from
// it run inside the transaction between Begin and Commit/Rollback, and against
// the main connection otherwise. The recipient create path depends on this —
// the duplicate-identity check and the insert must commit atomically, backed
// further by the composite unique index on the recipient identity columns.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"bananex/internal/adapters/out/postgres/orderrepo"
	"bananex/internal/adapters/out/postgres/recipientrepo"
	"bananex/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM handle.
// Each business operation gets a fresh unit of work with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork implements ports.UnitOfWork on top of a GORM transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new database transaction.
// Returns gorm.ErrInvalidTransaction when one is already active.
func (uow *GormUnitOfWork) Begin(_ context.Context) error {
	if uow.tx != nil {
		return gorm.ErrInvalidTransaction
	}

	tx := uow.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit commits the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback rolls back the current transaction. Rolling back when no
// transaction is active is a no-op, so it is safe to defer unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// RecipientRepository returns a recipient repository bound to the current
// transaction if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) RecipientRepository() ports.RecipientRepository {
	return recipientrepo.NewGormRecipientRepository(uow.handle())
}

// OrderRepository returns an order repository bound to the current
// transaction if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.handle())
}

func (uow *GormUnitOfWork) handle() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
