package ports

import (
	"context"

	"github.com/google/uuid"

	"bananex/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders.
type OrderRepository interface {
	// GetAll retrieves every stored order, in store iteration order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Get retrieves an order by its unique identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id uuid.UUID) (*order.Order, error)

	// Exists reports whether an order with the given identifier is stored.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// GetByRecipient retrieves all orders owned by the given recipient.
	// A recipient with no orders yields an empty slice.
	GetByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*order.Order, error)

	// Save persists the order, inserting or replacing by identifier.
	// Create and update share this path, mirroring the single save
	// semantics of the order lifecycle.
	Save(ctx context.Context, ord *order.Order) error

	// Delete removes the order with the given identifier.
	// Deleting an absent identifier is a no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
