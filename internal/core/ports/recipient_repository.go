// Package ports defines repository and unit-of-work interfaces for the banana
// export domain. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/google/uuid"

	"bananex/internal/core/domain/model/recipient"
)

// RecipientIdentity is the five-field tuple that uniquely identifies a
// recipient. The store enforces uniqueness over this tuple.
type RecipientIdentity struct {
	Name       string
	Address    string
	PostalCode string
	City       string
	Country    string
}

// RecipientRepository defines the persistence contract for recipients.
type RecipientRepository interface {
	// GetAll retrieves every stored recipient, in store iteration order.
	GetAll(ctx context.Context) ([]*recipient.Recipient, error)

	// Get retrieves a recipient by its unique identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id uuid.UUID) (*recipient.Recipient, error)

	// ExistsByIdentity reports whether a recipient with the exact
	// five-field identity tuple is already stored.
	ExistsByIdentity(ctx context.Context, identity RecipientIdentity) (bool, error)

	// Add persists a new recipient. The identifier must already be assigned.
	Add(ctx context.Context, rec *recipient.Recipient) error

	// Update replaces the stored record matching the recipient's identifier.
	Update(ctx context.Context, rec *recipient.Recipient) error

	// Delete removes the recipient with the given identifier.
	// Deleting an absent identifier is a no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
