// Package recipient provides the Recipient entity for the banana export system.
// A recipient is an export destination with a postal identity; no two recipients
// may share the identical (name, address, postal code, city, country) tuple.
package recipient

import (
	"github.com/google/uuid"
)

// Recipient represents an export destination. The identifier is assigned when
// the recipient is first persisted; all other fields form its postal identity.
//
// The struct uses private fields so a recipient can only be built through
// NewRecipient (identity not yet assigned) or Restore (reconstruction from
// storage or an explicit update carrying an existing identifier).
type Recipient struct {
	id         uuid.UUID
	name       string
	address    string
	postalCode string
	city       string
	country    string
}

// NewRecipient builds a recipient without an identifier, as submitted by a
// caller before persistence. Field validation is the responsibility of the
// recipient domain service, not the entity.
func NewRecipient(name, address, postalCode, city, country string) *Recipient {
	return &Recipient{
		name:       name,
		address:    address,
		postalCode: postalCode,
		city:       city,
		country:    country,
	}
}

// Restore rebuilds a recipient with a known identifier, either from storage
// or for an update that targets an existing record.
func Restore(id uuid.UUID, name, address, postalCode, city, country string) *Recipient {
	return &Recipient{
		id:         id,
		name:       name,
		address:    address,
		postalCode: postalCode,
		city:       city,
		country:    country,
	}
}

// ID returns the recipient's unique identifier.
// Returns uuid.Nil when the recipient has not been persisted yet.
func (r *Recipient) ID() uuid.UUID {
	return r.id
}

// Name returns the recipient's name.
func (r *Recipient) Name() string {
	return r.name
}

// Address returns the recipient's street address.
func (r *Recipient) Address() string {
	return r.address
}

// PostalCode returns the recipient's postal code.
func (r *Recipient) PostalCode() string {
	return r.postalCode
}

// City returns the recipient's city.
func (r *Recipient) City() string {
	return r.city
}

// Country returns the recipient's country.
func (r *Recipient) Country() string {
	return r.country
}

// IsEqual compares two recipients by their unique identifiers.
func (r *Recipient) IsEqual(other *Recipient) bool {
	return other != nil && r.id == other.id
}
