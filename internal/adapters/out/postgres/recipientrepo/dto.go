// Package recipientrepo provides data transfer objects and mapping functions
// for recipient persistence. It implements the repository pattern for the
// recipient entity, converting between domain entities and database rows.
package recipientrepo

import (
	"github.com/google/uuid"

	"bananex/internal/core/domain/model/recipient"
)

// RecipientDTO represents the database structure for persisting recipients.
// The composite unique index over the five identity columns makes the
// duplicate-recipient invariant hold even under concurrent creation.
type RecipientDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null;uniqueIndex:idx_recipient_identity"`
	Address    string    `gorm:"not null;uniqueIndex:idx_recipient_identity"`
	PostalCode string    `gorm:"not null;uniqueIndex:idx_recipient_identity"`
	City       string    `gorm:"not null;uniqueIndex:idx_recipient_identity"`
	Country    string    `gorm:"not null;uniqueIndex:idx_recipient_identity"`
}

// TableName specifies the database table name for recipient records.
func (RecipientDTO) TableName() string {
	return "recipients"
}

// fromDomain converts a recipient entity to its database representation.
func fromDomain(rec *recipient.Recipient) RecipientDTO {
	return RecipientDTO{
		ID:         rec.ID(),
		Name:       rec.Name(),
		Address:    rec.Address(),
		PostalCode: rec.PostalCode(),
		City:       rec.City(),
		Country:    rec.Country(),
	}
}

// toDomain converts a database row to a recipient entity.
func toDomain(dto RecipientDTO) *recipient.Recipient {
	return recipient.Restore(dto.ID, dto.Name, dto.Address, dto.PostalCode, dto.City, dto.Country)
}
