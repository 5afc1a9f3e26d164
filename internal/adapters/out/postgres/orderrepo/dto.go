// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// entity, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bananex/internal/core/domain/model/order"
	"bananex/internal/core/domain/model/recipient"
)

// OrderDTO represents the database structure for persisting orders.
// The recipient is embedded as a value snapshot taken at order-build time;
// deleting the recipient record leaves the snapshot intact.
type OrderDTO struct {
	ID             uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Recipient      RecipientSnapshotDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	DeliveryDate   time.Time            `gorm:"type:date;not null"`
	BananaQuantity int                  `gorm:"not null"`
	Price          decimal.Decimal      `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order records.
func (OrderDTO) TableName() string {
	return "orders"
}

// RecipientSnapshotDTO holds the recipient fields embedded in the order row.
// The id column is indexed to serve the list-by-recipient lookup.
type RecipientSnapshotDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Name       string
	Address    string
	PostalCode string
	City       string
	Country    string
}

// fromDomain converts an order entity to its database representation.
func fromDomain(ord *order.Order) OrderDTO {
	rec := ord.Recipient()
	price, _ := ord.Price()

	return OrderDTO{
		ID: ord.ID(),
		Recipient: RecipientSnapshotDTO{
			ID:         rec.ID(),
			Name:       rec.Name(),
			Address:    rec.Address(),
			PostalCode: rec.PostalCode(),
			City:       rec.City(),
			Country:    rec.Country(),
		},
		DeliveryDate:   ord.DeliveryDate(),
		BananaQuantity: ord.BananaQuantity(),
		Price:          price,
	}
}

// toDomain converts a database row to an order entity.
func toDomain(dto OrderDTO) *order.Order {
	rec := recipient.Restore(
		dto.Recipient.ID,
		dto.Recipient.Name,
		dto.Recipient.Address,
		dto.Recipient.PostalCode,
		dto.Recipient.City,
		dto.Recipient.Country,
	)
	return order.Restore(dto.ID, *rec, dto.DeliveryDate, dto.BananaQuantity, dto.Price)
}
