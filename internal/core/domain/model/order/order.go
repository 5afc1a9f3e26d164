package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bananex/internal/core/domain/model/recipient"
)

// Order represents a single banana shipment request to one recipient.
//
// The recipient is a value snapshot taken when the order was built, not a live
// reference: it carries the resolved recipient's identifier and postal identity
// as they were at that moment. Callers that care about freshness must re-resolve
// the recipient themselves.
//
// The price is never supplied by callers. It stays unset until the order domain
// service computes it from the banana quantity during Create/Update.
type Order struct {
	id             uuid.UUID
	recipient      recipient.Recipient
	deliveryDate   time.Time
	bananaQuantity int
	price          decimal.Decimal
	priced         bool
}

// NewOrder builds an order for the given recipient snapshot, delivery date and
// banana quantity in kilograms. No identifier and no price are assigned;
// both are set by the order domain service on Create.
func NewOrder(rec recipient.Recipient, deliveryDate time.Time, bananaQuantity int) *Order {
	return &Order{
		recipient:      rec,
		deliveryDate:   deliveryDate,
		bananaQuantity: bananaQuantity,
	}
}

// Restore rebuilds an order with a known identifier and computed price,
// either from storage or for an update that targets an existing record.
func Restore(id uuid.UUID, rec recipient.Recipient, deliveryDate time.Time, bananaQuantity int, price decimal.Decimal) *Order {
	return &Order{
		id:             id,
		recipient:      rec,
		deliveryDate:   deliveryDate,
		bananaQuantity: bananaQuantity,
		price:          price,
		priced:         true,
	}
}

// WithID returns a copy of the order carrying the given identifier.
// Used by the update path, where the target identifier comes from the caller.
func (o *Order) WithID(id uuid.UUID) *Order {
	clone := *o
	clone.id = id
	return &clone
}

// ID returns the order's unique identifier, uuid.Nil before persistence.
func (o *Order) ID() uuid.UUID {
	return o.id
}

// Recipient returns the recipient snapshot the order was built with.
func (o *Order) Recipient() recipient.Recipient {
	return o.recipient
}

// DeliveryDate returns the requested delivery date.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// BananaQuantity returns the ordered quantity in kilograms.
func (o *Order) BananaQuantity() int {
	return o.bananaQuantity
}

// Price returns the server-computed price and whether it has been computed.
func (o *Order) Price() (decimal.Decimal, bool) {
	return o.price, o.priced
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}
