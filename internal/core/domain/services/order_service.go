package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bananex/internal/core/domain/model/order"
	"bananex/internal/core/ports"
	"bananex/internal/pkg/errs"
)

// Quantity constraints for a banana order, in kilograms.
// Bananas ship in fixed 25 kg boxes; an order holds at most 400 boxes.
const (
	BoxWeightKg     = 25
	MinQuantityKg   = 25
	MaxQuantityKg   = 10_000
	minLeadTimeDays = 7
)

// pricePerKg is the fixed export rate applied to every order.
var pricePerKg = decimal.New(250, -2) // 2.50

// Price derives the order price from the banana quantity in kilograms.
// The formula is fixed and deterministic: quantity multiplied by the
// per-kilogram rate, with two fractional digits.
func Price(bananaQuantityKg int) decimal.Decimal {
	return decimal.NewFromInt(int64(bananaQuantityKg)).Mul(pricePerKg).Round(2)
}

// OrderService validates, prices, and persists banana orders.
//
// Validate and Create are deliberately separate operations: Create always
// recomputes the price and persists, trusting the caller to have validated
// first. Update is the identical path applied to an order that already
// carries its identifier.
type OrderService struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewOrderService creates an OrderService backed by the given
// unit-of-work factory.
func NewOrderService(uowFactory ports.UnitOfWorkFactory) OrderService {
	return OrderService{uowFactory: uowFactory}
}

// ListAll returns all stored orders, in store iteration order.
func (s OrderService) ListAll(ctx context.Context) ([]*order.Order, error) {
	return s.uowFactory.Create().OrderRepository().GetAll(ctx)
}

// GetByID returns the order with the given identifier, or (nil, nil) when no
// such order exists. Absence is a valid outcome, not an error.
func (s OrderService) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	ord, err := s.uowFactory.Create().OrderRepository().Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ord, nil
}

// ExistsByID reports whether an order with the given identifier is stored.
func (s OrderService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.uowFactory.Create().OrderRepository().Exists(ctx, id)
}

// ListByRecipient returns all orders owned by the given recipient. When the
// recipient does not exist the result is an empty slice, not an error;
// recipient existence checking is the caller's responsibility.
func (s OrderService) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*order.Order, error) {
	uow := s.uowFactory.Create()

	if _, err := uow.RecipientRepository().Get(ctx, recipientID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return []*order.Order{}, nil
		}
		return nil, err
	}

	return uow.OrderRepository().GetByRecipient(ctx, recipientID)
}

// Validate enforces the order business rules, stopping at the first
// violation:
//
//  1. the delivery date is present
//  2. the delivery date is at least one week in the future (inclusive)
//  3. the banana quantity is present
//  4. the quantity is at least 25 kg
//  5. the quantity is a multiple of the 25 kg box size
//  6. the quantity does not exceed 10,000 kg (400 boxes)
//
// Create does not invoke Validate itself; callers run it as an explicit
// prerequisite step.
func (s OrderService) Validate(ord *order.Order) error {
	if ord.DeliveryDate().IsZero() {
		return errs.NewValueIsRequiredError("the order must have a delivery date")
	}

	minDeliveryDate := dateOnly(time.Now()).AddDate(0, 0, minLeadTimeDays)
	if dateOnly(ord.DeliveryDate()).Before(minDeliveryDate) {
		return errs.NewValueIsInvalidError(
			"the delivery date must be, at least, one week in the future compared to the current date")
	}

	quantity := ord.BananaQuantity()
	if quantity == 0 {
		return errs.NewValueIsRequiredError("the order must have a quantity of bananas")
	}
	if quantity < MinQuantityKg {
		return errs.NewValueIsInvalidError("the minimum quantity of bananas is 25 kg")
	}
	if quantity%BoxWeightKg != 0 {
		return errs.NewValueIsInvalidError("the quantity must come by boxes (25 kg per box)")
	}
	if quantity > MaxQuantityKg {
		return errs.NewValueIsInvalidError("an order cannot contain more than 10,000 kg (400 boxes)")
	}

	return nil
}

// Create computes the order price from its quantity, overwriting anything the
// caller set, persists the order, and returns the stored record. An order
// without an identifier gets one assigned; an order carrying one is replaced
// in place, which makes Update the identical path.
func (s OrderService) Create(ctx context.Context, ord *order.Order) (*order.Order, error) {
	id := ord.ID()
	if id == uuid.Nil {
		id = uuid.New()
	}

	stored := order.Restore(
		id,
		ord.Recipient(),
		ord.DeliveryDate(),
		ord.BananaQuantity(),
		Price(ord.BananaQuantity()),
	)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Save(ctx, stored); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return stored, nil
}

// Update re-prices and persists the full order payload. The identifier is
// expected to already be set on the incoming order.
func (s OrderService) Update(ctx context.Context, ord *order.Order) (*order.Order, error) {
	return s.Create(ctx, ord)
}

// DeleteByID removes the order with the given identifier.
// Deleting an absent identifier is a no-op.
func (s OrderService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.uowFactory.Create().OrderRepository().Delete(ctx, id)
}

// dateOnly truncates a timestamp to its calendar date in the timestamp's
// own location, normalized to UTC midnight for comparison.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
