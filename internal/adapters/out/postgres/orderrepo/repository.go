package orderrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bananex/internal/core/domain/model/order"
	"bananex/internal/core/ports"
	"bananex/internal/pkg/errs"
)

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// GetAll retrieves every stored order.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toDomain(dto))
	}
	return orders, nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}
	return toDomain(dto), nil
}

// Exists reports whether an order with the given identifier is stored.
func (r *GormOrderRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByRecipient retrieves all orders whose recipient snapshot carries the
// given recipient identifier.
func (r *GormOrderRepository) GetByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "recipient_id = ?", recipientID).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toDomain(dto))
	}
	return orders, nil
}

// Save persists the order, inserting or replacing the row by identifier.
// Create and update share this path.
func (r *GormOrderRepository) Save(ctx context.Context, ord *order.Order) error {
	dto := fromDomain(ord)
	return r.db.WithContext(ctx).Save(&dto).Error
}

// Delete removes the order with the given identifier.
// Deleting an absent identifier affects zero rows and is not an error.
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id).Error
}
