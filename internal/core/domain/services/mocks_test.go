package services_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bananex/internal/core/domain/model/order"
	"bananex/internal/core/domain/model/recipient"
	"bananex/internal/core/ports"
)

// Mock implementations for testing.
type MockRecipientRepository struct {
	mock.Mock
}

func (m *MockRecipientRepository) GetAll(ctx context.Context) ([]*recipient.Recipient, error) {
	args := m.Called(ctx)
	if recs, ok := args.Get(0).([]*recipient.Recipient); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecipientRepository) Get(ctx context.Context, id uuid.UUID) (*recipient.Recipient, error) {
	args := m.Called(ctx, id)
	if rec, ok := args.Get(0).(*recipient.Recipient); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecipientRepository) ExistsByIdentity(ctx context.Context, identity ports.RecipientIdentity) (bool, error) {
	args := m.Called(ctx, identity)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecipientRepository) Add(ctx context.Context, rec *recipient.Recipient) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecipientRepository) Update(ctx context.Context, rec *recipient.Recipient) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecipientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if ord, ok := args.Get(0).(*order.Order); ok {
		return ord, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, recipientID)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, ord *order.Order) error {
	args := m.Called(ctx, ord)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

// newMockUoW wires a factory and unit of work around the given repositories,
// with transaction control defaulting to success.
func newMockUoW(recipients *MockRecipientRepository, orders *MockOrderRepository) (*MockUnitOfWorkFactory, *MockUnitOfWork) {
	uow := new(MockUnitOfWork)
	if recipients != nil {
		uow.On("RecipientRepository").Return(recipients).Maybe()
	}
	if orders != nil {
		uow.On("OrderRepository").Return(orders).Maybe()
	}
	uow.On("Begin", mock.Anything).Return(nil).Maybe()
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Maybe()
	return factory, uow
}
