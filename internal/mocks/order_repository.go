package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"loycal/internal/domain"
)

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) ListOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) MarkPaid(ctx context.Context, orderID, paymentMethod string, accrual *domain.Accrual) error {
	args := m.Called(ctx, orderID, paymentMethod, accrual)
	return args.Error(0)
}

func (m *OrderRepository) MarkCancelled(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepository) SaveReceipt(ctx context.Context, orderID string, png []byte) error {
	args := m.Called(ctx, orderID, png)
	return args.Error(0)
}

func (m *OrderRepository) GetReceipt(ctx context.Context, orderID string) ([]byte, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
