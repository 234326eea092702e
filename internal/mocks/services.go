package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"loycal/internal/domain"
	"loycal/internal/service"
)

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) Create(ctx context.Context, req service.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) List(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) Pay(ctx context.Context, orderID, paymentMethod string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, paymentMethod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) Transition(ctx context.Context, orderID string, target domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, orderID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) Delete(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderServiceInterface) Receipt(ctx context.Context, orderID string) ([]byte, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogServiceInterface) CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *CatalogServiceInterface) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *CatalogServiceInterface) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CatalogServiceInterface) ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *CatalogServiceInterface) SetProgram(ctx context.Context, program *domain.LoyaltyProgram) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *CatalogServiceInterface) CreateReward(ctx context.Context, reward *domain.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}

func (m *CatalogServiceInterface) GetMembership(ctx context.Context, userID, restaurantID string) (*domain.Membership, error) {
	args := m.Called(ctx, userID, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}
