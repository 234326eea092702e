package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"loycal/internal/domain"
)

type CatalogRepository struct {
	mock.Mock
}

func NewCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogRepository) CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *CatalogRepository) RestaurantExists(ctx context.Context, restaurantID string) (bool, error) {
	args := m.Called(ctx, restaurantID)
	return args.Bool(0), args.Error(1)
}

func (m *CatalogRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *CatalogRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *CatalogRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CatalogRepository) ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *CatalogRepository) FindMenuItems(ctx context.Context, ids []string, restaurantID string) ([]domain.MenuItem, error) {
	args := m.Called(ctx, ids, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *CatalogRepository) CreateReward(ctx context.Context, reward *domain.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}

func (m *CatalogRepository) GetReward(ctx context.Context, rewardID string) (*domain.Reward, error) {
	args := m.Called(ctx, rewardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reward), args.Error(1)
}

func (m *CatalogRepository) GetProgram(ctx context.Context, restaurantID string) (*domain.LoyaltyProgram, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoyaltyProgram), args.Error(1)
}

func (m *CatalogRepository) UpsertProgram(ctx context.Context, program *domain.LoyaltyProgram) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *CatalogRepository) GetMembership(ctx context.Context, userID, restaurantID string) (*domain.Membership, error) {
	args := m.Called(ctx, userID, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}
