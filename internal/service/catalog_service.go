package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"loycal/internal/domain"
)

type CatalogService struct {
	repo  CatalogRepository
	cache ProgramCache
}

func NewCatalogService(repo CatalogRepository, cache ProgramCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.NewString()
	}
	restaurant.CreatedAt = time.Now().UTC()
	return s.repo.CreateRestaurant(ctx, restaurant)
}

func (s *CatalogService) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now().UTC()
	return s.repo.CreateUser(ctx, user)
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	exists, err := s.repo.RestaurantExists(ctx, item.RestaurantID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRestaurantNotFound
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.CreatedAt = time.Now().UTC()
	return s.repo.CreateMenuItem(ctx, item)
}

func (s *CatalogService) ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, restaurantID)
}

// SetProgram upserts the restaurant's loyalty program and drops the cached
// copy so the next accrual sees the new ratio.
func (s *CatalogService) SetProgram(ctx context.Context, program *domain.LoyaltyProgram) error {
	exists, err := s.repo.RestaurantExists(ctx, program.RestaurantID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRestaurantNotFound
	}
	program.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpsertProgram(ctx, program); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, program.RestaurantID)
	}
	return nil
}

func (s *CatalogService) CreateReward(ctx context.Context, reward *domain.Reward) error {
	exists, err := s.repo.RestaurantExists(ctx, reward.RestaurantID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRestaurantNotFound
	}
	if reward.ID == "" {
		reward.ID = uuid.NewString()
	}
	reward.CreatedAt = time.Now().UTC()
	return s.repo.CreateReward(ctx, reward)
}

func (s *CatalogService) GetMembership(ctx context.Context, userID, restaurantID string) (*domain.Membership, error) {
	return s.repo.GetMembership(ctx, userID, restaurantID)
}
