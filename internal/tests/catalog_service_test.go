package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"loycal/internal/domain"
	"loycal/internal/mocks"
	"loycal/internal/service"
)

func TestCatalogService_CreateMenuItem(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns_id_and_timestamp", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		repo.On("RestaurantExists", ctx, "r1").Return(true, nil).Once()
		repo.On("CreateMenuItem", ctx, mock.MatchedBy(func(item *domain.MenuItem) bool {
			return item.ID != "" && !item.CreatedAt.IsZero()
		})).Return(nil).Once()

		svc := service.NewCatalogService(repo, nil)
		item := &domain.MenuItem{RestaurantID: "r1", Name: "Burger", Price: 14.50, Available: true}
		assert.NoError(t, svc.CreateMenuItem(ctx, item))
		assert.NotEmpty(t, item.ID)
	})

	t.Run("unknown_restaurant", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		repo.On("RestaurantExists", ctx, "ghost").Return(false, nil).Once()

		svc := service.NewCatalogService(repo, nil)
		err := svc.CreateMenuItem(ctx, &domain.MenuItem{RestaurantID: "ghost", Name: "Burger"})
		assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
	})
}

func TestCatalogService_SetProgram_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewCatalogRepository(t)
	cache := mocks.NewProgramCache(t)

	repo.On("RestaurantExists", ctx, "r1").Return(true, nil).Once()
	repo.On("UpsertProgram", ctx, mock.MatchedBy(func(p *domain.LoyaltyProgram) bool {
		return p.RestaurantID == "r1" && !p.UpdatedAt.IsZero()
	})).Return(nil).Once()
	cache.On("Invalidate", ctx, "r1").Return(nil).Once()

	svc := service.NewCatalogService(repo, cache)
	err := svc.SetProgram(ctx, &domain.LoyaltyProgram{RestaurantID: "r1", Type: "points", SpendingRatio: 2.0})
	assert.NoError(t, err)
}

func TestCatalogService_CreateReward(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewCatalogRepository(t)

	repo.On("RestaurantExists", ctx, "r1").Return(true, nil).Once()
	repo.On("CreateReward", ctx, mock.MatchedBy(func(reward *domain.Reward) bool {
		// redemption cost in points and money discount stay distinct
		return reward.Cost == 100 && reward.DiscountAmount == 5.00
	})).Return(nil).Once()

	svc := service.NewCatalogService(repo, nil)
	err := svc.CreateReward(ctx, &domain.Reward{
		RestaurantID:   "r1",
		Name:           "Free side",
		Cost:           100,
		DiscountAmount: 5.00,
	})
	assert.NoError(t, err)
}

func TestCatalogService_GetMembership(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewCatalogRepository(t)

	repo.On("GetMembership", ctx, "u1", "r1").
		Return(&domain.Membership{UserID: "u1", RestaurantID: "r1", Points: 42}, nil).Once()

	svc := service.NewCatalogService(repo, nil)
	membership, err := svc.GetMembership(ctx, "u1", "r1")
	assert.NoError(t, err)
	assert.Equal(t, 42, membership.Points)
}
