package service

import (
	"context"

	"loycal/internal/domain"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, restaurantID string) ([]domain.Order, error)
	MarkPaid(ctx context.Context, orderID, paymentMethod string, accrual *domain.Accrual) error
	MarkCancelled(ctx context.Context, orderID string) error
	DeleteOrder(ctx context.Context, orderID string) error
	SaveReceipt(ctx context.Context, orderID string, png []byte) error
	GetReceipt(ctx context.Context, orderID string) ([]byte, error)
}

type CatalogRepository interface {
	CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error
	RestaurantExists(ctx context.Context, restaurantID string) (bool, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	FindMenuItems(ctx context.Context, ids []string, restaurantID string) ([]domain.MenuItem, error)
	CreateUser(ctx context.Context, user *domain.User) error
	UserExists(ctx context.Context, userID string) (bool, error)
	GetReward(ctx context.Context, rewardID string) (*domain.Reward, error)
	CreateReward(ctx context.Context, reward *domain.Reward) error
	GetProgram(ctx context.Context, restaurantID string) (*domain.LoyaltyProgram, error)
	UpsertProgram(ctx context.Context, program *domain.LoyaltyProgram) error
	GetMembership(ctx context.Context, userID, restaurantID string) (*domain.Membership, error)
}

type ProgramCache interface {
	GetProgram(ctx context.Context, restaurantID string) (*domain.LoyaltyProgram, bool)
	SetProgram(ctx context.Context, program *domain.LoyaltyProgram) error
	Invalidate(ctx context.Context, restaurantID string) error
}

type OrderPublisher interface {
	PublishOrderPaid(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	List(ctx context.Context, restaurantID string) ([]domain.Order, error)
	Pay(ctx context.Context, orderID, paymentMethod string) (*domain.Order, error)
	Transition(ctx context.Context, orderID string, target domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, orderID string) error
	Receipt(ctx context.Context, orderID string) ([]byte, error)
}

type CatalogServiceInterface interface {
	CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error
	CreateUser(ctx context.Context, user *domain.User) error
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	SetProgram(ctx context.Context, program *domain.LoyaltyProgram) error
	CreateReward(ctx context.Context, reward *domain.Reward) error
	GetMembership(ctx context.Context, userID, restaurantID string) (*domain.Membership, error)
}

var _ OrderServiceInterface = (*OrderService)(nil)
var _ CatalogServiceInterface = (*CatalogService)(nil)
