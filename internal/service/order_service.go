package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"loycal/internal/domain"
)

// fallbackSpendingRatio applies when a restaurant has no points program with a
// configured ratio.
const fallbackSpendingRatio = 1.5

type CreateOrderRequest struct {
	RestaurantID    string            `json:"restaurant_id"`
	CustomerID      string            `json:"customer_id,omitempty"`
	Type            domain.OrderType  `json:"type,omitempty"`
	TableLabel      string            `json:"table_label,omitempty"`
	AppliedRewardID string            `json:"applied_reward_id,omitempty"`
	Items           []CreateOrderItem `json:"items"`
}

type CreateOrderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type OrderService struct {
	repo      OrderRepository
	catalog   CatalogRepository
	cache     ProgramCache
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, catalog CatalogRepository, cache ProgramCache, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		repo:      repo,
		catalog:   catalog,
		cache:     cache,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// Create validates the request against the catalog and persists a pending
// order. Line prices come from the catalog, never from the caller.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	exists, err := s.catalog.RestaurantExists(ctx, req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve restaurant: %w", err)
	}
	if !exists {
		return nil, domain.ErrRestaurantNotFound
	}

	if req.CustomerID != "" {
		known, err := s.catalog.UserExists(ctx, req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve customer: %w", err)
		}
		if !known {
			return nil, domain.ErrCustomerNotFound
		}
	}

	if len(req.Items) == 0 {
		return nil, domain.ErrInvalidOrderItems
	}
	ids := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		if item.MenuItemID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidOrderItems
		}
		ids = append(ids, item.MenuItemID)
	}

	menuItems, err := s.catalog.FindMenuItems(ctx, ids, req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve menu items: %w", err)
	}
	byID := make(map[string]domain.MenuItem, len(menuItems))
	for _, mi := range menuItems {
		byID[mi.ID] = mi
	}

	var total float64
	lines := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		mi, ok := byID[item.MenuItemID]
		if !ok || !mi.Available {
			return nil, domain.ErrInvalidOrderItems
		}
		lines = append(lines, domain.OrderItem{
			MenuItemID: mi.ID,
			Name:       mi.Name,
			Quantity:   item.Quantity,
			UnitPrice:  mi.Price,
		})
		total += mi.Price * float64(item.Quantity)
	}

	if req.AppliedRewardID != "" {
		reward, err := s.catalog.GetReward(ctx, req.AppliedRewardID)
		if err != nil {
			return nil, err
		}
		// A reward from another restaurant is indistinguishable from a
		// missing one.
		if reward.RestaurantID != req.RestaurantID {
			return nil, domain.ErrRewardNotFound
		}
		total -= reward.DiscountAmount
		if total < 0 {
			total = 0
		}
	}

	orderType := req.Type
	if orderType == "" {
		orderType = domain.OrderDineIn
	}

	order := &domain.Order{
		ID:              uuid.NewString(),
		RestaurantID:    req.RestaurantID,
		CustomerID:      req.CustomerID,
		Type:            orderType,
		TableLabel:      req.TableLabel,
		AppliedRewardID: req.AppliedRewardID,
		Total:           total,
		Status:          domain.OrderPending,
		CreatedAt:       time.Now().UTC(),
		Items:           lines,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.qrEncoder != nil {
		if png, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveReceipt(ctx, order.ID, png)
		}
	}

	return order, nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, orderID)
}

func (s *OrderService) List(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx, restaurantID)
}

// Pay runs the pending→paid edge. The repository applies the status change,
// the visit insert and the membership increment in one transaction, so a
// rejected transition never accrues and accrual never half-applies.
func (s *OrderService) Pay(ctx context.Context, orderID, paymentMethod string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	switch order.Status {
	case domain.OrderPaid:
		return nil, domain.ErrAlreadyPaid
	case domain.OrderCancelled:
		return nil, domain.ErrOrderCancelled
	}

	var accrual *domain.Accrual
	if order.CustomerID != "" {
		ratio := s.spendingRatio(ctx, order.RestaurantID)
		accrual = &domain.Accrual{
			VisitID:      uuid.NewString(),
			UserID:       order.CustomerID,
			RestaurantID: order.RestaurantID,
			Amount:       order.Total,
			PointsEarned: int(math.Floor(order.Total * ratio)),
		}
	}

	if err := s.repo.MarkPaid(ctx, orderID, paymentMethod, accrual); err != nil {
		return nil, err
	}

	paid, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:          domain.EventOrderPaid,
			OrderID:       paid.ID,
			RestaurantID:  paid.RestaurantID,
			CustomerID:    paid.CustomerID,
			Total:         paid.Total,
			PaymentMethod: paid.PaymentMethod,
			Timestamp:     time.Now().UTC(),
		}
		if accrual != nil {
			event.PointsEarned = accrual.PointsEarned
		}
		for _, line := range paid.Items {
			event.Items = append(event.Items, domain.OrderEventItem{
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
			})
		}
		if err := s.publisher.PublishOrderPaid(ctx, event); err != nil {
			log.Printf("[pos-svc] warning: failed to publish order event for %s: %v", paid.ID, err)
		}
	}

	return paid, nil
}

// Transition is the single status-mutation path. Legal edges are
// pending→paid and pending→cancelled; paying through here carries the same
// accrual side effect as the pay endpoint.
func (s *OrderService) Transition(ctx context.Context, orderID string, target domain.OrderStatus) (*domain.Order, error) {
	switch target {
	case domain.OrderPaid:
		return s.Pay(ctx, orderID, "pos")
	case domain.OrderCancelled:
		if err := s.repo.MarkCancelled(ctx, orderID); err != nil {
			return nil, err
		}
		return s.repo.GetOrder(ctx, orderID)
	default:
		return nil, domain.ErrIllegalTransition
	}
}

func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	return s.repo.DeleteOrder(ctx, orderID)
}

func (s *OrderService) Receipt(ctx context.Context, orderID string) ([]byte, error) {
	png, err := s.repo.GetReceipt(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(png) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveReceipt(ctx, orderID, regenerated)
			return regenerated, nil
		}
	}
	return png, nil
}

func (s *OrderService) spendingRatio(ctx context.Context, restaurantID string) float64 {
	var program *domain.LoyaltyProgram
	if s.cache != nil {
		if cached, ok := s.cache.GetProgram(ctx, restaurantID); ok {
			program = cached
		}
	}
	if program == nil {
		loaded, err := s.catalog.GetProgram(ctx, restaurantID)
		if err != nil {
			return fallbackSpendingRatio
		}
		program = loaded
		if s.cache != nil {
			_ = s.cache.SetProgram(ctx, program)
		}
	}
	if program.Type != "points" || program.SpendingRatio <= 0 {
		return fallbackSpendingRatio
	}
	return program.SpendingRatio
}
