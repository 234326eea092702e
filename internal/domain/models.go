package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeaway OrderType = "takeaway"
)

type Restaurant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
}

// Reward cost is the points a customer spends to claim it; DiscountAmount is
// the money subtracted from an order it is applied to. The two are never
// interchangeable.
type Reward struct {
	ID             string    `json:"id"`
	RestaurantID   string    `json:"restaurant_id"`
	Name           string    `json:"name"`
	Cost           int       `json:"cost"`
	DiscountAmount float64   `json:"discount_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// LoyaltyProgram is a per-restaurant singleton. SpendingRatio is points per
// unit of currency spent; zero means unset.
type LoyaltyProgram struct {
	RestaurantID  string    `json:"restaurant_id"`
	Type          string    `json:"type"`
	SpendingRatio float64   `json:"spending_ratio"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Order struct {
	ID              string      `json:"id"`
	RestaurantID    string      `json:"restaurant_id"`
	CustomerID      string      `json:"customer_id,omitempty"`
	Type            OrderType   `json:"type"`
	TableLabel      string      `json:"table_label,omitempty"`
	AppliedRewardID string      `json:"applied_reward_id,omitempty"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	PaymentMethod   string      `json:"payment_method,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `json:"items"`
}

type OrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

// Visit is the append-only audit record of a qualifying paid order.
type Visit struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	RestaurantID     string    `json:"restaurant_id"`
	Amount           float64   `json:"amount"`
	PointsEarned     int       `json:"points_earned"`
	ValidationMethod string    `json:"validation_method"`
	CreatedAt        time.Time `json:"created_at"`
}

type Membership struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	Points       int       `json:"points"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Accrual is the loyalty side effect executed inside the payment transaction.
type Accrual struct {
	VisitID      string
	UserID       string
	RestaurantID string
	Amount       float64
	PointsEarned int
}
