package domain

import "time"

type OrderEventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// OrderEvent is published to Kafka after a payment commits. Reporting-only:
// publish failures never affect the request outcome.
type OrderEvent struct {
	Type          string           `json:"type"`
	OrderID       string           `json:"order_id"`
	RestaurantID  string           `json:"restaurant_id"`
	CustomerID    string           `json:"customer_id,omitempty"`
	Total         float64          `json:"total"`
	PointsEarned  int              `json:"points_earned"`
	PaymentMethod string           `json:"payment_method"`
	Items         []OrderEventItem `json:"items"`
	Timestamp     time.Time        `json:"timestamp"`
}

const EventOrderPaid = "order_paid"
