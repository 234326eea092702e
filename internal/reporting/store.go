package reporting

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"loycal/internal/domain"
)

type Summary struct {
	RestaurantID string      `json:"restaurant_id"`
	Date         string      `json:"date"`
	Revenue      float64     `json:"revenue"`
	OrdersPaid   int         `json:"orders_paid"`
	TopItems     []ItemCount `json:"top_items"`
}

type ItemCount struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name,omitempty"`
	Count      int    `json:"count"`
}

// Store maintains paid-order aggregates in Redis with Postgres as the source
// of truth for fallback reads.
type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func revenueKey(date string) string { return "pos:revenue:" + date }
func ordersKey(date string) string  { return "pos:orders:" + date }
func topItemsKey(restaurantID string) string {
	return "pos:top:" + restaurantID
}

func (s *Store) RecordPaidOrder(event domain.OrderEvent) error {
	date := event.Timestamp.Format("2006-01-02")

	s.rdb.ZIncrBy(s.ctx, revenueKey(date), event.Total, event.RestaurantID)
	s.rdb.Expire(s.ctx, revenueKey(date), 7*24*time.Hour)

	s.rdb.ZIncrBy(s.ctx, ordersKey(date), 1, event.RestaurantID)
	s.rdb.Expire(s.ctx, ordersKey(date), 7*24*time.Hour)

	for _, item := range event.Items {
		s.rdb.ZIncrBy(s.ctx, topItemsKey(event.RestaurantID), float64(item.Quantity), item.MenuItemID)
	}

	return nil
}

func (s *Store) Summary(restaurantID string) (*Summary, error) {
	today := time.Now().Format("2006-01-02")

	revenue, errRevenue := s.rdb.ZScore(s.ctx, revenueKey(today), restaurantID).Result()
	orders, errOrders := s.rdb.ZScore(s.ctx, ordersKey(today), restaurantID).Result()
	if errRevenue != nil || errOrders != nil {
		return s.summaryFromDB(restaurantID, today)
	}

	summary := &Summary{
		RestaurantID: restaurantID,
		Date:         today,
		Revenue:      revenue,
		OrdersPaid:   int(orders),
	}

	top, err := s.rdb.ZRevRangeWithScores(s.ctx, topItemsKey(restaurantID), 0, 4).Result()
	if err != nil {
		return summary, nil
	}
	for _, member := range top {
		itemID, ok := member.Member.(string)
		if !ok {
			continue
		}
		item := ItemCount{MenuItemID: itemID, Count: int(member.Score)}
		var name string
		if err := s.db.QueryRow(`SELECT name FROM menu_items WHERE id = $1`, itemID).Scan(&name); err == nil {
			item.Name = name
		}
		summary.TopItems = append(summary.TopItems, item)
	}

	return summary, nil
}

func (s *Store) summaryFromDB(restaurantID, date string) (*Summary, error) {
	summary := &Summary{RestaurantID: restaurantID, Date: date}

	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM orders
		WHERE restaurant_id = $1 AND status = 'paid' AND created_at::date = CURRENT_DATE
	`, restaurantID).Scan(&summary.Revenue, &summary.OrdersPaid)
	if err != nil {
		return nil, fmt.Errorf("summary query: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT oi.menu_item_id, oi.name, SUM(oi.quantity) AS sold
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		WHERE o.restaurant_id = $1 AND o.status = 'paid'
		GROUP BY oi.menu_item_id, oi.name
		ORDER BY sold DESC
		LIMIT 5
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ItemCount
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Count); err != nil {
			continue
		}
		summary.TopItems = append(summary.TopItems, item)
	}

	return summary, nil
}
