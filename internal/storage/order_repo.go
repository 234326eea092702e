package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"loycal/internal/domain"
)

type PostgresOrderRepository struct {
	DB *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

func (r *PostgresOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, restaurant_id, customer_id, order_type, table_label, applied_reward_id, total, status, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9)
	`, order.ID, order.RestaurantID, order.CustomerID, string(order.Type), order.TableLabel,
		order.AppliedRewardID, order.Total, string(order.Status), order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.MenuItemID, item.Name, item.Quantity, item.UnitPrice)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresOrderRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	var orderType, status string
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, COALESCE(customer_id, ''), order_type, COALESCE(table_label, ''),
		       COALESCE(applied_reward_id, ''), total, status, COALESCE(payment_method, ''), created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&order.ID, &order.RestaurantID, &order.CustomerID, &orderType, &order.TableLabel,
		&order.AppliedRewardID, &order.Total, &status, &order.PaymentMethod, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	order.Type = domain.OrderType(orderType)
	order.Status = domain.OrderStatus(status)

	items, err := r.orderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PostgresOrderRepository) ListOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, COALESCE(customer_id, ''), order_type, COALESCE(table_label, ''),
		       COALESCE(applied_reward_id, ''), total, status, COALESCE(payment_method, ''), created_at
		FROM orders
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var orderType, status string
		if err := rows.Scan(&order.ID, &order.RestaurantID, &order.CustomerID, &orderType, &order.TableLabel,
			&order.AppliedRewardID, &order.Total, &status, &order.PaymentMethod, &order.CreatedAt); err != nil {
			continue
		}
		order.Type = domain.OrderType(orderType)
		order.Status = domain.OrderStatus(status)
		orders = append(orders, order)
	}

	for i := range orders {
		items, err := r.orderItems(ctx, orders[i].ID)
		if err != nil {
			continue
		}
		orders[i].Items = items
	}

	return orders, nil
}

// MarkPaid applies the pending→paid transition, the visit insert and the
// membership increment in one transaction. The conditional UPDATE is the
// concurrency guard: two racing payments can both read pending, but only one
// can flip the row, so accrual runs at most once per order.
func (r *PostgresOrderRepository) MarkPaid(ctx context.Context, orderID, paymentMethod string, accrual *domain.Accrual) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = 'paid', payment_method = $2
		WHERE id = $1 AND status = 'pending'
	`, orderID, paymentMethod)
	if err != nil {
		return fmt.Errorf("mark paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return r.transitionConflict(ctx, tx, orderID)
	}

	if accrual != nil {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO visits (id, user_id, restaurant_id, amount, points_earned, validation_method, created_at)
			VALUES ($1, $2, $3, $4, $5, 'pos', now())
		`, accrual.VisitID, accrual.UserID, accrual.RestaurantID, accrual.Amount, accrual.PointsEarned)
		if err != nil {
			return fmt.Errorf("insert visit: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO memberships (id, user_id, restaurant_id, points, updated_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (user_id, restaurant_id)
			DO UPDATE SET points = memberships.points + EXCLUDED.points, updated_at = now()
		`, uuid.NewString(), accrual.UserID, accrual.RestaurantID, accrual.PointsEarned)
		if err != nil {
			return fmt.Errorf("update membership: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresOrderRepository) MarkCancelled(ctx context.Context, orderID string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE orders
		SET status = 'cancelled'
		WHERE id = $1 AND status = 'pending'
	`, orderID)
	if err != nil {
		return fmt.Errorf("mark cancelled: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists bool
		if err := r.DB.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return domain.ErrIllegalTransition
		}
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *PostgresOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM orders
		WHERE id = $1 AND status <> 'paid'
	`, orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists bool
		if err := r.DB.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return domain.ErrPaidOrderImmutable
		}
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *PostgresOrderRepository) SaveReceipt(ctx context.Context, orderID string, png []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET receipt_qr = $1 WHERE id = $2`, png, orderID)
	return err
}

func (r *PostgresOrderRepository) GetReceipt(ctx context.Context, orderID string) ([]byte, error) {
	var png []byte
	err := r.DB.QueryRowContext(ctx, `SELECT receipt_qr FROM orders WHERE id = $1`, orderID).Scan(&png)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return png, nil
}

func (r *PostgresOrderRepository) orderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT menu_item_id, name, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// transitionConflict explains why the conditional pay update matched no row.
func (r *PostgresOrderRepository) transitionConflict(ctx context.Context, tx *sql.Tx, orderID string) error {
	var status string
	err := tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1`, orderID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	switch domain.OrderStatus(status) {
	case domain.OrderPaid:
		return domain.ErrAlreadyPaid
	case domain.OrderCancelled:
		return domain.ErrOrderCancelled
	}
	return domain.ErrIllegalTransition
}
