package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"loycal/internal/domain"
)

type PostgresCatalogRepository struct {
	DB *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

func (r *PostgresCatalogRepository) CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO restaurants (id, name, address, created_at)
		VALUES ($1, $2, $3, $4)
	`, restaurant.ID, restaurant.Name, restaurant.Address, restaurant.CreatedAt)
	return err
}

func (r *PostgresCatalogRepository) RestaurantExists(ctx context.Context, restaurantID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)`, restaurantID).Scan(&exists)
	return exists, err
}

func (r *PostgresCatalogRepository) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, name, created_at)
		VALUES ($1, $2, $3)
	`, user.ID, user.Name, user.CreatedAt)
	return err
}

func (r *PostgresCatalogRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresCatalogRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO menu_items (id, restaurant_id, name, category, price, available, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, item.ID, item.RestaurantID, item.Name, item.Category, item.Price, item.Available, item.CreatedAt)
	return err
}

func (r *PostgresCatalogRepository) ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(category, ''), price, available, created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Category,
			&item.Price, &item.Available, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// FindMenuItems resolves the ids within a single restaurant. Cross-restaurant
// ids simply do not resolve, which the caller treats as invalid input.
func (r *PostgresCatalogRepository) FindMenuItems(ctx context.Context, ids []string, restaurantID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(category, ''), price, available, created_at
		FROM menu_items
		WHERE id = ANY($1) AND restaurant_id = $2
	`, pq.Array(ids), restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Category,
			&item.Price, &item.Available, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresCatalogRepository) CreateReward(ctx context.Context, reward *domain.Reward) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO rewards (id, restaurant_id, name, cost, discount_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, reward.ID, reward.RestaurantID, reward.Name, reward.Cost, reward.DiscountAmount, reward.CreatedAt)
	return err
}

func (r *PostgresCatalogRepository) GetReward(ctx context.Context, rewardID string) (*domain.Reward, error) {
	var reward domain.Reward
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, name, cost, discount_amount, created_at
		FROM rewards
		WHERE id = $1
	`, rewardID).Scan(&reward.ID, &reward.RestaurantID, &reward.Name, &reward.Cost,
		&reward.DiscountAmount, &reward.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRewardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

func (r *PostgresCatalogRepository) GetProgram(ctx context.Context, restaurantID string) (*domain.LoyaltyProgram, error) {
	var program domain.LoyaltyProgram
	err := r.DB.QueryRowContext(ctx, `
		SELECT restaurant_id, type, COALESCE(spending_ratio, 0), updated_at
		FROM loyalty_programs
		WHERE restaurant_id = $1
	`, restaurantID).Scan(&program.RestaurantID, &program.Type, &program.SpendingRatio, &program.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProgramNotFound
	}
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *PostgresCatalogRepository) UpsertProgram(ctx context.Context, program *domain.LoyaltyProgram) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO loyalty_programs (restaurant_id, type, spending_ratio, updated_at)
		VALUES ($1, $2, NULLIF($3, 0), $4)
		ON CONFLICT (restaurant_id)
		DO UPDATE SET type = EXCLUDED.type, spending_ratio = EXCLUDED.spending_ratio, updated_at = EXCLUDED.updated_at
	`, program.RestaurantID, program.Type, program.SpendingRatio, program.UpdatedAt)
	return err
}

func (r *PostgresCatalogRepository) GetMembership(ctx context.Context, userID, restaurantID string) (*domain.Membership, error) {
	var membership domain.Membership
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, restaurant_id, points, updated_at
		FROM memberships
		WHERE user_id = $1 AND restaurant_id = $2
	`, userID, restaurantID).Scan(&membership.ID, &membership.UserID, &membership.RestaurantID,
		&membership.Points, &membership.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMembershipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &membership, nil
}
