package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dishpoll/internal/models"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ Orders = (*OrderRepository)(nil)

const (
	insertOrderSQL = `INSERT INTO orders (user_id, dish_id, quantity, total_cost, delivery_address, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	selectOrderByIDSQL = `SELECT id, user_id, dish_id, quantity, total_cost, delivery_address, created_at FROM orders WHERE id = ?`
)

// Create inserts a new order and returns its ID. CreatedAt is persisted as
// UTC; set if zero.
func (r *OrderRepository) Create(ctx context.Context, o models.Order) (int, error) {
	ts := o.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertOrderSQL,
		o.UserID,
		o.DishID,
		o.Quantity,
		o.TotalCost,
		o.DeliveryAddress,
		ts,
	)
	if err != nil {
		return 0, fmt.Errorf("insert order for user %d: %w", o.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for order: %w", err)
	}
	return int(lastID), nil
}

// GetByID fetches an order by id. Returns (nil, nil) if not found.
func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	var o models.Order
	err := r.db.QueryRowContext(ctx, selectOrderByIDSQL, id).
		Scan(&o.ID, &o.UserID, &o.DishID, &o.Quantity, &o.TotalCost, &o.DeliveryAddress, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select order %d: %w", id, err)
	}
	o.CreatedAt = o.CreatedAt.UTC()
	return &o, nil
}
