package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"dishpoll/internal/models"
	"dishpoll/internal/repository"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrEmptyAddress    = errors.New("delivery address is required")
)

type OrderService struct {
	orders   repository.Orders
	dishes   repository.Dishes
	activity repository.Activity
}

func NewOrderService(orders repository.Orders, dishes repository.Dishes, activity repository.Activity) *OrderService {
	return &OrderService{orders: orders, dishes: dishes, activity: activity}
}

// roundToCents keeps currency-scale totals exact (9.50 × 2 = 19.00, not
// 18.999999...).
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Place validates the submission, computes the total from the dish's current
// cost, and persists the order. The total is stored, never recomputed.
func (s *OrderService) Place(ctx context.Context, p OrderParams) (*models.Order, error) {
	if p.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	address := strings.TrimSpace(p.DeliveryAddress)
	if address == "" {
		return nil, ErrEmptyAddress
	}

	dish, err := s.dishes.GetByID(ctx, p.DishID)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, ErrDishNotFound
	}

	order := models.Order{
		UserID:          p.UserID,
		DishID:          dish.ID,
		Quantity:        p.Quantity,
		TotalCost:       roundToCents(dish.Cost * float64(p.Quantity)),
		DeliveryAddress: address,
		CreatedAt:       time.Now().UTC(),
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	if err := s.activity.Append(ctx, models.ActivityEvent{
		Type:        "ORDER",
		Description: fmt.Sprintf("Order %d placed for dish %q", id, dish.Name),
		Metadata: map[string]any{
			"order_id":   id,
			"user_id":    p.UserID,
			"dish_id":    dish.ID,
			"quantity":   p.Quantity,
			"total_cost": order.TotalCost,
		},
	}); err != nil {
		return nil, err
	}
	return &order, nil
}

// Get fetches a single order by id.
func (s *OrderService) Get(ctx context.Context, orderID int) (*models.Order, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}
