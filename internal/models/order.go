package models

import "time"

// Order is immutable once created. TotalCost is computed at creation time
// (dish cost × quantity) and never recomputed.
type Order struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	DishID          int       `json:"dish_id"`
	Quantity        int       `json:"quantity"`
	TotalCost       float64   `json:"total_cost"`
	DeliveryAddress string    `json:"delivery_address"`
	CreatedAt       time.Time `json:"created_at"`
}
