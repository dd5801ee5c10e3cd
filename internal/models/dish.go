package models

// Dish is a menu item visitors can vote for and order.
// Dishes are seeded at startup; the only mutation is the vote counter.
type Dish struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	DeliveryInfo string  `json:"delivery_info"`
	Cost         float64 `json:"cost"`
	Votes        int     `json:"votes"`
}
