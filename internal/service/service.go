package service

import (
	"context"
	"time"

	"dishpoll/internal/models"
	"dishpoll/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	Authenticate(ctx context.Context, username, password string) (int, error)
}

// Poll exposes the voting flow: dish listing, the weekly winner, and votes.
type Poll interface {
	ListDishes(ctx context.Context) ([]models.Dish, error)
	DishOfTheWeek(ctx context.Context) (*models.Dish, error)
	Vote(ctx context.Context, dishID int) error
}

// Orders exposes order placement and lookup.
type Orders interface {
	Place(ctx context.Context, p OrderParams) (*models.Order, error)
	Get(ctx context.Context, orderID int) (*models.Order, error)
}

// Activity exposes the append-only activity log with filtering access.
type Activity interface {
	List(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error)
}

// OrderParams carries the form inputs of an order submission.
type OrderParams struct {
	UserID          int
	DishID          int
	Quantity        int
	DeliveryAddress string
}

// ActivityFilter narrows the activity log by time range and/or event type.
type ActivityFilter struct {
	From time.Time
	To   time.Time
	Type string
}

type Service struct {
	Authorization
	Poll
	Orders
	Activity
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, repos.Activity),
		Poll:          NewPollService(repos.Dishes, repos.Activity),
		Orders:        NewOrderService(repos.Orders, repos.Dishes, repos.Activity),
		Activity:      NewActivityService(repos.Activity),
	}
}
