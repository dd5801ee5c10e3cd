package repository

import (
	"context"
	"database/sql"
	"time"

	"dishpoll/internal/models"
)

type Users interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type Dishes interface {
	List(ctx context.Context) ([]models.Dish, error)
	GetByID(ctx context.Context, id int) (*models.Dish, error)
	TopVoted(ctx context.Context) (*models.Dish, error)
	IncrementVotes(ctx context.Context, id int) (int64, error)
}

type Orders interface {
	Create(ctx context.Context, o models.Order) (int, error)
	GetByID(ctx context.Context, id int) (*models.Order, error)
}

type Activity interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error)
}

type Repository struct {
	Users    Users
	Dishes   Dishes
	Orders   Orders
	Activity Activity
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Dishes:   NewDishRepository(db),
		Orders:   NewOrderRepository(db),
		Activity: NewActivityRepository(db),
	}
}
