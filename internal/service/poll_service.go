package service

import (
	"context"
	"errors"
	"strconv"

	"dishpoll/internal/models"
	"dishpoll/internal/repository"
)

var (
	ErrDishNotFound = errors.New("dish not found")
	ErrNoDishes     = errors.New("no dishes available")
)

type PollService struct {
	dishes   repository.Dishes
	activity repository.Activity
}

func NewPollService(dishes repository.Dishes, activity repository.Activity) *PollService {
	return &PollService{dishes: dishes, activity: activity}
}

// ListDishes returns every dish for the poll page.
func (s *PollService) ListDishes(ctx context.Context) ([]models.Dish, error) {
	return s.dishes.List(ctx)
}

// DishOfTheWeek returns the dish with the highest vote count at query time.
// Ties resolve to the lowest dish id.
func (s *PollService) DishOfTheWeek(ctx context.Context) (*models.Dish, error) {
	d, err := s.dishes.TopVoted(ctx)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNoDishes
	}
	return d, nil
}

// Vote increments the dish's vote counter by exactly 1. The increment is a
// single UPDATE, so concurrent votes never lose counts.
func (s *PollService) Vote(ctx context.Context, dishID int) error {
	affected, err := s.dishes.IncrementVotes(ctx, dishID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDishNotFound
	}

	return s.activity.Append(ctx, models.ActivityEvent{
		Type:        "VOTE",
		Description: "Vote cast for dish " + strconv.Itoa(dishID),
		Metadata:    map[string]any{"dish_id": dishID},
	})
}
