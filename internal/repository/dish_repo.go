package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dishpoll/internal/models"
)

type DishRepository struct {
	db *sql.DB
}

func NewDishRepository(db *sql.DB) *DishRepository {
	return &DishRepository{db: db}
}

var _ Dishes = (*DishRepository)(nil)

const (
	selectDishesSQL = `SELECT id, name, description, delivery_info, cost, votes FROM dishes ORDER BY id ASC`

	selectDishByIDSQL = `SELECT id, name, description, delivery_info, cost, votes FROM dishes WHERE id = ?`

	// Tie-break for "dish of the week": highest vote count first, lowest id
	// wins among equals, so the winner is stable across queries.
	selectTopVotedDishSQL = `SELECT id, name, description, delivery_info, cost, votes FROM dishes ORDER BY votes DESC, id ASC LIMIT 1`

	// Single-statement increment; atomic against concurrent voters.
	incrementVotesSQL = `UPDATE dishes SET votes = votes + 1 WHERE id = ?`
)

// List returns all dishes in id order.
func (r *DishRepository) List(ctx context.Context) ([]models.Dish, error) {
	rows, err := r.db.QueryContext(ctx, selectDishesSQL)
	if err != nil {
		return nil, fmt.Errorf("select dishes: %w", err)
	}
	defer rows.Close()

	out := make([]models.Dish, 0, 16)
	for rows.Next() {
		var d models.Dish
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.DeliveryInfo, &d.Cost, &d.Votes); err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a dish by id. Returns (nil, nil) if not found.
func (r *DishRepository) GetByID(ctx context.Context, id int) (*models.Dish, error) {
	var d models.Dish
	err := r.db.QueryRowContext(ctx, selectDishByIDSQL, id).
		Scan(&d.ID, &d.Name, &d.Description, &d.DeliveryInfo, &d.Cost, &d.Votes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select dish %d: %w", id, err)
	}
	return &d, nil
}

// TopVoted returns the dish with the most votes. Returns (nil, nil) when the
// table is empty.
func (r *DishRepository) TopVoted(ctx context.Context) (*models.Dish, error) {
	var d models.Dish
	err := r.db.QueryRowContext(ctx, selectTopVotedDishSQL).
		Scan(&d.ID, &d.Name, &d.Description, &d.DeliveryInfo, &d.Cost, &d.Votes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select top voted dish: %w", err)
	}
	return &d, nil
}

// IncrementVotes bumps the vote counter by exactly 1 and reports how many
// rows were touched (0 means the dish does not exist).
func (r *DishRepository) IncrementVotes(ctx context.Context, id int) (int64, error) {
	res, err := r.db.ExecContext(ctx, incrementVotesSQL, id)
	if err != nil {
		return 0, fmt.Errorf("increment votes for dish %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for dish %d: %w", id, err)
	}
	return affected, nil
}
