package service

import (
	"context"
	"time"

	"dishpoll/internal/models"
)

// Lightweight in-test mocks for the repository interfaces.

type mockUserRepo struct {
	CreateFn        func(username, hash string) (int, error)
	GetByUsernameFn func(username string) (*models.User, error)

	createCalls []struct {
		username string
		hash     string
	}
	getCalls []string
}

func (m *mockUserRepo) Create(username, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		hash     string
	}{username: username, hash: hash})
	return m.CreateFn(username, hash)
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

type mockDishRepo struct {
	ListFn           func(ctx context.Context) ([]models.Dish, error)
	GetByIDFn        func(ctx context.Context, id int) (*models.Dish, error)
	TopVotedFn       func(ctx context.Context) (*models.Dish, error)
	IncrementVotesFn func(ctx context.Context, id int) (int64, error)

	incrementCalls []int
}

func (m *mockDishRepo) List(ctx context.Context) ([]models.Dish, error) {
	return m.ListFn(ctx)
}

func (m *mockDishRepo) GetByID(ctx context.Context, id int) (*models.Dish, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockDishRepo) TopVoted(ctx context.Context) (*models.Dish, error) {
	return m.TopVotedFn(ctx)
}

func (m *mockDishRepo) IncrementVotes(ctx context.Context, id int) (int64, error) {
	m.incrementCalls = append(m.incrementCalls, id)
	return m.IncrementVotesFn(ctx, id)
}

type mockOrderRepo struct {
	CreateFn  func(ctx context.Context, o models.Order) (int, error)
	GetByIDFn func(ctx context.Context, id int) (*models.Order, error)

	createCalls []models.Order
}

func (m *mockOrderRepo) Create(ctx context.Context, o models.Order) (int, error) {
	m.createCalls = append(m.createCalls, o)
	return m.CreateFn(ctx, o)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int) (*models.Order, error) {
	return m.GetByIDFn(ctx, id)
}

type mockActivityRepo struct {
	appendErr error
	listResp  []models.ActivityEvent
	listErr   error

	appended []models.ActivityEvent
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockActivityRepo) Append(ctx context.Context, e models.ActivityEvent) error {
	m.appended = append(m.appended, e)
	return m.appendErr
}

func (m *mockActivityRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	m.lastFrom = from
	m.lastTo = to
	m.lastType = typ
	return m.listResp, m.listErr
}
