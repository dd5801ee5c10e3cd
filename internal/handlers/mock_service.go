package handlers

import (
	"context"

	"dishpoll/internal/models"
	"dishpoll/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID  int
	signUpErr error
	authID    int
	authErr   error

	lastSignUpUsername string
	lastSignUpPassword string
	lastAuthUsername   string
	lastAuthPassword   string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) Authenticate(ctx context.Context, username, password string) (int, error) {
	m.lastAuthUsername = username
	m.lastAuthPassword = password
	return m.authID, m.authErr
}

type mockPoll struct {
	dishes  []models.Dish
	listErr error
	top     *models.Dish
	topErr  error
	voteErr error

	voteCalls []int
}

func (m *mockPoll) ListDishes(ctx context.Context) ([]models.Dish, error) {
	return m.dishes, m.listErr
}

func (m *mockPoll) DishOfTheWeek(ctx context.Context) (*models.Dish, error) {
	return m.top, m.topErr
}

func (m *mockPoll) Vote(ctx context.Context, dishID int) error {
	m.voteCalls = append(m.voteCalls, dishID)
	return m.voteErr
}

type mockOrders struct {
	placed   *models.Order
	placeErr error
	got      *models.Order
	getErr   error

	placeCalls int
	lastParams service.OrderParams
	lastGetID  int
}

func (m *mockOrders) Place(ctx context.Context, p service.OrderParams) (*models.Order, error) {
	m.placeCalls++
	m.lastParams = p
	return m.placed, m.placeErr
}

func (m *mockOrders) Get(ctx context.Context, orderID int) (*models.Order, error) {
	m.lastGetID = orderID
	return m.got, m.getErr
}

type mockActivity struct {
	events     []models.ActivityEvent
	err        error
	lastFilter service.ActivityFilter
}

func (m *mockActivity) List(ctx context.Context, f service.ActivityFilter) ([]models.ActivityEvent, error) {
	m.lastFilter = f
	return m.events, m.err
}
