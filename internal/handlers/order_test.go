package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"dishpoll/internal/models"
	"dishpoll/internal/service"
)

// Full walk of the ordering scenario: log in, vote three times, order two
// pizzas, view the confirmation.
func TestOrderFlow_PizzaScenario(t *testing.T) {
	pizza := models.Order{
		ID:              12,
		UserID:          7,
		DishID:          1,
		Quantity:        2,
		TotalCost:       19.00,
		DeliveryAddress: "1 Main St",
	}
	auth := &mockAuth{authID: 7}
	poll := &mockPoll{}
	orders := &mockOrders{placed: &pizza, got: &pizza}
	r := newTestRouter(t, &service.Service{Authorization: auth, Poll: poll, Orders: orders})

	login := doPostForm(r, "/login", url.Values{
		"username": {"alice"},
		"password": {"s3cr3t"},
	}, nil)
	wantRedirect(t, login, "/")
	jar := mergeCookies(nil, login)

	for i := 0; i < 3; i++ {
		w := doPostForm(r, "/poll", url.Values{"dish_id": {"1"}}, jar)
		wantRedirect(t, w, "/poll")
		jar = mergeCookies(jar, w)
	}
	if len(poll.voteCalls) != 3 {
		t.Fatalf("expected 3 votes for the pizza, got %d", len(poll.voteCalls))
	}

	placed := doPostForm(r, "/order", url.Values{
		"dish_id":          {"1"},
		"quantity":         {"2"},
		"delivery_address": {"1 Main St"},
	}, jar)
	wantRedirect(t, placed, "/order_confirmation?order_id=12")
	jar = mergeCookies(jar, placed)

	want := service.OrderParams{UserID: 7, DishID: 1, Quantity: 2, DeliveryAddress: "1 Main St"}
	if orders.lastParams != want {
		t.Fatalf("order params: got %+v, want %+v", orders.lastParams, want)
	}

	confirmation := doGet(r, "/order_confirmation?order_id=12", jar)
	if confirmation.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body=%s)", confirmation.Code, confirmation.Body.String())
	}
	if orders.lastGetID != 12 {
		t.Fatalf("confirmation fetched order %d, want 12", orders.lastGetID)
	}
	body := confirmation.Body.String()
	for _, field := range []string{"12:2:19.00:1 Main St", "[Your order has been placed.]"} {
		if !strings.Contains(body, field) {
			t.Fatalf("expected %q on confirmation page, body=%s", field, body)
		}
	}
}

func TestPlaceOrder_AnonymousRedirectsToLogin(t *testing.T) {
	orders := &mockOrders{}
	r := newTestRouter(t, &service.Service{Orders: orders})

	w := doPostForm(r, "/order", url.Values{
		"dish_id":          {"1"},
		"quantity":         {"1"},
		"delivery_address": {"1 Main St"},
	}, nil)

	wantRedirect(t, w, "/login")
	if orders.placeCalls != 0 {
		t.Fatalf("Place must not be reached without a session, got %d calls", orders.placeCalls)
	}
}

func TestPlaceOrder_ValidationFailuresReturnToMenu(t *testing.T) {
	cases := []struct {
		name     string
		form     url.Values
		placeErr error
	}{
		{
			name: "non-numeric quantity",
			form: url.Values{"dish_id": {"1"}, "quantity": {"two"}, "delivery_address": {"1 Main St"}},
		},
		{
			name:     "non-positive quantity",
			form:     url.Values{"dish_id": {"1"}, "quantity": {"0"}, "delivery_address": {"1 Main St"}},
			placeErr: service.ErrInvalidQuantity,
		},
		{
			name:     "empty address",
			form:     url.Values{"dish_id": {"1"}, "quantity": {"1"}, "delivery_address": {"  "}},
			placeErr: service.ErrEmptyAddress,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{authID: 7}
			orders := &mockOrders{placeErr: tc.placeErr}
			r := newTestRouter(t, &service.Service{Authorization: auth, Orders: orders})

			login := doPostForm(r, "/login", url.Values{"username": {"a"}, "password": {"b"}}, nil)
			jar := mergeCookies(nil, login)

			w := doPostForm(r, "/order", tc.form, jar)
			wantRedirect(t, w, "/menu")
		})
	}
}

func TestPlaceOrder_UnknownDishIs404(t *testing.T) {
	auth := &mockAuth{authID: 7}
	orders := &mockOrders{placeErr: service.ErrDishNotFound}
	r := newTestRouter(t, &service.Service{Authorization: auth, Orders: orders})

	login := doPostForm(r, "/login", url.Values{"username": {"a"}, "password": {"b"}}, nil)
	jar := mergeCookies(nil, login)

	w := doPostForm(r, "/order", url.Values{
		"dish_id":          {"99"},
		"quantity":         {"1"},
		"delivery_address": {"1 Main St"},
	}, jar)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}
}

func TestOrderConfirmation_UnknownOrderIs404(t *testing.T) {
	orders := &mockOrders{getErr: service.ErrOrderNotFound}
	r := newTestRouter(t, &service.Service{Orders: orders})

	w := doGet(r, "/order_confirmation?order_id=404", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}
}

func TestOrderConfirmation_MalformedIDIs404(t *testing.T) {
	r := newTestRouter(t, &service.Service{Orders: &mockOrders{}})

	w := doGet(r, "/order_confirmation?order_id=abc", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}
}

// Inherited behavior: the confirmation page performs no ownership check, so
// any session can view any order id.
func TestOrderConfirmation_NoOwnershipCheck(t *testing.T) {
	orders := &mockOrders{got: &models.Order{ID: 12, UserID: 7, Quantity: 1, TotalCost: 9.50, DeliveryAddress: "1 Main St"}}
	r := newTestRouter(t, &service.Service{Orders: orders})

	// No login at all; the page still renders.
	w := doGet(r, "/order_confirmation?order_id=12", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body=%s)", w.Code, w.Body.String())
	}
}
