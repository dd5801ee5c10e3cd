package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dishpoll/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgOrderPlaced = "Your order has been placed."

	errOrderNotFound = "We can't find that order."
	errPlaceOrder    = "Could not place your order, please try again."
)

// placeOrder reads the order form, ties the order to the session's user and
// redirects to the confirmation page with the new order id.
func (h *Handler) placeOrder(c *gin.Context) {
	userID := c.GetInt(ctxUserKey)

	dishID, err := strconv.Atoi(c.PostForm("dish_id"))
	if err != nil {
		h.failPage(c, http.StatusNotFound, errDishNotFound, "order_bad_dish_id", err)
		return
	}
	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil {
		h.flashAndRedirect(c, service.ErrInvalidQuantity.Error(), "/menu")
		return
	}

	order, err := h.services.Place(c.Request.Context(), service.OrderParams{
		UserID:          userID,
		DishID:          dishID,
		Quantity:        quantity,
		DeliveryAddress: c.PostForm("delivery_address"),
	})
	switch {
	case err == nil:
		h.flashAndRedirect(c, msgOrderPlaced, "/order_confirmation?order_id="+strconv.Itoa(order.ID))
	case errors.Is(err, service.ErrInvalidQuantity), errors.Is(err, service.ErrEmptyAddress):
		h.flashAndRedirect(c, err.Error(), "/menu")
	case errors.Is(err, service.ErrDishNotFound):
		h.failPage(c, http.StatusNotFound, errDishNotFound, "order_dish_missing", err)
	default:
		h.failPage(c, http.StatusInternalServerError, errPlaceOrder, "order_failed", err)
	}
}

// orderConfirmation renders the order named by the order_id query parameter.
func (h *Handler) orderConfirmation(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Query("order_id"))
	if err != nil {
		h.failPage(c, http.StatusNotFound, errOrderNotFound, "confirmation_bad_order_id", err)
		return
	}

	order, err := h.services.Get(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			h.failPage(c, http.StatusNotFound, errOrderNotFound, "confirmation_order_missing", err)
			return
		}
		h.failPage(c, http.StatusInternalServerError, "Could not load your order, please try again.", "confirmation_failed", err)
		return
	}

	h.renderPage(c, http.StatusOK, "order_confirmation.html", gin.H{"order": order})
}
