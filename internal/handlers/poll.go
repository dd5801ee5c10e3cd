package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dishpoll/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgVoteRecorded = "Your vote has been recorded."

	errDishNotFound = "We don't know that dish."
	errLoadDishes   = "Could not load the menu, please try again."
)

// home renders the dish of the week. An empty dish table renders the empty
// state rather than failing.
func (h *Handler) home(c *gin.Context) {
	h.renderDishOfTheWeek(c, "index.html")
}

// showMenu renders the dish of the week with the order form.
func (h *Handler) showMenu(c *gin.Context) {
	h.renderDishOfTheWeek(c, "menu.html")
}

func (h *Handler) renderDishOfTheWeek(c *gin.Context, page string) {
	dish, err := h.services.DishOfTheWeek(c.Request.Context())
	if err != nil && !errors.Is(err, service.ErrNoDishes) {
		h.failPage(c, http.StatusInternalServerError, errLoadDishes, "dish_of_week_failed", err)
		return
	}
	h.renderPage(c, http.StatusOK, page, gin.H{"dish": dish})
}

func (h *Handler) showPoll(c *gin.Context) {
	dishes, err := h.services.ListDishes(c.Request.Context())
	if err != nil {
		h.failPage(c, http.StatusInternalServerError, errLoadDishes, "list_dishes_failed", err)
		return
	}
	h.renderPage(c, http.StatusOK, "poll.html", gin.H{"dishes": dishes})
}

// castVote increments the chosen dish's counter by exactly 1.
func (h *Handler) castVote(c *gin.Context) {
	dishID, err := strconv.Atoi(c.PostForm("dish_id"))
	if err != nil {
		h.failPage(c, http.StatusNotFound, errDishNotFound, "vote_bad_dish_id", err)
		return
	}

	if err := h.services.Vote(c.Request.Context(), dishID); err != nil {
		if errors.Is(err, service.ErrDishNotFound) {
			h.failPage(c, http.StatusNotFound, errDishNotFound, "vote_dish_missing", err)
			return
		}
		h.failPage(c, http.StatusInternalServerError, "Could not record your vote, please try again.", "vote_failed", err)
		return
	}

	h.flashAndRedirect(c, msgVoteRecorded, "/poll")
}
