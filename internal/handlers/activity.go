package handlers

import (
	"net/http"
	"time"

	"dishpoll/internal/service"

	"github.com/gin-gonic/gin"
)

// parseTimeParam accepts RFC3339 or date-only values; zero when absent.
func parseTimeParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// showActivity renders the audit log, optionally narrowed by
// ?from=...&to=...&type=VOTE.
func (h *Handler) showActivity(c *gin.Context) {
	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		h.failPage(c, http.StatusBadRequest, "Invalid 'from' timestamp.", "activity_bad_from", err)
		return
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		h.failPage(c, http.StatusBadRequest, "Invalid 'to' timestamp.", "activity_bad_to", err)
		return
	}

	events, err := h.services.Activity.List(c.Request.Context(), service.ActivityFilter{
		From: from,
		To:   to,
		Type: c.Query("type"),
	})
	if err != nil {
		h.failPage(c, http.StatusBadRequest, "Could not load the activity log.", "activity_list_failed", err)
		return
	}

	h.renderPage(c, http.StatusOK, "activity.html", gin.H{"events": events})
}
