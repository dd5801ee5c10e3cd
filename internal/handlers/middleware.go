package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// requireUser gates routes that need a logged-in user. The session holds a
// single field: the user id set at login. Anonymous requests are flashed a
// notice and sent to the login page instead of failing mid-handler.
func (h *Handler) requireUser(c *gin.Context) {
	s := sessions.Default(c)
	id, ok := s.Get(sessionUserKey).(int)
	if !ok || id <= 0 {
		s.AddFlash("Please log in to continue.")
		if err := s.Save(); err != nil && h.log != nil {
			h.log.Errorw("session_save_failed", "err", err)
		}
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}

	// store in Gin context
	c.Set(ctxUserKey, id)
	c.Next()
}
