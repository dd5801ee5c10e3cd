package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session and context keys.
const (
	sessionName    = "dishpoll_session"
	sessionUserKey = "user_id"
	ctxUserKey     = "userId"
)

// Template names for the error surface.
const errorTemplate = "error.html"

// flashAndRedirect stores a one-time message and sends the browser on.
func (h *Handler) flashAndRedirect(c *gin.Context, msg, location string) {
	s := sessions.Default(c)
	s.AddFlash(msg)
	if err := s.Save(); err != nil && h.log != nil {
		h.log.Errorw("session_save_failed", "err", err)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// takeFlashes drains pending flash messages and persists their removal.
func takeFlashes(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		_ = s.Save()
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}

// renderPage renders a template with flashes and login state injected.
func (h *Handler) renderPage(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = takeFlashes(c)
	_, loggedIn := sessions.Default(c).Get(sessionUserKey).(int)
	data["loggedIn"] = loggedIn
	c.HTML(code, name, data)
}

// failPage logs the cause and renders the generic error page. Used for
// not-found references and unexpected conditions alike; the user message
// never carries internals.
func (h *Handler) failPage(c *gin.Context, code int, userMsg, logKey string, err error) {
	if h.log != nil && err != nil {
		h.log.Errorw(logKey, "err", err)
	}
	c.HTML(code, errorTemplate, gin.H{"message": userMsg, "flashes": takeFlashes(c)})
}
