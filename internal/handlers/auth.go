package handlers

import (
	"errors"
	"net/http"

	"dishpoll/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	msgSignedUp  = "You have been signed up."
	msgLoggedIn  = "You have been logged in."
	msgLoggedOut = "You have been logged out."
	msgBadLogin  = "Invalid username or password."
)

func (h *Handler) showSignup(c *gin.Context) {
	h.renderPage(c, http.StatusOK, "signup.html", nil)
}

func (h *Handler) signUp(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := h.services.SignUp(c.Request.Context(), username, password)
	switch {
	case err == nil:
		h.flashAndRedirect(c, msgSignedUp, "/login")
	case errors.Is(err, service.ErrUsernameTaken):
		h.flashAndRedirect(c, "That username is already taken.", "/signup")
	case errors.Is(err, service.ErrEmptyUsername), errors.Is(err, service.ErrEmptyPassword):
		// Validation failures keep the user on the form.
		h.flashAndRedirect(c, "Username and password are required.", "/signup")
	default:
		h.failPage(c, http.StatusInternalServerError, "Could not sign you up, please try again.", "signup_failed", err)
	}
}

func (h *Handler) showLogin(c *gin.Context) {
	h.renderPage(c, http.StatusOK, "login.html", nil)
}

func (h *Handler) logIn(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	id, err := h.services.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.flashAndRedirect(c, msgBadLogin, "/login")
			return
		}
		h.failPage(c, http.StatusInternalServerError, "Something went wrong, please try again.", "login_failed", err)
		return
	}

	s := sessions.Default(c)
	s.Set(sessionUserKey, id)
	s.AddFlash(msgLoggedIn)
	if err := s.Save(); err != nil {
		h.failPage(c, http.StatusInternalServerError, "Something went wrong, please try again.", "session_save_failed", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// logOut clears all session state, including the user id.
func (h *Handler) logOut(c *gin.Context) {
	s := sessions.Default(c)
	s.Clear()
	s.AddFlash(msgLoggedOut)
	if err := s.Save(); err != nil && h.log != nil {
		h.log.Errorw("session_save_failed", "err", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}
