package handlers

import (
	"net/http"

	"dishpoll/internal/logger"
	"dishpoll/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Handler wires HTTP layer to services, sessions and logging.
type Handler struct {
	services *service.Service
	store    sessions.Store
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, store sessions.Store, log *logger.Logger) *Handler {
	return &Handler{services: services, store: store, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// Templates are attached by the caller (LoadHTMLGlob in main, SetHTMLTemplate
// in tests), so handlers stay independent of where the views live.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(sessions.Sessions(sessionName, h.store))

	// Health endpoint
	router.GET("/health", h.health)

	// Page routes, one handler per (path, method)
	router.GET("/", h.home)
	router.GET("/menu", h.showMenu)

	h.registerPollRoutes(router)
	h.registerOrderRoutes(router)
	h.registerAuthRoutes(router)

	// Session-guarded activity log
	router.GET("/activity", h.requireUser, h.showActivity)

	// Live poll tallies (HTTP upgrade) — same port
	router.GET("/live", h.liveTallies)

	return router
}

func (h *Handler) registerPollRoutes(r *gin.Engine) {
	r.GET("/poll", h.showPoll)
	r.POST("/poll", h.castVote)
}

func (h *Handler) registerOrderRoutes(r *gin.Engine) {
	r.POST("/order", h.requireUser, h.placeOrder)
	// No ownership check on confirmation: any session may view any order id.
	r.GET("/order_confirmation", h.orderConfirmation)
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/signup", h.showSignup)
	r.POST("/signup", h.signUp)
	r.GET("/login", h.showLogin)
	r.POST("/login", h.logIn)
	r.GET("/logout", h.logOut)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
