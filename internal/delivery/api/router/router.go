// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lifeline/config"
	"lifeline/internal/delivery/api/middleware"
	"lifeline/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AssistantHandler *handler.AssistantHandler
	LocationHandler  *handler.LocationHandler
	AlertHandler     *handler.AlertHandler
	ProfileHandler   *handler.ProfileHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	assistantHandler *handler.AssistantHandler
	locationHandler  *handler.LocationHandler
	alertHandler     *handler.AlertHandler
	profileHandler   *handler.ProfileHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		assistantHandler: params.AssistantHandler,
		locationHandler:  params.LocationHandler,
		alertHandler:     params.AlertHandler,
		profileHandler:   params.ProfileHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Per-caller budgets; assistant traffic never spends the SOS budget
	assistantLimit := middleware.NewRateLimiter(r.config)
	alertLimit := middleware.NewRateLimiter(r.config)
	auth := r.authMiddleware.Authenticate

	// Assistant routes
	e.POST("/ask", r.assistantHandler.Ask, auth, assistantLimit)
	e.POST("/ask-stream", r.assistantHandler.AskStream, auth, assistantLimit)

	// User routes that require authentication
	userGroup := e.Group("/user", auth)
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
	}

	apiGroup := e.Group("/api", auth)
	{
		apiGroup.POST("/location", r.locationHandler.UpdateLocation)
		apiGroup.POST("/nearest-users", r.locationHandler.NearestUsers)
		apiGroup.POST("/send-sos", r.alertHandler.SendSos, alertLimit)
		apiGroup.POST("/devices/token", r.profileHandler.RegisterDeviceToken)
	}

	alertGroup := apiGroup.Group("/alerts")
	{
		alertGroup.GET("/nearby", r.alertHandler.NearbyAlerts)
		alertGroup.GET("/:id", r.alertHandler.GetAlert)
		alertGroup.POST("/:id/respond", r.alertHandler.Respond, alertLimit)
	}
}
