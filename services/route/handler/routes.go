package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/maproute/internal/pkg/middleware"
	"github.com/piresc/maproute/internal/pkg/models"
	"github.com/piresc/maproute/services/route/handler/http"
)

// Handler coordinates all protocol handlers for the route service
type Handler struct {
	routeHandler *http.RouteHandler
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(routeHandler *http.RouteHandler, cfg *models.Config) *Handler {
	return &Handler{
		routeHandler: routeHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers the route and map endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1", middleware.ValidateAPIKey(h.cfg.Server.APIKey))

	v1.GET("/route", h.routeHandler.GetRoute)

	mapGroup := v1.Group("/map")
	mapGroup.GET("", h.routeHandler.GetMap)
	mapGroup.POST("/retry", h.routeHandler.Retry)
	mapGroup.PUT("/points", h.routeHandler.UpdatePoints)
	mapGroup.POST("/region", h.routeHandler.UpdateRegion)
	mapGroup.POST("/events", h.routeHandler.RecordEvent)
}
