package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/maproute/internal/pkg/logger"
	"github.com/piresc/maproute/internal/pkg/middleware"
	"github.com/piresc/maproute/internal/pkg/models"
	"github.com/piresc/maproute/internal/utils"
	"github.com/piresc/maproute/services/route"
	"github.com/piresc/maproute/services/route/render"
)

// RouteResponse is the decoded route returned by GetRoute
type RouteResponse struct {
	Coordinates models.RouteCoordinates `json:"coordinates"`
	Points      int                     `json:"points"`
	DistanceKm  float64                 `json:"distance_km"`
}

// RouteHandler handles HTTP requests for routes and the map screen
type RouteHandler struct {
	routeUC  route.RouteUC
	screenUC route.ScreenUC
	renderer render.Renderer
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(
	routeUC route.RouteUC,
	screenUC route.ScreenUC,
	renderer render.Renderer,
) *RouteHandler {
	return &RouteHandler{
		routeUC:  routeUC,
		screenUC: screenUC,
		renderer: renderer,
	}
}

// GetRoute fetches and decodes a route for the points in the query string
func (h *RouteHandler) GetRoute(c echo.Context) error {
	var points [3]models.GeoPoint
	for i, name := range []string{"origin", "waypoint", "destination"} {
		raw := c.QueryParam(name)
		if raw == "" {
			return utils.BadRequestResponse(c, "Missing "+name)
		}
		p, err := utils.ParseLatLng(raw)
		if err != nil {
			logger.Warn("Invalid route point",
				logger.String("param", name),
				logger.Err(err))
			return utils.BadRequestResponse(c, "Invalid "+name)
		}
		points[i] = p
	}

	coords, err := h.routeUC.FetchRoute(c.Request().Context(), points[0], points[1], points[2])
	if err != nil {
		middleware.NoticeError(c, err)
		logger.Error("Failed to fetch route", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch route")
	}

	middleware.AddAttribute(c, "route.points", len(coords))

	return utils.SuccessResponse(c, http.StatusOK, "Route fetched successfully", RouteResponse{
		Coordinates: coords,
		Points:      len(coords),
		DistanceKm:  utils.PathLength(coords),
	})
}

// GetMap returns the current map view
func (h *RouteHandler) GetMap(c echo.Context) error {
	return h.respondWithView(c)
}

// Retry re-runs the route fetch after a failure
func (h *RouteHandler) Retry(c echo.Context) error {
	if err := h.screenUC.Retry(c.Request().Context()); err != nil {
		// the error view carries the failure
		middleware.NoticeError(c, err)
	}
	return h.respondWithView(c)
}

// UpdatePoints replaces origin, waypoint and destination
func (h *RouteHandler) UpdatePoints(c echo.Context) error {
	var req models.RoutePoints
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for points update", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Origin == nil || req.Waypoint == nil || req.Destination == nil {
		return utils.BadRequestResponse(c, "origin, waypoint and destination are required")
	}

	if err := h.screenUC.SetPoints(c.Request().Context(), *req.Origin, *req.Waypoint, *req.Destination); err != nil {
		middleware.NoticeError(c, err)
	}
	return h.respondWithView(c)
}

// UpdateRegion schedules a viewport change
func (h *RouteHandler) UpdateRegion(c echo.Context) error {
	var region models.Region
	if err := c.Bind(&region); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	h.screenUC.OnRegionChange(region)
	return utils.AcceptedResponse(c, "Region update scheduled")
}

// RecordEvent logs a map interaction
func (h *RouteHandler) RecordEvent(c echo.Context) error {
	var event models.MapEvent
	if err := c.Bind(&event); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !event.IsKnown() {
		return utils.BadRequestResponse(c, "Unknown event type")
	}

	h.screenUC.HandleEvent(event)
	return utils.AcceptedResponse(c, "Event recorded")
}

func (h *RouteHandler) respondWithView(c echo.Context) error {
	view := h.renderer.Render(h.screenUC.State())
	return utils.SuccessResponse(c, http.StatusOK, "Map view", view)
}
