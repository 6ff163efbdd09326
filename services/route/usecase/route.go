package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/maproute/internal/pkg/logger"
	"github.com/piresc/maproute/internal/pkg/models"
	"github.com/piresc/maproute/services/route"
)

// RouteUC fetches a route from the directions gateway and decodes it
type RouteUC struct {
	directionsGW route.DirectionsGW
	decoder      route.PolylineDecoder
	cfg          *models.Config
}

// NewRouteUC creates a new route usecase instance
func NewRouteUC(
	directionsGW route.DirectionsGW,
	decoder route.PolylineDecoder,
	cfg *models.Config,
) *RouteUC {
	return &RouteUC{
		directionsGW: directionsGW,
		decoder:      decoder,
		cfg:          cfg,
	}
}

// FetchRoute returns the decoded route from origin through waypoint to
// destination. Service failures, missing routes and undecodable geometry all
// produce an empty sequence with a nil error. An error is returned only when
// the fetch itself could not be carried out.
func (u *RouteUC) FetchRoute(ctx context.Context, origin, waypoint, destination models.GeoPoint) (models.RouteCoordinates, error) {
	req := models.RouteRequest{
		Origin:      origin,
		Waypoint:    waypoint,
		Destination: destination,
		APIKey:      u.cfg.Maps.APIKey,
	}

	encoded, err := u.directionsGW.FetchPolyline(ctx, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("route fetch aborted: %w", ctxErr)
		}
		if errors.Is(err, route.ErrInvalidRequest) {
			return nil, fmt.Errorf("failed to build directions request: %w", err)
		}

		var transportErr *route.TransportError
		switch {
		case errors.As(err, &transportErr):
			logger.Error("Error fetching route",
				logger.Int("status_code", transportErr.StatusCode),
				logger.Err(err))
		case errors.Is(err, route.ErrNoRoute):
			logger.Warn("No route between points",
				logger.String("origin", origin.LatLng()),
				logger.String("destination", destination.LatLng()))
		default:
			logger.Error("Error fetching route", logger.Err(err))
		}
		return models.RouteCoordinates{}, nil
	}

	coords := u.decoder.Decode(ctx, encoded)

	logger.Info("Route fetched",
		logger.String("origin", origin.LatLng()),
		logger.String("waypoint", waypoint.LatLng()),
		logger.String("destination", destination.LatLng()),
		logger.Int("points", len(coords)))

	return coords, nil
}
