package route

import (
	"context"

	"github.com/piresc/maproute/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/maproute/services/route RouteUC,ScreenUC

// RouteUC fetches and decodes routes
type RouteUC interface {
	FetchRoute(ctx context.Context, origin, waypoint, destination models.GeoPoint) (models.RouteCoordinates, error)
}

// ScreenUC owns the state of the map screen
type ScreenUC interface {
	Load(ctx context.Context) error
	Retry(ctx context.Context) error
	SetPoints(ctx context.Context, origin, waypoint, destination models.GeoPoint) error
	OnRegionChange(region models.Region)
	HandleEvent(event models.MapEvent)
	State() models.ScreenState
}
