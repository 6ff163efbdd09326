package route

import (
	"context"

	"github.com/piresc/maproute/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/maproute/services/route DirectionsGW

// DirectionsGW fetches route geometry from the directions service
type DirectionsGW interface {
	// FetchPolyline returns the first route's encoded geometry. It fails with
	// *TransportError on a non-2xx status and ErrNoRoute when no route exists.
	FetchPolyline(ctx context.Context, req models.RouteRequest) (*models.EncodedPolyline, error)
}
