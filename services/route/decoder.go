package route

import (
	"context"

	"github.com/piresc/maproute/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_decoder.go -package=mocks github.com/piresc/maproute/services/route PolylineDecoder

// PolylineDecoder turns encoded geometry into coordinates. It never fails:
// every problem resolves to an empty sequence.
type PolylineDecoder interface {
	Decode(ctx context.Context, polyline *models.EncodedPolyline) models.RouteCoordinates
}
