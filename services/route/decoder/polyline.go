package decoder

import (
	"context"

	"github.com/piresc/maproute/internal/pkg/logger"
	"github.com/piresc/maproute/internal/pkg/mapsdk"
	"github.com/piresc/maproute/internal/pkg/models"
	"github.com/piresc/maproute/services/route"
)

// Decoder decodes overview polylines through the map SDK geometry library
type Decoder struct {
	geometry mapsdk.GeometryProvider
}

// NewDecoder creates a decoder backed by the given geometry provider
func NewDecoder(geometry mapsdk.GeometryProvider) *Decoder {
	return &Decoder{geometry: geometry}
}

// Decode returns the route vertices in path order, or an empty sequence when
// the polyline cannot be decoded.
func (d *Decoder) Decode(ctx context.Context, polyline *models.EncodedPolyline) models.RouteCoordinates {
	coords, err := d.decode(polyline)
	if err != nil {
		logger.Error("Error decoding polyline", logger.Err(err))
		return models.RouteCoordinates{}
	}
	return coords
}

func (d *Decoder) decode(polyline *models.EncodedPolyline) (models.RouteCoordinates, error) {
	if polyline == nil || polyline.Points == "" {
		return nil, &route.DecodeError{Reason: route.DecodeReasonMissing}
	}

	codec, ok := d.geometry.Geometry()
	if !ok || codec == nil {
		return nil, &route.DecodeError{Reason: route.DecodeReasonUnavailable}
	}

	path, err := codec.DecodePath(polyline.Points)
	if err != nil {
		return nil, &route.DecodeError{Reason: route.DecodeReasonInvalid, Err: err}
	}
	if len(path) == 0 {
		return nil, &route.DecodeError{Reason: route.DecodeReasonEmpty}
	}

	coords := make(models.RouteCoordinates, 0, len(path))
	for _, p := range path {
		coords = append(coords, models.GeoPoint{Latitude: p.Lat(), Longitude: p.Lng()})
	}
	return coords, nil
}
