package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/maproute/internal/pkg/models"
)

// EncodeLocation converts a point to a geohash string
func EncodeLocation(point models.GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// RegionPrecision picks a geohash length whose cell roughly matches the
// viewport span. Wider viewports get shorter hashes.
func RegionPrecision(region models.Region) uint {
	span := math.Max(math.Abs(region.LatitudeDelta), math.Abs(region.LongitudeDelta))
	switch {
	case span == 0 || math.IsNaN(span):
		return 9
	case span >= 20:
		return 2
	case span >= 2.5:
		return 3
	case span >= 0.6:
		return 4
	case span >= 0.08:
		return 5
	case span >= 0.02:
		return 6
	case span >= 0.003:
		return 7
	default:
		return 8
	}
}

// RegionCell returns the geohash cell of the region centre, or an empty
// string when the centre is not a finite coordinate
func RegionCell(region models.Region) string {
	if !region.IsValid() {
		return ""
	}
	return EncodeLocation(region.Center(), RegionPrecision(region))
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 models.GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// PathLength sums the great-circle length of a path in kilometers
func PathLength(path models.RouteCoordinates) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += CalculateDistance(path[i-1], path[i])
	}
	return total
}
