package models

import (
	"math"
	"strconv"
)

// GeoPoint is a latitude/longitude pair
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LatLng formats the point as "lat,lng" without rounding. Non-finite values are
// formatted as-is (NaN, +Inf, -Inf).
func (p GeoPoint) LatLng() string {
	return strconv.FormatFloat(p.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(p.Longitude, 'f', -1, 64)
}

// IsFinite reports whether both coordinates are finite numbers
func (p GeoPoint) IsFinite() bool {
	return isFinite(p.Latitude) && isFinite(p.Longitude)
}

// RouteRequest holds everything needed for a single directions lookup.
// It is built per fetch and discarded afterwards.
type RouteRequest struct {
	Origin      GeoPoint
	Waypoint    GeoPoint
	Destination GeoPoint
	APIKey      string
}

// EncodedPolyline is the compact encoded geometry returned by the directions service
type EncodedPolyline struct {
	Points string `json:"points"`
}

// RouteCoordinates is the decoded route in path order. An empty value means
// there is nothing to draw.
type RouteCoordinates []GeoPoint

// Region is the visible map viewport
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}

// Center returns the centre of the region
func (r Region) Center() GeoPoint {
	return GeoPoint{Latitude: r.Latitude, Longitude: r.Longitude}
}

// IsValid reports whether the region centre is a finite coordinate
func (r Region) IsValid() bool {
	return r.Center().IsFinite()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
