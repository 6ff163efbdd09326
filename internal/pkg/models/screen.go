package models

// Supported map platforms
const (
	PlatformWeb     = "web"
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// ScreenState is a snapshot of what the map screen currently shows
type ScreenState struct {
	Platform    string           `json:"platform"`
	Origin      GeoPoint         `json:"origin"`
	Waypoint    GeoPoint         `json:"waypoint"`
	Destination GeoPoint         `json:"destination"`
	Coordinates RouteCoordinates `json:"coordinates"`
	Region      Region           `json:"region"`
	RegionCell  string           `json:"region_cell,omitempty"`
	Error       bool             `json:"error"`
	Loading     bool             `json:"loading"`
	SDKLoaded   bool             `json:"sdk_loaded"`
	RetryCount  int              `json:"retry_count"`
}

// RoutePoints is the origin, waypoint and destination triple of a route
type RoutePoints struct {
	Origin      *GeoPoint `json:"origin"`
	Waypoint    *GeoPoint `json:"waypoint"`
	Destination *GeoPoint `json:"destination"`
}

// Map interaction events reported by the client
const (
	MapEventPress                = "press"
	MapEventDoublePress          = "double_press"
	MapEventPanDrag              = "pan_drag"
	MapEventRegionChangeComplete = "region_change_complete"
)

// MapEvent is a user interaction with the map widget
type MapEvent struct {
	Type       string    `json:"type"`
	Coordinate *GeoPoint `json:"coordinate,omitempty"`
	Region     *Region   `json:"region,omitempty"`
}

// IsKnown reports whether the event type is one the screen understands
func (e MapEvent) IsKnown() bool {
	switch e.Type {
	case MapEventPress, MapEventDoublePress, MapEventPanDrag, MapEventRegionChangeComplete:
		return true
	}
	return false
}
