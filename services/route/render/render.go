package render

import (
	"github.com/paulmach/orb/geojson"
	"github.com/piresc/maproute/internal/pkg/models"
)

// ViewKind tells the client which screen to show
type ViewKind string

const (
	ViewMap     ViewKind = "map"
	ViewLoading ViewKind = "loading"
	ViewError   ViewKind = "error"
)

const (
	ErrorMessage   = "Error loading map. Please check your network connection and try again."
	LoadingMessage = "LOADING...."
	RetryAction    = "Retry"

	routeColor = "royalblue"
)

// Marker is a titled pin on the map
type Marker struct {
	Title      string          `json:"title"`
	Coordinate models.GeoPoint `json:"coordinate"`
}

// Polyline is the route line drawn by a native map widget
type Polyline struct {
	Coordinates models.RouteCoordinates `json:"coordinates"`
	StrokeWidth int                     `json:"stroke_width"`
	StrokeColor string                  `json:"stroke_color"`
	Tappable    bool                    `json:"tappable"`
}

// MapOptions configures the map widget
type MapOptions struct {
	MapType               string         `json:"map_type,omitempty"`
	ShowsPointsOfInterest bool           `json:"shows_points_of_interest"`
	ZoomEnabled           bool           `json:"zoom_enabled"`
	ZoomControlEnabled    bool           `json:"zoom_control_enabled"`
	InitialRegion         *models.Region `json:"initial_region,omitempty"`
}

// View is the platform specific description of the map screen
type View struct {
	Kind       ViewKind                   `json:"kind"`
	Platform   string                     `json:"platform"`
	Message    string                     `json:"message,omitempty"`
	Action     string                     `json:"action,omitempty"`
	RetryCount int                        `json:"retry_count"`
	Map        *MapOptions                `json:"map,omitempty"`
	Markers    []Marker                   `json:"markers,omitempty"`
	Polyline   *Polyline                  `json:"polyline,omitempty"`
	GeoJSON    *geojson.FeatureCollection `json:"geojson,omitempty"`
}

// Renderer turns screen state into a view for one platform
type Renderer interface {
	Render(state models.ScreenState) *View
}

// ForPlatform picks the renderer for a platform. Unknown platforms get a
// renderer that only ever shows the loading or error view.
func ForPlatform(platform string) Renderer {
	switch platform {
	case models.PlatformWeb:
		return &WebRenderer{}
	case models.PlatformAndroid, models.PlatformIOS:
		return &MobileRenderer{}
	default:
		return &LoadingRenderer{}
	}
}

// ErrorView is shown on every platform once a fetch failed
func ErrorView(state models.ScreenState) *View {
	return &View{
		Kind:       ViewError,
		Platform:   state.Platform,
		Message:    ErrorMessage,
		Action:     RetryAction,
		RetryCount: state.RetryCount,
	}
}

// LoadingView is shown while the map cannot be drawn yet
func LoadingView(state models.ScreenState) *View {
	return &View{
		Kind:       ViewLoading,
		Platform:   state.Platform,
		Message:    LoadingMessage,
		RetryCount: state.RetryCount,
	}
}

func endpointMarkers(state models.ScreenState) []Marker {
	return []Marker{
		{Title: "Origin", Coordinate: state.Origin},
		{Title: "Destination", Coordinate: state.Destination},
	}
}

// LoadingRenderer serves platforms without a map widget
type LoadingRenderer struct{}

func (r *LoadingRenderer) Render(state models.ScreenState) *View {
	if state.Error {
		return ErrorView(state)
	}
	return LoadingView(state)
}
