package render

import "github.com/piresc/maproute/internal/pkg/models"

const mobileStrokeWidth = 14

// MobileRenderer draws the route with the native map widget
type MobileRenderer struct{}

func (r *MobileRenderer) Render(state models.ScreenState) *View {
	if state.Error {
		return ErrorView(state)
	}

	return &View{
		Kind:       ViewMap,
		Platform:   state.Platform,
		RetryCount: state.RetryCount,
		Map: &MapOptions{
			ZoomEnabled: true,
		},
		Markers: endpointMarkers(state),
		Polyline: &Polyline{
			Coordinates: state.Coordinates,
			StrokeWidth: mobileStrokeWidth,
			StrokeColor: routeColor,
			Tappable:    true,
		},
	}
}
