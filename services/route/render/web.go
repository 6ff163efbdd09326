package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/piresc/maproute/internal/pkg/models"
)

const webStrokeWidth = 8

// WebRenderer draws the route for the browser map once the SDK is loaded.
// Geometry is emitted as GeoJSON so any web map library can consume it.
type WebRenderer struct{}

func (r *WebRenderer) Render(state models.ScreenState) *View {
	if state.Error {
		return ErrorView(state)
	}
	if !state.SDKLoaded {
		return LoadingView(state)
	}

	region := state.Region
	return &View{
		Kind:       ViewMap,
		Platform:   state.Platform,
		RetryCount: state.RetryCount,
		Map: &MapOptions{
			MapType:               "terrain",
			ShowsPointsOfInterest: false,
			ZoomEnabled:           true,
			ZoomControlEnabled:    true,
			InitialRegion:         &region,
		},
		Markers: endpointMarkers(state),
		Polyline: &Polyline{
			Coordinates: state.Coordinates,
			StrokeWidth: webStrokeWidth,
			StrokeColor: routeColor,
			Tappable:    true,
		},
		GeoJSON: routeFeatures(state),
	}
}

// routeFeatures builds a collection with the two endpoint markers and, when
// there is something to draw, the route line. Positions are [lng, lat].
func routeFeatures(state models.ScreenState) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, m := range endpointMarkers(state) {
		f := geojson.NewFeature(toOrbPoint(m.Coordinate))
		f.Properties["kind"] = "marker"
		f.Properties["title"] = m.Title
		fc.Append(f)
	}

	if len(state.Coordinates) >= 2 {
		line := make(orb.LineString, 0, len(state.Coordinates))
		for _, p := range state.Coordinates {
			line = append(line, toOrbPoint(p))
		}
		f := geojson.NewFeature(line)
		f.Properties["kind"] = "route"
		f.Properties["stroke"] = routeColor
		f.Properties["stroke-width"] = webStrokeWidth
		f.Properties["tappable"] = true
		fc.Append(f)
	}

	return fc
}

func toOrbPoint(p models.GeoPoint) orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}
