package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/maproute/internal/pkg/models"
	"github.com/piresc/maproute/services/route"
	"github.com/piresc/maproute/services/route/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testOrigin      = models.GeoPoint{Latitude: 33.843663, Longitude: -117.945171}
	testWaypoint    = models.GeoPoint{Latitude: 33.8589565, Longitude: -117.9589782}
	testDestination = models.GeoPoint{Latitude: 33.8252956, Longitude: -117.8307728}
)

func testConfig() *models.Config {
	return &models.Config{
		Maps: models.MapsConfig{APIKey: "test-key"},
		Map: models.MapConfig{
			Platform:    models.PlatformWeb,
			Origin:      testOrigin,
			Waypoint:    testWaypoint,
			Destination: testDestination,
			InitialRegion: models.Region{
				Latitude:       testDestination.Latitude,
				Longitude:      testDestination.Longitude,
				LatitudeDelta:  0.045,
				LongitudeDelta: 0.045,
			},
			RegionDebounceMs: 10,
		},
	}
}

func TestFetchRoute_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDirectionsGW(ctrl)
	mockDecoder := mocks.NewMockPolylineDecoder(ctrl)
	uc := NewRouteUC(mockGW, mockDecoder, testConfig())

	encoded := &models.EncodedPolyline{Points: "_p~iF~ps|U_ulLnnqC"}
	decoded := models.RouteCoordinates{{Latitude: 38.5, Longitude: -120.2}, {Latitude: 40.7, Longitude: -120.95}}

	mockGW.EXPECT().
		FetchPolyline(gomock.Any(), models.RouteRequest{
			Origin:      testOrigin,
			Waypoint:    testWaypoint,
			Destination: testDestination,
			APIKey:      "test-key",
		}).
		Return(encoded, nil)
	mockDecoder.EXPECT().Decode(gomock.Any(), encoded).Return(decoded)

	// Act
	coords, err := uc.FetchRoute(context.Background(), testOrigin, testWaypoint, testDestination)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, decoded, coords)
}

func TestFetchRoute_ServiceFailuresBecomeEmpty(t *testing.T) {
	tests := []struct {
		name  string
		gwErr error
	}{
		{name: "transport error", gwErr: &route.TransportError{StatusCode: 503}},
		{name: "no route", gwErr: route.ErrNoRoute},
		{name: "network failure", gwErr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGW := mocks.NewMockDirectionsGW(ctrl)
			mockDecoder := mocks.NewMockPolylineDecoder(ctrl)
			uc := NewRouteUC(mockGW, mockDecoder, testConfig())

			mockGW.EXPECT().FetchPolyline(gomock.Any(), gomock.Any()).Return(nil, tt.gwErr)
			mockDecoder.EXPECT().Decode(gomock.Any(), gomock.Any()).Times(0)

			coords, err := uc.FetchRoute(context.Background(), testOrigin, testWaypoint, testDestination)

			assert.NoError(t, err)
			assert.NotNil(t, coords)
			assert.Empty(t, coords)
		})
	}
}

func TestFetchRoute_EmptyDecode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDirectionsGW(ctrl)
	mockDecoder := mocks.NewMockPolylineDecoder(ctrl)
	uc := NewRouteUC(mockGW, mockDecoder, testConfig())

	mockGW.EXPECT().FetchPolyline(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockDecoder.EXPECT().Decode(gomock.Any(), gomock.Nil()).Return(models.RouteCoordinates{})

	coords, err := uc.FetchRoute(context.Background(), testOrigin, testWaypoint, testDestination)

	assert.NoError(t, err)
	assert.Empty(t, coords)
}

func TestFetchRoute_OrchestrationFailures(t *testing.T) {
	t.Run("invalid request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGW := mocks.NewMockDirectionsGW(ctrl)
		uc := NewRouteUC(mockGW, mocks.NewMockPolylineDecoder(ctrl), testConfig())

		mockGW.EXPECT().FetchPolyline(gomock.Any(), gomock.Any()).
			Return(nil, errors.Join(route.ErrInvalidRequest, errors.New("bad host")))

		coords, err := uc.FetchRoute(context.Background(), testOrigin, testWaypoint, testDestination)

		assert.ErrorIs(t, err, route.ErrInvalidRequest)
		assert.Nil(t, coords)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGW := mocks.NewMockDirectionsGW(ctrl)
		uc := NewRouteUC(mockGW, mocks.NewMockPolylineDecoder(ctrl), testConfig())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		mockGW.EXPECT().FetchPolyline(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

		coords, err := uc.FetchRoute(ctx, testOrigin, testWaypoint, testDestination)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, coords)
	})
}
