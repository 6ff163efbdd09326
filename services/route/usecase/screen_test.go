package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/maproute/internal/pkg/models"
	"github.com/piresc/maproute/services/route/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSDK struct {
	err   error
	calls int
}

func (f *fakeSDK) Load(ctx context.Context, callback func()) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	callback()
	return nil
}

var twoPoints = models.RouteCoordinates{{Latitude: 38.5, Longitude: -120.2}, {Latitude: 40.7, Longitude: -120.95}}

func TestScreen_InitialState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	screen := NewScreen(mocks.NewMockRouteUC(ctrl), nil, testConfig())
	defer screen.Close()

	state := screen.State()
	assert.Equal(t, models.PlatformWeb, state.Platform)
	assert.Equal(t, testOrigin, state.Origin)
	assert.Equal(t, testDestination, state.Destination)
	assert.Equal(t, 0.045, state.Region.LatitudeDelta)
	assert.NotEmpty(t, state.RegionCell)
	assert.Empty(t, state.Coordinates)
	assert.False(t, state.Error)
	assert.False(t, state.SDKLoaded)
}

func TestScreen_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRouteUC(ctrl)
	sdk := &fakeSDK{}
	screen := NewScreen(mockUC, sdk, testConfig())
	defer screen.Close()

	mockUC.EXPECT().FetchRoute(gomock.Any(), testOrigin, testWaypoint, testDestination).Return(twoPoints, nil)

	require.NoError(t, screen.Load(context.Background()))

	state := screen.State()
	assert.Equal(t, twoPoints, state.Coordinates)
	assert.True(t, state.SDKLoaded)
	assert.False(t, state.Loading)
	assert.False(t, state.Error)
	assert.Equal(t, 1, sdk.calls)
}

func TestScreen_LoadReplacesCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRouteUC(ctrl)
	screen := NewScreen(mockUC, nil, testConfig())
	defer screen.Close()

	gomock.InOrder(
		mockUC.EXPECT().FetchRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(twoPoints, nil),
		mockUC.EXPECT().FetchRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.RouteCoordinates{}, nil),
	)

	require.NoError(t, screen.Load(context.Background()))
	require.Len(t, screen.State().Coordinates, 2)

	require.NoError(t, screen.Load(context.Background()))
	state := screen.State()
	assert.Empty(t, state.Coordinates)
	// an empty route is not an error
	assert.False(t, state.Error)
}

func TestScreen_SDKFailureStillFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRouteUC(ctrl)
	screen := NewScreen(mockUC, &fakeSDK{err: errors.New("status 403")}, testConfig())
	defer screen.Close()

	mockUC.EXPECT().FetchRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.RouteCoordinates{}, nil)

	require.NoError(t, screen.Load(context.Background()))
	state := screen.State()
	assert.False(t, state.SDKLoaded)
	assert.False(t, state.Error)
}

func TestScreen_ErrorAndRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRouteUC(ctrl)
	screen := NewScreen(mockUC, nil, testConfig())
	defer screen.Close()

	gomock.InOrder(
		mockUC.EXPECT().FetchRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, context.Canceled),
		mockUC.EXPECT().FetchRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(twoPoints, nil),
	)

	err := screen.Load(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, screen.State().Error)

	require.NoError(t, screen.Retry(context.Background()))
	state := screen.State()
	assert.False(t, state.Error)
	assert.Equal(t, 1, state.RetryCount)
	assert.Equal(t, twoPoints, state.Coordinates)
}

func TestScreen_SetPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRouteUC(ctrl)
	screen := NewScreen(mockUC, nil, testConfig())
	defer screen.Close()

	newOrigin := models.GeoPoint{Latitude: 33.81, Longitude: -117.92}
	mockUC.EXPECT().FetchRoute(gomock.Any(), newOrigin, testWaypoint, testDestination).Return(twoPoints, nil).Times(1)

	require.NoError(t, screen.SetPoints(context.Background(), newOrigin, testWaypoint, testDestination))
	// same points again do not refetch
	require.NoError(t, screen.SetPoints(context.Background(), newOrigin, testWaypoint, testDestination))

	state := screen.State()
	assert.Equal(t, newOrigin, state.Origin)
	assert.Equal(t, twoPoints, state.Coordinates)
}

func TestScreen_OnRegionChangeDebounced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	screen := NewScreen(mocks.NewMockRouteUC(ctrl), nil, testConfig())
	defer screen.Close()

	for i := 1; i <= 5; i++ {
		screen.OnRegionChange(models.Region{
			Latitude:       33.80 + float64(i)/100,
			Longitude:      -117.85,
			LatitudeDelta:  0.02,
			LongitudeDelta: 0.02,
		})
	}

	require.Eventually(t, func() bool {
		return math.Abs(screen.State().Region.Latitude-33.85) < 1e-9
	}, time.Second, 5*time.Millisecond)
	assert.Len(t, screen.State().RegionCell, 6)
}

func TestScreen_OnRegionChangeIgnoresNonFinite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	screen := NewScreen(mocks.NewMockRouteUC(ctrl), nil, testConfig())
	defer screen.Close()

	before := screen.State().Region
	screen.OnRegionChange(models.Region{Latitude: math.NaN(), Longitude: -117.85})
	screen.OnRegionChange(models.Region{Latitude: 33.8, Longitude: math.Inf(1)})

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, screen.State().Region)
}

func TestScreen_StateIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRouteUC(ctrl)
	screen := NewScreen(mockUC, nil, testConfig())
	defer screen.Close()

	mockUC.EXPECT().FetchRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.RouteCoordinates{{Latitude: 1, Longitude: 2}, {Latitude: 3, Longitude: 4}}, nil)
	require.NoError(t, screen.Load(context.Background()))

	state := screen.State()
	state.Coordinates[0].Latitude = 99

	assert.Equal(t, 1.0, screen.State().Coordinates[0].Latitude)
}
