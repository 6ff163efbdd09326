package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/maproute/internal/pkg/debounce"
	"github.com/piresc/maproute/internal/pkg/logger"
	"github.com/piresc/maproute/internal/pkg/models"
	"github.com/piresc/maproute/internal/utils"
	"github.com/piresc/maproute/services/route"
)

// SDKLoader loads the web map SDK and calls back once it is present
type SDKLoader interface {
	Load(ctx context.Context, callback func()) error
}

// Screen holds the map screen state and runs fetches on startup, retry and
// point changes. Only one fetch runs at a time.
type Screen struct {
	routeUC route.RouteUC
	sdk     SDKLoader

	fetchMu sync.Mutex

	mu    sync.RWMutex
	state models.ScreenState

	regions *debounce.Debouncer[models.Region]
}

// NewScreen creates the map screen. sdk may be nil on platforms that do not
// load a map SDK at runtime.
func NewScreen(routeUC route.RouteUC, sdk SDKLoader, cfg *models.Config) *Screen {
	s := &Screen{
		routeUC: routeUC,
		sdk:     sdk,
		state: models.ScreenState{
			Platform:    cfg.Map.Platform,
			Origin:      cfg.Map.Origin,
			Waypoint:    cfg.Map.Waypoint,
			Destination: cfg.Map.Destination,
			Coordinates: models.RouteCoordinates{},
			Region:      cfg.Map.InitialRegion,
			RegionCell:  utils.RegionCell(cfg.Map.InitialRegion),
		},
	}
	delay := time.Duration(cfg.Map.RegionDebounceMs) * time.Millisecond
	s.regions = debounce.New(delay, s.applyRegion)
	return s
}

// Load fetches the route for the current points and replaces the coordinates
func (s *Screen) Load(ctx context.Context) error {
	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()

	if s.sdk != nil {
		err := s.sdk.Load(ctx, func() {
			s.mu.Lock()
			s.state.SDKLoaded = true
			s.mu.Unlock()
		})
		if err != nil {
			logger.Warn("Map SDK not loaded", logger.Err(err))
		}
	}

	s.mu.Lock()
	s.state.Loading = true
	origin, waypoint, destination := s.state.Origin, s.state.Waypoint, s.state.Destination
	s.mu.Unlock()

	coords, err := s.routeUC.FetchRoute(ctx, origin, waypoint, destination)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		logger.Error("Error fetching coords", logger.Err(err))
		s.state.Error = true
		return err
	}
	s.state.Coordinates = coords
	return nil
}

// Retry clears the error view and fetches again
func (s *Screen) Retry(ctx context.Context) error {
	s.mu.Lock()
	s.state.RetryCount++
	s.state.Error = false
	retries := s.state.RetryCount
	s.mu.Unlock()

	logger.Info("Retrying route fetch", logger.Int("retry_count", retries))
	return s.Load(ctx)
}

// SetPoints replaces the route points and refetches when any of them changed
func (s *Screen) SetPoints(ctx context.Context, origin, waypoint, destination models.GeoPoint) error {
	s.mu.Lock()
	unchanged := s.state.Origin == origin && s.state.Waypoint == waypoint && s.state.Destination == destination
	if !unchanged {
		s.state.Origin = origin
		s.state.Waypoint = waypoint
		s.state.Destination = destination
	}
	s.mu.Unlock()

	if unchanged {
		return nil
	}
	return s.Load(ctx)
}

// OnRegionChange schedules a viewport update. Bursts are coalesced and only
// the last region is applied.
func (s *Screen) OnRegionChange(region models.Region) {
	s.regions.Trigger(region)
}

func (s *Screen) applyRegion(region models.Region) {
	if !region.IsValid() {
		logger.Debug("Ignoring non-finite region",
			logger.Float64("latitude", region.Latitude),
			logger.Float64("longitude", region.Longitude))
		return
	}

	cell := utils.RegionCell(region)

	s.mu.Lock()
	s.state.Region = region
	s.state.RegionCell = cell
	s.mu.Unlock()

	logger.Debug("Region changed",
		logger.Point("center", region.Latitude, region.Longitude),
		logger.String("cell", cell))
}

// HandleEvent records a map interaction
func (s *Screen) HandleEvent(event models.MapEvent) {
	fields := []logger.Field{logger.String("event", event.Type)}
	if event.Coordinate != nil {
		fields = append(fields, logger.Point("coordinate", event.Coordinate.Latitude, event.Coordinate.Longitude))
	}
	if event.Region != nil {
		fields = append(fields, logger.Any("region", event.Region))
	}
	logger.Info("Map event", fields...)
}

// State returns a copy of the current screen state
func (s *Screen) State() models.ScreenState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	state.Coordinates = append(models.RouteCoordinates{}, s.state.Coordinates...)
	return state
}

// Close stops pending region updates
func (s *Screen) Close() {
	s.regions.Stop()
}
