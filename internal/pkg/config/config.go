package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/piresc/maproute/internal/pkg/models"
)

// Fixed points of the Anaheim demo route
var (
	DefaultOrigin      = models.GeoPoint{Latitude: 33.843663, Longitude: -117.945171}
	DefaultWaypoint    = models.GeoPoint{Latitude: 33.8589565, Longitude: -117.9589782}
	DefaultDestination = models.GeoPoint{Latitude: 33.8252956, Longitude: -117.8307728}
)

const (
	DefaultDirectionsURL = "https://maps.googleapis.com/maps/api/directions/json"
	DefaultSDKURL        = "https://maps.googleapis.com/maps/api/js"
	DefaultRegionDelta   = 0.045
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "maproute")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)
	configs.Server.APIKey = GetEnv("SERVER_API_KEY", "")

	// Mapping service config
	configs.Maps.APIKey = GetEnv("MAPS_API_KEY", "")
	configs.Maps.DirectionsURL = GetEnv("MAPS_DIRECTIONS_URL", DefaultDirectionsURL)
	configs.Maps.ProxyURL = GetEnv("MAPS_PROXY_URL", "")
	configs.Maps.SDKURL = GetEnv("MAPS_SDK_URL", DefaultSDKURL)
	configs.Maps.TimeoutSeconds = GetEnvAsInt("MAPS_TIMEOUT_SECONDS", 0)

	// Map screen config
	configs.Map.Platform = GetEnv("MAP_PLATFORM", "web")
	configs.Map.Origin = models.GeoPoint{
		Latitude:  GetEnvAsFloat("MAP_ORIGIN_LAT", DefaultOrigin.Latitude),
		Longitude: GetEnvAsFloat("MAP_ORIGIN_LNG", DefaultOrigin.Longitude),
	}
	configs.Map.Waypoint = models.GeoPoint{
		Latitude:  GetEnvAsFloat("MAP_WAYPOINT_LAT", DefaultWaypoint.Latitude),
		Longitude: GetEnvAsFloat("MAP_WAYPOINT_LNG", DefaultWaypoint.Longitude),
	}
	configs.Map.Destination = models.GeoPoint{
		Latitude:  GetEnvAsFloat("MAP_DESTINATION_LAT", DefaultDestination.Latitude),
		Longitude: GetEnvAsFloat("MAP_DESTINATION_LNG", DefaultDestination.Longitude),
	}
	configs.Map.InitialRegion = models.Region{
		Latitude:       configs.Map.Destination.Latitude,
		Longitude:      configs.Map.Destination.Longitude,
		LatitudeDelta:  GetEnvAsFloat("MAP_REGION_DELTA", DefaultRegionDelta),
		LongitudeDelta: GetEnvAsFloat("MAP_REGION_DELTA", DefaultRegionDelta),
	}
	configs.Map.RegionDebounceMs = GetEnvAsInt("MAP_REGION_DEBOUNCE_MS", 10)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// NewRelic config
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "maproute")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
