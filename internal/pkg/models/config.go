package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Maps     MapsConfig
	Map      MapConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	APIKey          string // optional, protects /v1 routes when set
}

// MapsConfig contains settings for the third-party mapping service
type MapsConfig struct {
	APIKey         string
	DirectionsURL  string
	ProxyURL       string // optional prefix, e.g. a CORS proxy
	SDKURL         string
	TimeoutSeconds int // 0 means no client-side timeout
}

// MapConfig contains the map screen settings
type MapConfig struct {
	Platform         string // web, ios or android
	Origin           GeoPoint
	Waypoint         GeoPoint
	Destination      GeoPoint
	InitialRegion    Region
	RegionDebounceMs int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	Enabled    bool
	LicenseKey string
	AppName    string
}
