package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// ReadinessCheck reports whether the service can take traffic
type ReadinessCheck func() error

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName
	buildInfo.Hostname = hostname

	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// RegisterHealthEndpoints registers the health check endpoints. Checks run on
// /ready only; liveness endpoints always answer OK.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checks ...ReadinessCheck) {
	e.GET("/ping", NewPingHandler(serviceName))

	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", ok)
	e.GET("/healthz", ok)

	e.GET("/ready", func(c echo.Context) error {
		for _, check := range checks {
			if err := check(); err != nil {
				return c.String(http.StatusServiceUnavailable, err.Error())
			}
		}
		return c.String(http.StatusOK, "OK")
	})
}
