package newrelic

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/maproute/internal/pkg/logger"
	"github.com/piresc/maproute/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application. It returns nil when the
// agent is disabled or cannot start; callers treat nil as "no APM".
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	logger.Info("New Relic enabled", logger.String("app_name", configs.NewRelic.AppName))
	return nrApp
}

// EchoMiddleware returns the nrecho transaction middleware, or a pass-through
// middleware when nrApp is nil.
func EchoMiddleware(nrApp *newrelic.Application) echo.MiddlewareFunc {
	if nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return nrecho.Middleware(nrApp)
}
