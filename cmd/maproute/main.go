package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/maproute/internal/pkg/config"
	"github.com/piresc/maproute/internal/pkg/health"
	httpclient "github.com/piresc/maproute/internal/pkg/http"
	"github.com/piresc/maproute/internal/pkg/logger"
	"github.com/piresc/maproute/internal/pkg/mapsdk"
	"github.com/piresc/maproute/internal/pkg/middleware"
	"github.com/piresc/maproute/internal/pkg/models"
	nrpkg "github.com/piresc/maproute/internal/pkg/newrelic"
	"github.com/piresc/maproute/internal/pkg/server"
	"github.com/piresc/maproute/internal/utils"
	"github.com/piresc/maproute/services/route/decoder"
	"github.com/piresc/maproute/services/route/gateway"
	"github.com/piresc/maproute/services/route/handler"
	httpHandler "github.com/piresc/maproute/services/route/handler/http"
	"github.com/piresc/maproute/services/route/render"
	"github.com/piresc/maproute/services/route/usecase"
)

func main() {
	appName := "maproute"
	configPath := flag.String("config", "config/maproute.env", "path to the .env file loaded when APP_ENV=local")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize New Relic
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			zapLogger.Warn("New Relic connection timeout", logger.Err(err))
		}
	}

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("platform", configs.Map.Platform),
		logger.String("maps_api_key", utils.MaskSecret(configs.Maps.APIKey)),
	)

	// Outbound client shared by the directions gateway and the SDK loader
	mapsClient := httpclient.NewClient(httpclient.Config{
		Timeout:     time.Duration(configs.Maps.TimeoutSeconds) * time.Second,
		ServiceName: "maps",
	})

	// Web clients decode with the SDK once it has loaded, mobile clients ship
	// the geometry library with the app
	var geometry mapsdk.GeometryProvider
	var sdk usecase.SDKLoader
	var readiness []health.ReadinessCheck
	if configs.Map.Platform == models.PlatformWeb {
		loader := mapsdk.NewLoader(configs.Maps.SDKURL, configs.Maps.APIKey, mapsClient)
		geometry = loader
		sdk = loader
		readiness = append(readiness, func() error {
			if !loader.Loaded() {
				return errors.New("map sdk not loaded")
			}
			return nil
		})
	} else {
		geometry = mapsdk.NativeGeometry()
	}

	// Initialize Gateway
	directionsGW := gateway.NewDirectionsGateway(configs.Maps, mapsClient)

	// Initialize UseCase
	routeUC := usecase.NewRouteUC(directionsGW, decoder.NewDecoder(geometry), configs)
	screen := usecase.NewScreen(routeUC, sdk, configs)

	// Handlers for HTTP
	routeHandler := httpHandler.NewRouteHandler(routeUC, screen, render.ForPlatform(configs.Map.Platform))
	Handler := handler.NewHandler(routeHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, readiness...)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Initial fetch, the screen shows loading until it completes
	go func() {
		if err := screen.Load(context.Background()); err != nil {
			zapLogger.Error("Initial route fetch failed", logger.Err(err))
		}
	}()

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(ctx context.Context) error {
		screen.Close()
		return nil
	})
	if nrApp != nil {
		srv.OnShutdown(func(ctx context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
