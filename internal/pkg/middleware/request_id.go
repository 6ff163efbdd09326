package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	httpclient "github.com/piresc/maproute/internal/pkg/http"
)

// RequestIDMiddleware adds a unique request ID to each request and makes it
// available to outbound calls through the request context
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)

			ctx := context.WithValue(c.Request().Context(), httpclient.RequestIDKey{}, requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
