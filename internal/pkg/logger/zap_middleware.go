package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware logs every request handled by echo with the given logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// let echo write the error response so the status below is final
				c.Error(err)
			}

			logger.LogHTTPRequest(
				c.Request().Method,
				path,
				c.RealIP(),
				c.Response().Header().Get(echo.HeaderXRequestID),
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}
