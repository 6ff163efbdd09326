package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/maproute/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey rejects requests whose X-API-Key header does not match
// expected. An empty expected key disables the check.
func ValidateAPIKey(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if expected == "" {
			return next
		}

		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
