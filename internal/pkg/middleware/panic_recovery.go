package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/maproute/internal/pkg/logger"
)

// PanicRecoveryWithZapMiddleware recovers from handler panics, logs them with
// the stack trace and answers 500
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryWithZapMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())
	requestID := getRequestID(c)
	panicType := fmt.Sprintf("%T", r)

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  panicType,
				"http.method": c.Request().Method,
				"http.path":   c.Request().URL.Path,
				"request_id":  requestID,
			},
		})
	}

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", panicType),
		logger.String("stack_trace", stackTrace),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_agent", c.Request().UserAgent()),
		logger.String("request_id", requestID),
	)

	sendPanicResponse(c, requestID)
}

func getRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

func sendPanicResponse(c echo.Context, requestID string) {
	if c.Response().Committed {
		return
	}

	response := map[string]interface{}{
		"error":   "Internal Server Error",
		"message": "An unexpected error occurred while processing your request",
	}
	if requestID != "" {
		response["request_id"] = requestID
	}

	if err := c.JSON(http.StatusInternalServerError, response); err != nil {
		_ = c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
