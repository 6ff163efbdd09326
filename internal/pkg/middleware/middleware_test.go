package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	httpclient "github.com/piresc/maproute/internal/pkg/http"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates id", func(t *testing.T) {
		var ctxID interface{}
		handler := RequestIDMiddleware()(func(c echo.Context) error {
			ctxID = c.Request().Context().Value(httpclient.RequestIDKey{})
			return c.NoContent(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		assert.NoError(t, handler(c))
		requestID := rec.Header().Get(echo.HeaderXRequestID)
		_, err := uuid.Parse(requestID)
		assert.NoError(t, err)
		assert.Equal(t, requestID, ctxID)
		assert.Equal(t, requestID, c.Get("request_id"))
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		handler := RequestIDMiddleware()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()

		assert.NoError(t, handler(echo.New().NewContext(req, rec)))
		assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
	})
}

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		header   string
		status   int
	}{
		{name: "disabled", expected: "", header: "", status: http.StatusOK},
		{name: "valid", expected: "secret", header: "secret", status: http.StatusOK},
		{name: "missing", expected: "secret", header: "", status: http.StatusUnauthorized},
		{name: "wrong", expected: "secret", header: "nope", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := ValidateAPIKey(tt.expected)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/map", nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			assert.NoError(t, handler(echo.New().NewContext(req, rec)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
