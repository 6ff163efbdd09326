package newrelic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/maproute/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHTTPRequest_NoTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := InstrumentHTTPRequest(context.Background(), req, func() (*http.Response, error) {
		return http.DefaultClient.Do(req)
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}

func TestInitNewRelic_Disabled(t *testing.T) {
	cfg := &models.Config{}
	assert.Nil(t, InitNewRelic(cfg))

	cfg.NewRelic.Enabled = true
	assert.Nil(t, InitNewRelic(cfg), "missing license key keeps the agent off")
}

func TestEchoMiddleware_NilAppPassesThrough(t *testing.T) {
	e := echo.New()
	called := false
	h := EchoMiddleware(nil)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
