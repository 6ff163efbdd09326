package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError reports an error to New Relic
func NoticeError(c echo.Context, err error) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(err)
	}
}

// SetTransactionName sets the transaction name for better tracing visibility
func SetTransactionName(ctx context.Context, name string) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.SetName(name)
	}
}
