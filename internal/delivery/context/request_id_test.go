package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequestID_RoundTrip(t *testing.T) {
	c := newEchoContext()

	SetRequestID(c, "req-123")

	assert.Equal(t, "req-123", GetRequestID(c))
}

func TestRequestID_MintedWhenAbsent(t *testing.T) {
	c := newEchoContext()

	id := GetRequestID(c)

	assert.NotEmpty(t, id)
	// Each call without a recorded ID mints a fresh one.
	assert.NotEqual(t, id, GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("returns fallback when context carries no logger", func(t *testing.T) {
		assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	})

	t.Run("returns the stored logger", func(t *testing.T) {
		scoped := fallback.With(slog.String("request_id", "req-123"))
		ctx := WithLogger(context.Background(), scoped)

		assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
	})
}
