// Package context carries request-scoped values between the delivery layer
// and the services below it. Handlers read them off echo.Context; the usecase
// layer reads them off context.Context, so nothing below delivery imports echo.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"
)

// HeaderXRequestID names the header that carries the request ID on both the
// incoming request and the response.
const HeaderXRequestID = "X-Request-Id"

// SetRequestID records the request ID on the echo context for the response
// envelope to pick up.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// GetRequestID returns the request ID recorded on the echo context. When the
// request-ID middleware has not run (handlers invoked directly in tests), a
// fresh one is minted so responses always carry an ID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// WithRequestID stores the request ID for the layers below delivery.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// WithLogger stores the request-scoped logger, already tagged with the
// request ID.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the
// given logger when the context carries none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
