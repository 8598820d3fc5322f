// Package context carries per-request values between the HTTP layer, the use
// cases and the infrastructure: the request id, the request-scoped logger and the
// authenticated actor.
package context

import (
	"context"
	"log/slog"

	"autoconnect/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a request id is read from and echoed in.
const HeaderXRequestID = "X-Request-Id"

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
	actorKey
)

// echoRequestIDKey is the echo.Context key of the request id.
const echoRequestIDKey = "request_id"

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the request id of c, looking at the echo context first and
// the request context second. It is empty when no id was assigned.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// WithRequestID returns ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request id of ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger of ctx, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithActor returns ctx carrying the authenticated actor.
func WithActor(ctx context.Context, actor *entity.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor returns the authenticated actor of ctx.
func GetActor(ctx context.Context) (*entity.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(*entity.Actor)

	return actor, ok && actor != nil
}
