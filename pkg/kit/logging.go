package kit

import (
	"context"
	"log/slog"
	"time"
)

// Logging returns a Middleware that logs every call to the named endpoint
// with its transport and duration. Rejected or unknown device mentions are
// normal responses, not errors, so only transport-level failures log at
// error level.
func Logging(logger *slog.Logger, name string) Middleware {
	return func(next Endpoint) Endpoint {
		return func(ctx context.Context, request any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, request)
			attrs := []any{
				"endpoint", name,
				"transport", GetTransport(ctx),
				"duration", time.Since(start),
			}
			if err != nil {
				logger.Error("endpoint failed", append(attrs, "error", err)...)
			} else {
				logger.Debug("endpoint served", attrs...)
			}
			return resp, err
		}
	}
}
