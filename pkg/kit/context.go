package kit

import "context"

type contextKey string

const (
	// TransportKey records which transport carried the request: "http", "mcp".
	TransportKey contextKey = "kit_transport"
)

func WithTransport(ctx context.Context, t string) context.Context {
	return context.WithValue(ctx, TransportKey, t)
}

func GetTransport(ctx context.Context) string {
	if v, ok := ctx.Value(TransportKey).(string); ok {
		return v
	}
	return "http"
}
