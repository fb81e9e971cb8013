package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/nakhla/datesqr/core/handler"
)

type requestIDContextKey struct{}

// RequestIDConfig configures RequestIDWithConfig.
type RequestIDConfig struct {
	Skip func(ctx handler.Context) bool
	// Generator defaults to UUID v4.
	Generator func() string
	// HeaderName defaults to X-Request-ID.
	HeaderName string
	// UseExisting trusts an incoming header value.
	UseExisting bool
}

// RequestID tags each request with a fresh UUID, stored in the context and
// echoed in the X-Request-ID response header.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Middleware[C] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = uuid.NewString
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			var id string
			if cfg.UseExisting {
				id = ctx.Request().Header.Get(cfg.HeaderName)
			}
			if id == "" || len(id) > 128 {
				id = cfg.Generator()
			}

			ctx.SetValue(requestIDContextKey{}, id)
			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set(cfg.HeaderName, id)
				return resp(w, r)
			}
		}
	}
}

// GetRequestID returns the request ID stored by RequestID.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
