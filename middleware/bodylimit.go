package middleware

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/nakhla/datesqr/core/handler"
	"github.com/nakhla/datesqr/core/response"
)

const (
	KB int64 = 1024
	MB       = 1024 * KB
)

// BodyLimitConfig configures BodyLimitWithConfig.
type BodyLimitConfig struct {
	Skip func(ctx handler.Context) bool
	// MaxSize defaults to 4MB.
	MaxSize int64
	// ContentTypeLimit overrides MaxSize per media type, e.g. {"image/png": 2 * MB}.
	ContentTypeLimit map[string]int64
	// ErrorHandler renders requests rejected by their Content-Length.
	ErrorHandler func(ctx handler.Context, contentLength, maxSize int64) handler.Response
}

// BodyLimit caps request bodies at 4MB.
func BodyLimit[C handler.Context]() handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{})
}

func BodyLimitWithSize[C handler.Context](maxSize int64) handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitWithConfig rejects a declared Content-Length above the limit up
// front and wraps the body in http.MaxBytesReader for everything else, so a
// handler reading too much gets a *http.MaxBytesError.
func BodyLimitWithConfig[C handler.Context](cfg BodyLimitConfig) handler.Middleware[C] {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 4 * MB
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(_ handler.Context, contentLength, maxSize int64) handler.Response {
			return response.Error(response.ErrRequestEntityTooLarge.
				WithMessage(fmt.Sprintf("Request body too large. Maximum allowed: %s", formatBytes(maxSize))).
				WithDetails(map[string]any{"limit": maxSize, "size": contentLength}))
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			maxSize := cfg.MaxSize
			if mediaType, _, err := mime.ParseMediaType(req.Header.Get("Content-Type")); err == nil {
				if limit, ok := cfg.ContentTypeLimit[mediaType]; ok {
					maxSize = limit
				}
			}

			if req.ContentLength > maxSize {
				return cfg.ErrorHandler(ctx, req.ContentLength, maxSize)
			}
			if req.Body != nil && req.Body != http.NoBody {
				req.Body = http.MaxBytesReader(ctx.ResponseWriter(), req.Body, maxSize)
			}

			return next(ctx)
		}
	}
}

func formatBytes(n int64) string {
	switch {
	case n >= MB:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(MB))
	case n >= KB:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
