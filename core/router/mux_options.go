package router

import (
	"log/slog"
	"net/http"

	"github.com/nakhla/datesqr/core/handler"
)

// Option configures a Router during creation.
type Option[C handler.Context] func(*mux[C])

// WithErrorHandler replaces the plain-text default error handler.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(m *mux[C]) {
		if h != nil {
			m.tree.errorHandler = h
		}
	}
}

// WithMiddleware adds root middleware. It also wraps not-found and
// method-not-allowed replies.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(m *mux[C]) {
		m.middlewares = append(m.middlewares, middlewares...)
	}
}

// WithContextFactory builds custom contexts from the writer, request and path variables.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request, map[string]string) C) Option[C] {
	return func(m *mux[C]) {
		m.tree.newContext = f
	}
}

// WithLogger sets the logger for panics that cannot be reported to the client.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(m *mux[C]) {
		if logger != nil {
			m.tree.logger = logger
		}
	}
}
