package handler

import (
	"context"
	"net/http"
)

// Context is the request context passed to handlers. It is a context.Context
// backed by the request context.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// Param returns a path variable, or "" if absent.
	Param(key string) string
	// SetValue stores a request-scoped value visible through Value and the
	// request context.
	SetValue(key, val any)
}
