package router

import (
	"net/http"

	"github.com/nakhla/datesqr/core/handler"
)

// Router registers typed handlers on top of a gorilla/mux router.
// Patterns use gorilla syntax: /products/{id}, /files/{name:[a-z]+}.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])

	// Handle matches any method.
	Handle(pattern string, h handler.HandlerFunc[C])
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Use appends middleware to this router and its groups created afterwards.
	Use(middlewares ...handler.Middleware[C])
	// With returns a group with extra middleware.
	With(middlewares ...handler.Middleware[C]) Router[C]

	// Group calls fn with a router sharing this prefix and a copy of the
	// middleware stack.
	Group(fn func(r Router[C])) Router[C]
	// Route mounts a sub-router under pattern.
	Route(pattern string, fn func(r Router[C])) Router[C]
}

// Routes lists registered routes.
type Routes interface {
	Routes() []Route
}

// Route is a registered method and full pattern. Method is "*" for Handle.
type Route struct {
	Method  string
	Pattern string
}

// New creates a router. Without WithContextFactory, C must be *Context.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux(opts...)
}
