package handler

import "net/http"

// Response writes a reply. A returned error goes to the router's ErrorHandler
// and must only be returned before anything was written.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc handles a request and returns how to answer it.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler renders errors returned by responses.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a HandlerFunc.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// Chain applies middlewares so that the first one runs outermost.
func Chain[C Context](h HandlerFunc[C], middlewares ...Middleware[C]) HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
