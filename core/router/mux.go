package router

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"

	gmux "github.com/gorilla/mux"

	"github.com/nakhla/datesqr/core/handler"
)

// shared state of a router tree
type tree[C handler.Context] struct {
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
	routes       []Route
}

type mux[C handler.Context] struct {
	tree        *tree[C]
	router      *gmux.Router
	prefix      string
	middlewares []handler.Middleware[C]
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		tree: &tree[C]{
			errorHandler: defaultErrorHandler[C],
			logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		router: gmux.NewRouter(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.tree.newContext == nil {
		m.tree.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	m.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.serve(w, r, errorEndpoint[C](ErrNotFound))
	})
	m.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.serve(w, r, errorEndpoint[C](ErrMethodNotAllowed))
	})

	return m
}

func errorEndpoint[C handler.Context](err error) handler.HandlerFunc[C] {
	return func(C) handler.Response {
		return func(http.ResponseWriter, *http.Request) error { return err }
	}
}

func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.router.ServeHTTP(w, r)
}

// serve runs h behind this level's middleware. Panics are recovered and
// passed to the error handler unless the response was already started.
func (m *mux[C]) serve(w http.ResponseWriter, r *http.Request, h handler.HandlerFunc[C]) {
	ww := newResponseWriter(w)
	ctx := m.tree.newContext(ww, r, gmux.Vars(r))

	defer func() {
		if p := recover(); p != nil {
			perr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				m.tree.logger.Error("panic after response written",
					slog.Any("value", p),
					slog.String("stack", string(perr.stack)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status_code", ww.Status()),
				)
				return
			}
			m.tree.errorHandler(ctx, perr)
		}
	}()

	resp := handler.Chain(h, m.middlewares...)(ctx)
	if resp == nil {
		m.tree.errorHandler(ctx, ErrNilResponse)
		return
	}
	// Middleware may have replaced the request through SetValue.
	if err := resp(ww, ctx.Request()); err != nil {
		m.tree.errorHandler(ctx, err)
	}
}

func (m *mux[C]) handle(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if h == nil {
		panic(ErrNilHandler)
	}

	route := m.router.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.serve(w, r, h)
	}))

	if len(methods) == 0 {
		m.tree.routes = append(m.tree.routes, Route{Method: "*", Pattern: m.prefix + pattern})
		return
	}
	route.Methods(methods...)
	for _, method := range methods {
		m.tree.routes = append(m.tree.routes, Route{Method: method, Pattern: m.prefix + pattern})
	}
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h, http.MethodGet, http.MethodHead)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h, http.MethodPost)
}

func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h, http.MethodPut)
}

func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h, http.MethodDelete)
}

func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h, http.MethodPatch)
}

func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h)
}

func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(ErrInvalidMethod)
	}
	m.handle(pattern, h, methods...)
}

func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	m.middlewares = append(m.middlewares, middlewares...)
}

func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	child := m.child(m.router, "")
	child.middlewares = append(child.middlewares, middlewares...)
	return child
}

func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	child := m.child(m.router, "")
	if fn != nil {
		fn(child)
	}
	return child
}

func (m *mux[C]) Route(pattern string, fn func(r Router[C])) Router[C] {
	child := m.child(m.router.PathPrefix(pattern).Subrouter(), pattern)
	if fn != nil {
		fn(child)
	}
	return child
}

func (m *mux[C]) child(r *gmux.Router, prefix string) *mux[C] {
	return &mux[C]{
		tree:        m.tree,
		router:      r,
		prefix:      m.prefix + prefix,
		middlewares: slices.Clone(m.middlewares),
	}
}

func (m *mux[C]) Routes() []Route {
	return slices.Clone(m.tree.routes)
}
