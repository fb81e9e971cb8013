// Package web serves the product pages, QR images and decode endpoint.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nakhla/datesqr/core/health"
	"github.com/nakhla/datesqr/core/i18n"
	"github.com/nakhla/datesqr/core/logger"
	"github.com/nakhla/datesqr/core/response"
	"github.com/nakhla/datesqr/core/router"
	"github.com/nakhla/datesqr/middleware"
	"github.com/nakhla/datesqr/pkg/productqr"
)

type ctx = *router.Context

const (
	// MaxDecodeBody bounds POST /qr/decode bodies.
	MaxDecodeBody = 2 * middleware.MB
	maxWidth      = 2048
	maxMargin     = 16
)

// Web wires the catalog, generator and display board to HTTP routes.
type Web struct {
	baseURL   string
	logger    *slog.Logger
	i18n      *i18n.I18n
	generator *productqr.Generator
	board     *productqr.Board
	checks    []health.Check
	router    router.Router[ctx]
}

type Option func(*Web)

// WithBaseURL sets the origin embedded in product codes.
func WithBaseURL(u string) Option {
	return func(w *Web) {
		w.baseURL = strings.TrimSuffix(u, "/")
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(w *Web) {
		if log != nil {
			w.logger = log
		}
	}
}

// WithGenerator replaces the default generator. Archiving needs one with storage.
func WithGenerator(g *productqr.Generator) Option {
	return func(w *Web) {
		if g != nil {
			w.generator = g
		}
	}
}

// WithReadinessCheck adds a dependency probe to GET /health/ready.
func WithReadinessCheck(name string, fn func(context.Context) error) Option {
	return func(w *Web) {
		if fn != nil {
			w.checks = append(w.checks, health.Check{Name: name, Fn: fn})
		}
	}
}

func WithI18n(tr *i18n.I18n) Option {
	return func(w *Web) {
		if tr != nil {
			w.i18n = tr
		}
	}
}

// New builds the HTTP handler.
func New(opts ...Option) (*Web, error) {
	w := &Web{
		baseURL: "http://localhost:8080",
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.i18n == nil {
		tr, err := NewI18n()
		if err != nil {
			return nil, err
		}
		w.i18n = tr
	}
	if w.generator == nil {
		w.generator = productqr.NewGenerator(productqr.WithLogger(w.logger))
	}
	w.board = productqr.NewBoard(w.generator, productqr.WithDisplayLogger(w.logger))

	r := router.New[ctx](
		router.WithLogger[ctx](w.logger),
		router.WithErrorHandler(response.JSONErrorHandler[ctx]),
	)
	r.Use(
		middleware.RequestID[ctx](),
		middleware.LoggingWithLogger[ctx](w.logger),
		middleware.Language[ctx](w.i18n, Namespace),
	)

	r.Get("/health", health.Liveness[ctx])
	r.Get("/health/ready", health.Readiness[ctx](w.logger,
		append([]health.Check{{Name: "qr", Fn: selfTest}}, w.checks...)...))
	r.Get("/products", w.listProducts)
	r.Route("/products", func(r router.Router[ctx]) {
		r.Get("/{id}", w.productPage)
		r.Get("/{id}/qr.png", w.productImage)
		r.Get("/{id}/qr/state", w.displayState)
		r.Post("/{id}/qr/refresh", w.refreshDisplay)
		r.Post("/{id}/qr/archive", w.archive)
	})
	r.With(middleware.BodyLimitWithSize[ctx](MaxDecodeBody)).Post("/qr/decode", w.decode)

	w.router = r
	return w, nil
}

func (w *Web) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	w.router.ServeHTTP(rw, r)
}

// Routes lists the registered routes.
func (w *Web) Routes() []router.Route {
	return w.router.Routes()
}

// Board exposes the display board.
func (w *Web) Board() *productqr.Board {
	return w.board
}

// Use the request language or the default when the middleware did not run.
func (w *Web) translator(c ctx) *i18n.Translator {
	if t, ok := middleware.GetTranslator(c); ok {
		return t
	}
	return i18n.NewTranslator(w.i18n, "", Namespace)
}
