package productqr

import (
	"context"
	"log/slog"
	"time"

	"github.com/nakhla/datesqr/core/logger"
	"github.com/nakhla/datesqr/core/storage"
	"github.com/nakhla/datesqr/pkg/qrcode"
)

// Result is a rendered product code.
type Result struct {
	Data     ProductQRData
	Payload  string
	Image    *qrcode.Image
	Filename string
}

// DataURI returns the image as a PNG data URI.
func (r *Result) DataURI() string {
	return r.Image.DataURI()
}

// Generator validates product data, encodes the payload and renders it.
type Generator struct {
	codec   *Codec
	render  []qrcode.Option
	storage storage.Storage
	logger  *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithCodec sets the payload codec.
func WithCodec(c *Codec) GeneratorOption {
	return func(g *Generator) {
		if c != nil {
			g.codec = c
		}
	}
}

// WithRenderOptions sets default render options. Options passed to Generate
// are applied after these.
func WithRenderOptions(opts ...qrcode.Option) GeneratorOption {
	return func(g *Generator) {
		g.render = append(g.render, opts...)
	}
}

// WithStorage sets the backend used by Save.
func WithStorage(s storage.Storage) GeneratorOption {
	return func(g *Generator) {
		g.storage = s
	}
}

// WithLogger sets the logger. Defaults to a discard logger.
func WithLogger(log *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if log != nil {
			g.logger = log
		}
	}
}

// NewGenerator creates a generator with the default codec and render options.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		codec:  defaultCodec,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders the code for data. Validation failures wrap
// ErrMissingField or ErrInvalidText; capacity overflow is a *qrcode.EncodingError.
func (g *Generator) Generate(ctx context.Context, data ProductQRData, opts ...qrcode.Option) (*Result, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	payload := g.codec.Encode(data)

	renderOpts := make([]qrcode.Option, 0, len(g.render)+len(opts))
	renderOpts = append(renderOpts, g.render...)
	renderOpts = append(renderOpts, opts...)

	img, err := qrcode.Render(payload, renderOpts...)
	if err != nil {
		g.logger.WarnContext(ctx, "qr render failed",
			logger.Component("productqr"),
			logger.ProductID(data.ProductID),
			slog.Int("payload_length", len(payload)),
			logger.Error(err),
		)
		return nil, err
	}

	g.logger.DebugContext(ctx, "qr rendered",
		logger.Component("productqr"),
		logger.ProductID(data.ProductID),
		slog.String("level", img.Level().String()),
		slog.Int("width", img.Width()),
		logger.Size(img.Size()),
		logger.Elapsed(start),
	)

	return &Result{
		Data:     data,
		Payload:  payload,
		Image:    img,
		Filename: Filename(data),
	}, nil
}

// Save writes the result PNG to storage under its filename.
func (g *Generator) Save(ctx context.Context, res *Result) (*storage.File, error) {
	return g.SaveAs(ctx, res, "")
}

// SaveAs writes the result PNG under name. An empty name uses res.Filename.
func (g *Generator) SaveAs(ctx context.Context, res *Result, name string) (*storage.File, error) {
	if g.storage == nil {
		return nil, ErrNoStorage
	}
	if res == nil || res.Image == nil {
		return nil, ErrNilResult
	}
	if name == "" {
		name = res.Filename
	}

	file, err := g.storage.Put(ctx, name, res.Image.PNG(), qrcode.MIMEType)
	if err != nil {
		g.logger.ErrorContext(ctx, "qr save failed",
			logger.Component("productqr"),
			logger.ProductID(res.Data.ProductID),
			logger.Filename(name),
			logger.Error(err),
		)
		return nil, err
	}

	g.logger.InfoContext(ctx, "qr saved",
		logger.Component("productqr"),
		logger.ProductID(res.Data.ProductID),
		logger.Filename(file.RelativePath),
		logger.Size(int(file.Size)),
	)
	return file, nil
}

// URL returns the public URL of a saved file, or "" without storage.
func (g *Generator) URL(path string) string {
	if g.storage == nil {
		return ""
	}
	return g.storage.URL(path)
}
