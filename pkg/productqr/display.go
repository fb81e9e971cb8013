package productqr

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nakhla/datesqr/core/logger"
	"github.com/nakhla/datesqr/pkg/async"
	"github.com/nakhla/datesqr/pkg/qrcode"
)

// Renderer produces a Result for product data. *Generator implements it.
type Renderer interface {
	Generate(ctx context.Context, data ProductQRData, opts ...qrcode.Option) (*Result, error)
}

// Status of a Display.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusReady   Status = "ready"
)

// State is a snapshot of a Display. Result is set when Status is ready and
// Err when Status is error. Stale is only set on states returned by Refresh
// futures whose render was superseded before it completed.
type State struct {
	Status Status
	Seq    uint64
	Result *Result
	Err    error
	Stale  bool
}

// DisplayOption configures a Display or Board.
type DisplayOption func(*displayConfig)

type displayConfig struct {
	logger *slog.Logger
}

// WithDisplayLogger sets the logger used to report dropped renders.
func WithDisplayLogger(log *slog.Logger) DisplayOption {
	return func(c *displayConfig) {
		if log != nil {
			c.logger = log
		}
	}
}

func newDisplayConfig(opts []DisplayOption) displayConfig {
	cfg := displayConfig{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Display holds the render state of one QR widget. Each Refresh gets a new
// sequence number and only the latest one may change the state.
type Display struct {
	renderer Renderer
	logger   *slog.Logger

	mu    sync.Mutex
	seq   uint64
	state State
}

// NewDisplay creates an idle display.
func NewDisplay(r Renderer, opts ...DisplayOption) *Display {
	cfg := newDisplayConfig(opts)
	return &Display{
		renderer: r,
		logger:   cfg.logger,
		state:    State{Status: StatusIdle},
	}
}

// Refresh moves the display to loading and renders data in the background.
// The render is detached from ctx cancellation but keeps its values. The
// returned future resolves to the state this render produced; if a newer
// Refresh started meanwhile, that state has Stale set and was not applied.
func (d *Display) Refresh(ctx context.Context, data ProductQRData, opts ...qrcode.Option) *async.Future[State] {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.state = State{Status: StatusLoading, Seq: seq}
	d.mu.Unlock()

	return async.Async(context.WithoutCancel(ctx), data, func(ctx context.Context, data ProductQRData) (State, error) {
		res, err := d.renderer.Generate(ctx, data, opts...)
		return d.complete(ctx, seq, data, res, err), nil
	})
}

func (d *Display) complete(ctx context.Context, seq uint64, data ProductQRData, res *Result, err error) State {
	next := State{Status: StatusReady, Seq: seq, Result: res}
	if err != nil {
		next = State{Status: StatusError, Seq: seq, Err: err}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if seq != d.seq {
		next.Stale = true
		d.logger.DebugContext(ctx, "stale qr render dropped",
			logger.Component("productqr"),
			logger.ProductID(data.ProductID),
			logger.Seq(seq),
			slog.Uint64("latest_seq", d.seq),
		)
		return next
	}

	d.state = next
	return next
}

// Snapshot returns the current state.
func (d *Display) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Board keeps one Display per key.
type Board struct {
	renderer Renderer
	opts     []DisplayOption

	mu       sync.Mutex
	displays map[string]*Display
}

// NewBoard creates an empty board. Displays are created on first use.
func NewBoard(r Renderer, opts ...DisplayOption) *Board {
	return &Board{
		renderer: r,
		opts:     opts,
		displays: make(map[string]*Display),
	}
}

// Display returns the display for key, creating it if needed.
func (b *Board) Display(key string) *Display {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.displays[key]
	if !ok {
		d = NewDisplay(b.renderer, b.opts...)
		b.displays[key] = d
	}
	return d
}

// Refresh starts a render on the display for key.
func (b *Board) Refresh(ctx context.Context, key string, data ProductQRData, opts ...qrcode.Option) *async.Future[State] {
	return b.Display(key).Refresh(ctx, data, opts...)
}

// Snapshot returns the state for key. Unknown keys report idle.
func (b *Board) Snapshot(key string) State {
	b.mu.Lock()
	d, ok := b.displays[key]
	b.mu.Unlock()

	if !ok {
		return State{Status: StatusIdle}
	}
	return d.Snapshot()
}
