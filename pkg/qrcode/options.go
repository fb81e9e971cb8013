package qrcode

import "image/color"

const (
	DefaultWidth  = 256
	DefaultMargin = 1
	DefaultLevel  = Medium
)

var (
	// DefaultForeground is saddle brown (#8B4513).
	DefaultForeground color.Color = color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xFF}
	DefaultBackground color.Color = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

type options struct {
	level      RecoveryLevel
	margin     int
	foreground color.Color
	background color.Color
	width      int
}

func defaultOptions() options {
	return options{
		level:      DefaultLevel,
		margin:     DefaultMargin,
		foreground: DefaultForeground,
		background: DefaultBackground,
		width:      DefaultWidth,
	}
}

// Option configures Render.
type Option func(*options)

// WithLevel sets the error correction level.
func WithLevel(level RecoveryLevel) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithMargin sets the quiet zone width in modules. Negative values are ignored.
func WithMargin(modules int) Option {
	return func(o *options) {
		if modules >= 0 {
			o.margin = modules
		}
	}
}

// WithWidth sets the output width (and height) in pixels. Non-positive values are ignored.
// Widths smaller than the symbol are raised to one pixel per module.
func WithWidth(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.width = px
		}
	}
}

// WithForeground sets the color of dark modules.
func WithForeground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.foreground = c
		}
	}
}

// WithBackground sets the color of light modules and the quiet zone.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

// WithColors sets both colors at once.
func WithColors(foreground, background color.Color) Option {
	return func(o *options) {
		WithForeground(foreground)(o)
		WithBackground(background)(o)
	}
}
