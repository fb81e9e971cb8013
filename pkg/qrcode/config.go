package qrcode

import "fmt"

// Config holds rendering defaults loaded from the environment.
type Config struct {
	Level      RecoveryLevel `env:"QR_ERROR_CORRECTION" envDefault:"M"`
	Margin     int           `env:"QR_MARGIN" envDefault:"1"`
	Foreground string        `env:"QR_FOREGROUND" envDefault:"#8B4513"`
	Background string        `env:"QR_BACKGROUND" envDefault:"#FFFFFF"`
	Width      int           `env:"QR_WIDTH" envDefault:"256"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Margin:     DefaultMargin,
		Foreground: "#8B4513",
		Background: "#FFFFFF",
		Width:      DefaultWidth,
	}
}

// Options converts the config into render options.
func (c Config) Options() ([]Option, error) {
	if _, err := c.Level.encoderLevel(); err != nil {
		return nil, err
	}

	opts := []Option{
		WithLevel(c.Level),
		WithMargin(c.Margin),
		WithWidth(c.Width),
	}

	if c.Foreground != "" {
		fg, err := ParseColor(c.Foreground)
		if err != nil {
			return nil, fmt.Errorf("foreground: %w", err)
		}
		opts = append(opts, WithForeground(fg))
	}
	if c.Background != "" {
		bg, err := ParseColor(c.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		opts = append(opts, WithBackground(bg))
	}

	return opts, nil
}
