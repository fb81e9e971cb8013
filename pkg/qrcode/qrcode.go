package qrcode

import (
	"bytes"
	"fmt"
	"image/png"

	goqr "github.com/skip2/go-qrcode"
)

// Render encodes content as a QR symbol and rasterizes it to PNG.
// The returned image scans back to content byte for byte.
func Render(content string, opts ...Option) (*Image, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	level, err := o.level.encoderLevel()
	if err != nil {
		return nil, err
	}

	q, err := goqr.New(content, level)
	if err != nil {
		return nil, &EncodingError{
			Level:  o.level,
			Length: len(content),
			Err:    fmt.Errorf("%w: %w", ErrContentTooLong, err),
		}
	}
	// The quiet zone is drawn by rasterize with the configured margin.
	q.DisableBorder = true
	bitmap := q.Bitmap()

	raster := rasterize(bitmap, o.margin, o.width, o.foreground, o.background)

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, raster); err != nil {
		return nil, fmt.Errorf("qrcode: encode png: %w", err)
	}

	return &Image{
		content: content,
		png:     buf.Bytes(),
		width:   raster.Bounds().Dx(),
		modules: len(bitmap),
		level:   o.level,
	}, nil
}
