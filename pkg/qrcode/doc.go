// Package qrcode renders strings as PNG QR codes and reads them back.
//
// Encoding is done with github.com/skip2/go-qrcode, so capacity limits per
// error correction level are the ones of that library. The package draws the
// module matrix itself, which lets callers pick the quiet zone width, the
// brand colors and the exact pixel width of the output raster. Reading uses
// github.com/makiuchi-d/gozxing, a port of the ZXing reader.
//
// # Rendering
//
// Render with defaults (Medium error correction, 1 module margin, brown on
// white, 256x256 pixels):
//
//	img, err := qrcode.Render(payload)
//	if err != nil {
//		var encErr *qrcode.EncodingError
//		if errors.As(err, &encErr) {
//			// payload does not fit at encErr.Level
//		}
//		return err
//	}
//
//	fmt.Printf(`<img src="%s" alt="QR">`, img.DataURI())
//
// Override any default with options:
//
//	img, err := qrcode.Render(payload,
//		qrcode.WithLevel(qrcode.High),
//		qrcode.WithWidth(512),
//		qrcode.WithMargin(4),
//		qrcode.WithColors(color.Black, color.White),
//	)
//
// Options can also come from the environment through Config:
//
//	var cfg qrcode.Config
//	config.MustLoad(&cfg)
//	opts, err := cfg.Options()
//
// # Error Correction Levels
//
//   - Low: ~7% recovery, highest capacity
//   - Medium: ~15% recovery (default)
//   - Quartile: ~25% recovery
//   - High: ~30% recovery, lowest capacity
//
// A payload over the capacity of the chosen level fails with *EncodingError,
// which also matches errors.Is(err, ErrContentTooLong). Content is never
// truncated.
//
// # Reading
//
//	text, err := qrcode.ScanPNG(pngBytes)
//	if errors.Is(err, qrcode.ErrNoCode) {
//		// nothing readable in the image
//	}
//
// # Saving
//
// SaveFile writes an image to disk. HTTP handlers should send Image.PNG as an
// attachment instead.
package qrcode
