package qrcode

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
)

// Scan reads the first QR code found in img. Byte segments are decoded as UTF-8.
func Scan(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoCode, err)
	}

	reader := zxqr.NewQRCodeReader()
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_CHARACTER_SET: "UTF-8",
		gozxing.DecodeHintType_TRY_HARDER:    true,
	}

	result, err := reader.Decode(bmp, hints)
	if err != nil {
		// Clean renders with a thin quiet zone can defeat the finder pattern
		// detector; pure barcode mode reads them directly.
		hints[gozxing.DecodeHintType_PURE_BARCODE] = true
		result, err = reader.Decode(bmp, hints)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoCode, err)
		}
	}

	return result.GetText(), nil
}

// ScanPNG decodes PNG bytes and scans them.
func ScanPNG(data []byte) (string, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: decode png: %v", ErrNoCode, err)
	}
	return Scan(img)
}

// ScanDataURI scans a PNG data URI.
func ScanDataURI(uri string) (string, error) {
	data, err := ParseDataURI(uri)
	if err != nil {
		return "", err
	}
	return ScanPNG(data)
}

// ScanFile scans a PNG file on disk.
func ScanFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("qrcode: read %s: %w", path, err)
	}
	return ScanPNG(data)
}
