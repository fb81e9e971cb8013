package qrcode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"
)

// MIMEType is the content type of rendered images.
const MIMEType = "image/png"

const dataURIPrefix = "data:" + MIMEType + ";base64,"

// Image is a rendered QR code. It is immutable.
type Image struct {
	content string
	png     []byte
	width   int
	modules int
	level   RecoveryLevel
}

// Content returns the encoded string.
func (i *Image) Content() string { return i.content }

// PNG returns a copy of the encoded PNG bytes.
func (i *Image) PNG() []byte { return bytes.Clone(i.png) }

// Width returns the raster width (equal to its height) in pixels.
func (i *Image) Width() int { return i.width }

// Modules returns the symbol side length in modules, quiet zone excluded.
func (i *Image) Modules() int { return i.modules }

// Level returns the error correction level used.
func (i *Image) Level() RecoveryLevel { return i.level }

// Size returns the PNG size in bytes.
func (i *Image) Size() int { return len(i.png) }

// DataURI returns the PNG as a base64 data URI for direct use in <img src>.
func (i *Image) DataURI() string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(i.png)
}

// WriteTo writes the PNG bytes to w.
func (i *Image) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(i.png)
	return int64(n), err
}

// Raster decodes the PNG back into an image.Image.
func (i *Image) Raster() (image.Image, error) {
	return png.Decode(bytes.NewReader(i.png))
}

// ParseDataURI extracts the PNG bytes from a data URI produced by DataURI.
func ParseDataURI(uri string) ([]byte, error) {
	encoded, ok := strings.CutPrefix(strings.TrimSpace(uri), dataURIPrefix)
	if !ok {
		return nil, ErrInvalidDataURI
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return data, nil
}
