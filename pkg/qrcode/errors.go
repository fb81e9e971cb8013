package qrcode

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyContent   = errors.New("qrcode: content is empty")
	ErrContentTooLong = errors.New("qrcode: content exceeds symbol capacity")
	ErrInvalidLevel   = errors.New("qrcode: invalid error correction level")
	ErrInvalidColor   = errors.New("qrcode: invalid color")
	ErrInvalidDataURI = errors.New("qrcode: invalid data URI")
	ErrNoCode         = errors.New("qrcode: no readable code in image")
)

// EncodingError reports content that cannot be placed in a QR symbol at the
// requested error correction level.
type EncodingError struct {
	Level  RecoveryLevel
	Length int // content length in bytes
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("qrcode: cannot encode %d bytes at level %s: %v", e.Length, e.Level, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
