package productqr

import "errors"

var (
	ErrMissingField = errors.New("productqr: missing required field")
	ErrInvalidText  = errors.New("productqr: field is not valid UTF-8")
	ErrNoStorage    = errors.New("productqr: no storage configured")
	ErrNilResult    = errors.New("productqr: nil result")
)
