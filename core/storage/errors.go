package storage

import "errors"

var (
	ErrInvalidConfig      = errors.New("storage: invalid configuration")
	ErrInvalidPath        = errors.New("storage: invalid path")
	ErrEmptyFile          = errors.New("storage: empty file")
	ErrFileNotFound       = errors.New("storage: file not found")
	ErrBucketNotFound     = errors.New("storage: bucket not found")
	ErrAccessDenied       = errors.New("storage: access denied")
	ErrOperationTimeout   = errors.New("storage: operation timeout")
	ErrOperationCanceled  = errors.New("storage: operation canceled")
	ErrRequestTimeout     = errors.New("storage: request timeout")
	ErrServiceUnavailable = errors.New("storage: service unavailable")
	ErrFailedToWrite      = errors.New("storage: failed to write file")
)
