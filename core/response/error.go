package response

import (
	"errors"
	"net/http"

	"github.com/nakhla/datesqr/core/handler"
)

// Error returns a Response that hands err to the router error handler.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}

// HTTPError is a structured error reply.
type HTTPError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// NewHTTPError builds an error for status with a machine code and message.
func NewHTTPError(status int, code, message string) HTTPError {
	return HTTPError{Status: status, Code: code, Message: message}
}

func (e HTTPError) Error() string { return e.Message }

func (e HTTPError) StatusCode() int { return e.Status }

// WithMessage returns a copy with message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy with details merged into the existing ones.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	merged := make(map[string]any, len(e.Details)+len(details))
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	e.Details = merged
	return e
}

// WithError returns a copy recording err as the cause.
func (e HTTPError) WithError(err error) HTTPError {
	if err == nil {
		return e
	}
	return e.WithDetails(map[string]any{"cause": err.Error()})
}

var (
	ErrBadRequest            = httpError(http.StatusBadRequest, "bad_request")
	ErrNotFound              = httpError(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed      = httpError(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrRequestEntityTooLarge = httpError(http.StatusRequestEntityTooLarge, "request_entity_too_large")
	ErrUnsupportedMediaType  = httpError(http.StatusUnsupportedMediaType, "unsupported_media_type")
	ErrUnprocessableEntity   = httpError(http.StatusUnprocessableEntity, "unprocessable_entity")
	ErrInternalServerError   = httpError(http.StatusInternalServerError, "internal_server_error")
	ErrServiceUnavailable    = httpError(http.StatusServiceUnavailable, "service_unavailable")
)

func httpError(status int, code string) HTTPError {
	return HTTPError{Status: status, Code: code, Message: http.StatusText(status)}
}

var errorsByStatus = map[int]HTTPError{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusNotFound:              ErrNotFound,
	http.StatusMethodNotAllowed:      ErrMethodNotAllowed,
	http.StatusRequestEntityTooLarge: ErrRequestEntityTooLarge,
	http.StatusUnsupportedMediaType:  ErrUnsupportedMediaType,
	http.StatusUnprocessableEntity:   ErrUnprocessableEntity,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}

// AsHTTPError converts err. HTTPError values pass through; errors with a
// StatusCode method map to the matching predefined error; anything else is a 500.
// Causes of 5xx errors are not exposed.
func AsHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	base, ok := errorsByStatus[status]
	if !ok {
		base = httpError(status, "error")
		if http.StatusText(status) == "" {
			base = ErrInternalServerError
		}
	}
	if base.Status >= http.StatusInternalServerError {
		return base
	}
	return base.WithError(err)
}

func written(w http.ResponseWriter) bool {
	ww, ok := w.(interface{ Written() bool })
	return ok && ww.Written()
}

// ErrorHandler renders errors as plain text.
func ErrorHandler[C handler.Context](ctx C, err error) {
	if written(ctx.ResponseWriter()) {
		return
	}
	httpErr := AsHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Message, httpErr.Status))
}

// JSONErrorHandler renders errors as {"code", "message", "details"}.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	if written(ctx.ResponseWriter()) {
		return
	}
	httpErr := AsHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
