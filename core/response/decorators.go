package response

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nakhla/datesqr/core/handler"
)

// WithHeaders sets headers before running response.
func WithHeaders(response handler.Response, headers map[string]string) handler.Response {
	if response == nil {
		return nil
	}
	if len(headers) == 0 {
		return response
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		return response(w, r)
	}
}

// WithCache marks response cacheable for maxAge, or uncacheable when
// maxAge <= 0.
func WithCache(response handler.Response, maxAge time.Duration) handler.Response {
	if response == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		if maxAge > 0 {
			w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
			w.Header().Set("Expires", time.Now().Add(maxAge).UTC().Format(http.TimeFormat))
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		return response(w, r)
	}
}
