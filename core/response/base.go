package response

import (
	"net/http"

	"github.com/nakhla/datesqr/core/handler"
)

// Render runs resp and falls back to a plain 500 if it fails.
func Render(ctx handler.Context, resp handler.Response) {
	if err := resp(ctx.ResponseWriter(), ctx.Request()); err != nil {
		http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
	}
}

// String writes text/plain with 200 OK.
func String(content string) handler.Response {
	return StringWithStatus(content, http.StatusOK)
}

// StringWithStatus writes text/plain. A zero status means 200.
func StringWithStatus(content string, status int) handler.Response {
	return BytesWithStatus([]byte(content), "text/plain; charset=utf-8", status)
}

// Bytes writes content with the given type and 200 OK.
func Bytes(content []byte, contentType string) handler.Response {
	return BytesWithStatus(content, contentType, http.StatusOK)
}

// BytesWithStatus writes content with the given type. A zero status means 200.
func BytesWithStatus(content []byte, contentType string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if len(content) == 0 || r.Method == http.MethodHead {
			return nil
		}
		_, err := w.Write(content)
		return err
	}
}

// NoContent writes 204.
func NoContent() handler.Response {
	return Status(http.StatusNoContent)
}

// Status writes an empty reply. A zero code means 200.
func Status(code int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if code == 0 {
			code = http.StatusOK
		}
		w.WriteHeader(code)
		return nil
	}
}

// Redirect sends a 303 to url, which suits redirects after POST.
func Redirect(url string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		http.Redirect(w, r, url, http.StatusSeeOther)
		return nil
	}
}
