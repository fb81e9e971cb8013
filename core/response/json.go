package response

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/nakhla/datesqr/core/handler"
)

// JSON writes v with 200 OK.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus writes v with status. A zero status means 200, or 204 for a
// nil v. The body is encoded before the header is sent so that encoding
// errors still reach the error handler. Non-ASCII text and HTML characters are
// written unescaped.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if status == 0 {
			status = http.StatusOK
			if v == nil {
				status = http.StatusNoContent
			}
		}

		if status == http.StatusNoContent || status == http.StatusNotModified {
			w.WriteHeader(status)
			return nil
		}

		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return err
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		if r.Method == http.MethodHead {
			return nil
		}
		_, err := w.Write(buf.Bytes())
		return err
	}
}
