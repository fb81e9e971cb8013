package response

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nakhla/datesqr/core/handler"
)

// Attachment sends data as a download named filename. An empty contentType is
// derived from the extension. Non-ASCII names are sent with an RFC 5987
// filename* parameter next to an ASCII fallback.
func Attachment(data []byte, filename string, contentType string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Disposition", ContentDisposition("attachment", filename))
		return inline(w, r, data, filename, contentType)
	}
}

// Inline sends data for display in the browser, with the filename used when
// the user saves it.
func Inline(data []byte, filename string, contentType string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Disposition", ContentDisposition("inline", filename))
		return inline(w, r, data, filename, contentType)
	}
}

func inline(w http.ResponseWriter, r *http.Request, data []byte, filename, contentType string) error {
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(filename))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return nil
	}
	_, err := w.Write(data)
	return err
}

// ContentDisposition builds a Content-Disposition value. Newlines and quotes
// are stripped from the fallback name so the header cannot be split.
func ContentDisposition(kind, filename string) string {
	fallback := strings.Map(func(r rune) rune {
		switch {
		case r == '\r' || r == '\n':
			return -1
		case r == '"' || r == '\\':
			return '\''
		case r > 0x7e || r < 0x20:
			return '_'
		}
		return r
	}, filename)

	if !hasNonASCII(filename) {
		return fmt.Sprintf(`%s; filename="%s"`, kind, fallback)
	}
	clean := strings.NewReplacer("\r", "", "\n", "").Replace(filename)
	return fmt.Sprintf(`%s; filename="%s"; filename*=UTF-8''%s`, kind, fallback, url.PathEscape(clean))
}

func hasNonASCII(s string) bool {
	for _, r := range s {
		if r > 0x7e {
			return true
		}
	}
	return false
}
