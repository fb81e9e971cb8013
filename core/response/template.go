package response

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/nakhla/datesqr/core/handler"
)

var ErrNilTemplate = errors.New("response: template is nil")

// Template renders the named template with 200 OK. An empty name executes
// tmpl itself.
func Template(tmpl *template.Template, name string, data any) handler.Response {
	return TemplateWithStatus(tmpl, name, data, http.StatusOK)
}

// TemplateWithStatus renders into a buffer first, so a failing template
// produces an error reply instead of a partial page.
func TemplateWithStatus(tmpl *template.Template, name string, data any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if tmpl == nil {
			return ErrNilTemplate
		}

		var buf bytes.Buffer
		var err error
		if name == "" {
			err = tmpl.Execute(&buf, data)
		} else {
			err = tmpl.ExecuteTemplate(&buf, name, data)
		}
		if err != nil {
			return err
		}

		return BytesWithStatus(buf.Bytes(), "text/html; charset=utf-8", status)(w, r)
	}
}
