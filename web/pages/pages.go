// Package pages renders the HTML pages served by the web frontend.
package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
)

//go:embed templates/*.html.tmpl
var templates embed.FS

// Renderer renders the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// IndexData carries the values rendered into the index page.
type IndexData struct {
	Title        string
	Heading      string
	Message      string
	MessageClass string
}

// MessageClass merges a state accent into the shared greeting styling.
// The accent wins over the base color when the two conflict.
func MessageClass(accent string) string {
	return twmerge.Merge("text-lg font-medium text-slate-500", accent)
}

// Index renders the landing page. The template is executed into a
// buffer first so an execution error never leaves a half-written
// response behind.
func (r *Renderer) Index(w http.ResponseWriter, data IndexData) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "index.html.tmpl", data); err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
