package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

const DefaultTitle = "Weather App"

// Renderer turns page snapshots into HTML.
type Renderer struct {
	tmpl  *template.Template
	title string
}

type pageData struct {
	Snapshot
	Title string
}

func NewRenderer(title string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	if title == "" {
		title = DefaultTitle
	}

	return &Renderer{tmpl: tmpl, title: title}, nil
}

// Render writes the full page.
func (r *Renderer) Render(w io.Writer, snap Snapshot) error {
	return r.tmpl.ExecuteTemplate(w, "page.html", pageData{Snapshot: snap, Title: r.title})
}

// RenderResults writes only the result container's contents.
func (r *Renderer) RenderResults(w io.Writer, snap Snapshot) error {
	return r.tmpl.ExecuteTemplate(w, "weather-info", pageData{Snapshot: snap, Title: r.title})
}
