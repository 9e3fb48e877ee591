package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/page.html
var templatesFS embed.FS

// Renderer writes a Page as HTML
type Renderer struct {
	tmpl *template.Template
}

type renderData struct {
	Page
	Notice          string
	FavoritesTitle  string
	ForecastTitle   string
	SearchHint      string
	AddFavoriteText string
}

// NewRenderer parses the embedded page template
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page. notice is an optional one-off user message.
func (r *Renderer) Render(w io.Writer, page Page, notice string) error {
	return r.tmpl.ExecuteTemplate(w, "page.html", renderData{
		Page:            page,
		Notice:          notice,
		FavoritesTitle:  FavoritesTitle,
		ForecastTitle:   ForecastTitle,
		SearchHint:      SearchHint,
		AddFavoriteText: AddFavoriteText,
	})
}
