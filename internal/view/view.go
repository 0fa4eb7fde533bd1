// Package view renders the dashboard and detail pages.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katiamach/weather-dashboard/internal/model"
)

//go:embed templates/*.html
var templates embed.FS

// cardColors are cycled through by card position.
var cardColors = []string{
	"linear-gradient(135deg, #4a90e2 0%, #357abd 100%)",
	"linear-gradient(135deg, #a855f7 0%, #7c3aed 100%)",
	"linear-gradient(135deg, #10b981 0%, #059669 100%)",
	"linear-gradient(135deg, #f59e0b 0%, #d97706 100%)",
	"linear-gradient(135deg, #ef4444 0%, #dc2626 100%)",
}

var glyphs = map[model.IconCategory]string{
	model.IconClear:   "☀️",
	model.IconClouds:  "☁️",
	model.IconDrizzle: "🌦️",
	model.IconRain:    "🌧️",
	model.IconSnow:    "❄️",
	model.IconWind:    "💨",
}

// Page is everything a rendered page needs.
type Page struct {
	Dashboard *model.Dashboard
	Notice    string
	Distances []model.CityDistance
}

// Renderer executes the page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(template.FuncMap{
		"cardColor":  CardColor,
		"sentence":   Sentence,
		"glyph":      glyph,
		"pathEscape": url.PathEscape,
	}).ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page matching the dashboard's current view.
func (r *Renderer) Render(w io.Writer, page *Page) error {
	name := "dashboard"
	if page.Dashboard.View == model.ViewDetail && page.Dashboard.Selected != nil {
		name = "detail"
	}

	if err := r.tmpl.ExecuteTemplate(w, name, page); err != nil {
		return fmt.Errorf("failed to render %s page: %w", name, err)
	}

	return nil
}

// CardColor returns the card background for the card at position i.
func CardColor(i int) template.CSS {
	return template.CSS(cardColors[i%len(cardColors)])
}

// Sentence upper-cases the first letter of s.
func Sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.English).String(string(r)) + s[size:]
}

func glyph(icon model.IconCategory) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return glyphs[model.DefaultIcon]
}
