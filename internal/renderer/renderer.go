// Package renderer builds the HTML representation of a valuation report.
// The same template serves both the browser preview and the PDF export;
// the ForPDF flag switches the few layout details that differ.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"valuation-be/internal/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

const reportTemplate = "valuation.html"

// ReportContext is the variable context handed to the report template.
type ReportContext struct {
	Valuation      *entity.Valuation
	CreatedAt      string // empty when the record carries no creation time
	GenerationDate string // ISO calendar date of rendering
	ForPDF         bool
}

type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		"formatStr":  tmplFormatStr,
		"formatArea": tmplFormatArea,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// RenderReport renders the report template for the given record and returns
// the HTML text.
func (r *Renderer) RenderReport(val *entity.Valuation, forPDF bool) (string, error) {
	createdAt := ""
	if !val.CreatedAt.IsZero() {
		createdAt = val.CreatedAt.Format(time.RFC3339)
	}

	rctx := ReportContext{
		Valuation:      val,
		CreatedAt:      createdAt,
		GenerationDate: time.Now().Format("2006-01-02"),
		ForPDF:         forPDF,
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, reportTemplate, rctx); err != nil {
		return "", fmt.Errorf("rendering %s: %w", reportTemplate, err)
	}
	return buf.String(), nil
}

// Template helper functions

func tmplFormatStr(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}

func tmplFormatArea(f *float64) string {
	if f == nil {
		return "—"
	}
	if *f == float64(int64(*f)) {
		return fmt.Sprintf("%d sq.ft", int64(*f))
	}
	return fmt.Sprintf("%.2f sq.ft", *f)
}
