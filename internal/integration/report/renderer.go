// Package report provides calculation report rendering functionality.
package report

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/khatiyan/backend/internal/application/adapter"
)

//go:embed *.html *.txt
var templateFS embed.FS

// calculationTemplate is the base name of the calculation report templates.
const calculationTemplate = "calculation"

// Renderer handles report template rendering.
type Renderer struct {
	htmlTemplates *htmltemplate.Template
	textTemplates *texttemplate.Template
}

// NewRenderer creates a new template renderer.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// Render implements adapter.ReportRenderer.
func (r *Renderer) Render(format adapter.ReportFormat, report adapter.CalculationReport) (string, error) {
	switch format {
	case adapter.ReportFormatHTML:
		return r.renderHTML(calculationTemplate, report)
	case adapter.ReportFormatText:
		return r.renderText(calculationTemplate, report)
	default:
		return "", fmt.Errorf("unsupported report format %q", format)
	}
}

func (r *Renderer) renderHTML(templateName string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.htmlTemplates.ExecuteTemplate(&buf, templateName+".html", data); err != nil {
		return "", fmt.Errorf("failed to render HTML template %s: %w", templateName, err)
	}
	return buf.String(), nil
}

func (r *Renderer) renderText(templateName string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.textTemplates.ExecuteTemplate(&buf, templateName+".txt", data); err != nil {
		return "", fmt.Errorf("failed to render text template %s: %w", templateName, err)
	}
	return buf.String(), nil
}
