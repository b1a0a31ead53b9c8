package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// Report is a document made of already rendered sections.
type Report struct {
	Title     string
	Source    string
	Selection string   // human readable selection, empty when everything is selected
	Sections  []string // markdown sections, in order
}

// RenderReport renders the report to a markdown string.
func RenderReport(r *Report) (string, error) {
	return renderTemplate("report", "templates/report.md", r)
}

// renderTemplate renders an embedded template.
func renderTemplate(name, file string, data any) (string, error) {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return "", fmt.Errorf("error reading template %q: %w", file, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("error parsing template %q: %w", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("error executing template %q: %w", name, err)
	}
	return b.String(), nil
}
