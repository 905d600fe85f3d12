// Package renderer turns the engine's report structs into markdown, ready for
// a terminal renderer or a plain pager.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/kgarduque/tindahan"
)

//go:embed templates/*.md
var templates embed.FS

// RenderMonthly renders a monthly report to a markdown string.
func RenderMonthly(r *tindahan.MonthlyReport) string {
	partials := map[string]string{
		"monthly_stock": "monthly_stock.md",
		"monthly_sales": "monthly_sales.md",
	}
	return renderTemplate("monthly", "monthly.md", partials, r)
}

// RenderYearly renders a yearly report to a markdown string.
func RenderYearly(r *tindahan.YearlyReport) string {
	return renderTemplate("yearly", "yearly.md", nil, r)
}

// renderTemplate renders a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := templates.ReadFile("templates/" + mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcMap).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := templates.ReadFile("templates/" + file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

var funcMap = template.FuncMap{
	"signed": func(m tindahan.Money) string { return m.SignedString() },
}
