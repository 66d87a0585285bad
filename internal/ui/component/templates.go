// Package component renders the patient-facing UI pieces: the appointment
// card, the navigation header and the two loading spinners.
package component

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var colorValidator = validator.New()

func render(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// style joins CSS declarations. Only design tokens and values accepted by
// cssColor may reach it, which is what makes the template.CSS cast sound.
func style(decls ...string) template.CSS {
	return template.CSS(strings.Join(decls, "; "))
}

// cssColor returns v when it is a hex, rgb(a) or hsl(a) color, fallback otherwise
func cssColor(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" || colorValidator.Var(v, "iscolor") != nil {
		return fallback
	}
	return v
}
