// Package web renderiza la vista previa del formulario como fragmento HTML
// para que el navegador lo inserte tal cual.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/jhoicas/invoice-generator/internal/application/dto"
)

//go:embed templates/preview.html
var templatesFS embed.FS

// PreviewRenderer plantilla compilada una sola vez; es segura para uso concurrente.
type PreviewRenderer struct {
	tmpl *template.Template
}

// NewPreviewRenderer compila la plantilla embebida.
func NewPreviewRenderer() (*PreviewRenderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/preview.html")
	if err != nil {
		return nil, fmt.Errorf("web: compilar plantilla de vista previa: %w", err)
	}
	return &PreviewRenderer{tmpl: tmpl}, nil
}

// Render devuelve el fragmento HTML. Los textos del usuario se escapan.
func (r *PreviewRenderer) Render(p dto.PreviewResponse) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "preview.html", p); err != nil {
		return nil, fmt.Errorf("web: renderizar vista previa: %w", err)
	}
	return buf.Bytes(), nil
}
