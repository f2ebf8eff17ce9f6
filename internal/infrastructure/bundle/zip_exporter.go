// Package bundle empaqueta en un único ZIP los archivos de varios exportadores.
package bundle

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
)

var _ appinvoice.DocumentExporter = (*ZipExporter)(nil)

// ZipExporter implementa invoice.DocumentExporter para el formato "zip": una
// entrada Invoice-<número>.<ext> por cada exportador interno, en el orden dado.
type ZipExporter struct {
	parts []appinvoice.DocumentExporter
}

// NewZipExporter construye el exportador con los formatos a incluir.
func NewZipExporter(parts ...appinvoice.DocumentExporter) *ZipExporter {
	return &ZipExporter{parts: parts}
}

func (e *ZipExporter) Format() string      { return "zip" }
func (e *ZipExporter) Extension() string   { return "zip" }
func (e *ZipExporter) ContentType() string { return "application/zip" }

// Export genera cada parte y la comprime en memoria. Si una parte falla no se
// devuelve ZIP parcial.
func (e *ZipExporter) Export(ctx context.Context, doc appinvoice.Document) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, part := range e.parts {
		content, err := part.Export(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("zip: exportar %s: %w", part.Format(), err)
		}
		name := doc.Filename(part.Extension())
		fw, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("zip: crear entrada %s: %w", name, err)
		}
		if _, err := fw.Write(content); err != nil {
			return nil, fmt.Errorf("zip: escribir %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: cerrar archivo: %w", err)
	}
	return buf.Bytes(), nil
}
