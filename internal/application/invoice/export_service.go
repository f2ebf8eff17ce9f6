package invoice

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-generator/internal/domain"
)

// DefaultFormat formato usado cuando la petición no indica ninguno.
const DefaultFormat = "pdf"

// ExportResult archivo listo para descargar.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService valida el formulario y delega en el exportador del formato pedido.
// La exportación es todo o nada: si la validación falla no se genera nada.
type ExportService struct {
	exporters map[string]DocumentExporter
	footer    string
	log       zerolog.Logger
}

// NewExportService registra los exportadores por formato.
func NewExportService(footer string, log zerolog.Logger, exporters ...DocumentExporter) *ExportService {
	m := make(map[string]DocumentExporter, len(exporters))
	for _, e := range exporters {
		m[e.Format()] = e
	}
	return &ExportService{exporters: m, footer: footer, log: log}
}

// Formats formatos disponibles, ordenados.
func (s *ExportService) Formats() []string {
	out := make([]string, 0, len(s.exporters))
	for f := range s.exporters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Document proyección del formulario con el pie configurado.
func (s *ExportService) Document(f Form) Document {
	return BuildDocument(f, s.footer)
}

// Export valida el formulario y genera el archivo.
//
// Retorna:
//   - domain.ErrUnsupportedFormat  si no hay exportador para format.
//   - *domain.ValidationError      si el formulario no pasa la validación.
func (s *ExportService) Export(ctx context.Context, f Form, format string) (*ExportResult, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = DefaultFormat
	}
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	doc := s.Document(f)
	content, err := exporter.Export(ctx, doc)
	if err != nil {
		s.log.Error().Err(err).
			Str("format", format).
			Str("invoice_number", doc.InvoiceNumber).
			Msg("exportación fallida")
		return nil, fmt.Errorf("exportar %s: %w", format, err)
	}

	s.log.Info().
		Str("format", format).
		Str("invoice_number", doc.InvoiceNumber).
		Int("items", len(doc.Rows)).
		Int("bytes", len(content)).
		Msg("factura exportada")

	return &ExportResult{
		Filename:    doc.Filename(exporter.Extension()),
		ContentType: exporter.ContentType(),
		Content:     content,
	}, nil
}
