// Package pdf implementa los exportadores PDF del documento de factura.
//
// Layout de la página A4 (plantilla fija, una sola página):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio          │              INVOICE  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Invoice Number / Date / Bill To                            │
//	│  TABLA: Item | Qty | Price | Total                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Tax (n%) / Total                       │
//	│  Payment Terms / Notes (opcional)                           │
//	│  FOOTER: Thank you for your business!                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
)

// ContentType tipo MIME de ambos exportadores PDF.
const ContentType = "application/pdf"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 25, Green: 93, Blue: 230}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorText    = &props.Color{Red: 33, Green: 37, Blue: 41}
)

// ── Exporter ──────────────────────────────────────────────────────────────────

var _ appinvoice.DocumentExporter = (*MarotoExporter)(nil)

// MarotoExporter implementa invoice.DocumentExporter usando la grilla de 12 columnas de Maroto v2.
type MarotoExporter struct{}

// NewMarotoExporter construye el exportador.
func NewMarotoExporter() *MarotoExporter { return &MarotoExporter{} }

func (e *MarotoExporter) Format() string      { return "pdf" }
func (e *MarotoExporter) Extension() string   { return "pdf" }
func (e *MarotoExporter) ContentType() string { return ContentType }

// Export genera el PDF y devuelve sus bytes.
func (e *MarotoExporter) Export(ctx context.Context, doc appinvoice.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc = PrintableCurrency(doc)
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(doc.Title+" "+doc.InvoiceNumber, true).
		WithAuthor(doc.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metaRows(doc)...)
	m.AddRows(row.New(4))

	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	m.AddRows(tableRows(doc)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))

	m.AddRows(totalsRows(doc)...)

	if doc.HasTermsBlock() {
		m.AddRows(row.New(4))
		m.AddRows(termsRows(doc)...)
	}

	m.AddRows(row.New(10))
	m.AddRows(footerRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y título (der).
func headerRow(doc appinvoice.Document) core.Row {
	return row.New(16).Add(
		col.New(8).Add(text.New(doc.BusinessName, props.Text{
			Style: fontstyle.Bold, Size: 20, Color: colorText, Top: 2,
		})),
		col.New(4).Add(text.New(doc.Title, props.Text{
			Style: fontstyle.Bold, Size: 20, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

func metaRows(doc appinvoice.Document) []core.Row {
	pair := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1})),
			col.New(9).Add(text.New(value, props.Text{Size: 10, Top: 1})),
		)
	}
	return []core.Row{
		pair("Invoice Number:", doc.InvoiceNumber),
		pair("Date:", doc.DateText),
		pair("Bill To:", doc.ClientName),
	}
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item", 6, align.Left),
		h("Qty", 2, align.Center),
		h("Price", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableRows: una fila por línea del ledger.
func tableRows(doc appinvoice.Document) []core.Row {
	result := make([]core.Row, 0, len(doc.Rows))
	for _, r := range doc.Rows {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(r.Name, props.Text{Size: 10, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprint(r.Quantity), props.Text{Size: 10, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(r.PriceText, props.Text{Size: 10, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.AmountText, props.Text{Size: 10, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRows: bloque de totales alineado a la derecha.
func totalsRows(doc appinvoice.Document) []core.Row {
	entry := func(label, value string, grand bool) core.Row {
		p := props.Text{Size: 10, Align: align.Right, Top: 1, Right: 1}
		if grand {
			p.Style = fontstyle.Bold
			p.Size = 12
			p.Color = colorPrimary
		}
		return row.New(7).Add(
			col.New(6),
			col.New(3).Add(text.New(label, p)),
			col.New(3).Add(text.New(value, p)),
		)
	}
	return []core.Row{
		entry("Subtotal:", doc.SubtotalText, false),
		entry(doc.TaxLabel, doc.TaxText, false),
		entry("Total:", doc.TotalText, true),
	}
}

func termsRows(doc appinvoice.Document) []core.Row {
	var rows []core.Row
	block := func(label, value string) {
		rows = append(rows,
			row.New(6).Add(col.New(12).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}))),
			row.New(10).Add(col.New(12).Add(text.New(value, props.Text{Size: 9, Color: colorGray, Top: 1}))),
		)
	}
	if doc.PaymentTerms != "" {
		block("Payment Terms:", doc.PaymentTerms)
	}
	if doc.Notes != "" {
		block("Notes:", doc.Notes)
	}
	return rows
}

func footerRow(doc appinvoice.Document) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(doc.Footer, props.Text{
		Size: 10, Style: fontstyle.Italic, Align: align.Center, Color: colorGray, Top: 2,
	})))
}

// ── Selección de motor ────────────────────────────────────────────────────────

// Engines motores PDF disponibles.
const (
	EngineMaroto = "maroto"
	EngineFPDF   = "fpdf"
)

// NewExporter devuelve el exportador PDF del motor configurado; cualquier valor
// distinto de "fpdf" usa Maroto.
func NewExporter(engine string) appinvoice.DocumentExporter {
	if engine == EngineFPDF {
		return NewFPDFExporter()
	}
	return NewMarotoExporter()
}
