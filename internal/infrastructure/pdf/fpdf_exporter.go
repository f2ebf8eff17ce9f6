package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
)

var _ appinvoice.DocumentExporter = (*FPDFExporter)(nil)

// FPDFExporter implementa invoice.DocumentExporter con coordenadas fijas en mm
// sobre una página A4. Se elige con INVOICE_PDF_ENGINE=fpdf.
type FPDFExporter struct{}

// NewFPDFExporter construye el exportador.
func NewFPDFExporter() *FPDFExporter { return &FPDFExporter{} }

func (e *FPDFExporter) Format() string      { return "pdf" }
func (e *FPDFExporter) Extension() string   { return "pdf" }
func (e *FPDFExporter) ContentType() string { return ContentType }

// Export dibuja el documento y devuelve los bytes del PDF.
func (e *FPDFExporter) Export(ctx context.Context, doc appinvoice.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc = PrintableCurrency(doc)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title+" "+doc.InvoiceNumber, true)
	pdf.SetAuthor(doc.BusinessName, true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Las fuentes base usan cp1252: los caracteres sin equivalente salen como ".".
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, pageHeight := pdf.GetPageSize()
	right := func(s string, x, y float64) {
		s = tr(s)
		pdf.Text(x-pdf.GetStringWidth(s), y, s)
	}

	// ── Header ────────────────────────────────────────────────────────────────
	y := 20.0
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(20, y, tr(doc.BusinessName))

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(100, 100, 100)
	right(doc.Title, pageWidth-20, y)

	y += 15
	pdf.SetDrawColor(25, 93, 230)
	pdf.SetLineWidth(1)
	pdf.Line(20, y, pageWidth-20, y)

	// ── Datos de la factura ───────────────────────────────────────────────────
	y += 15
	pdf.SetFontSize(11)
	pdf.SetTextColor(0, 0, 0)
	for _, kv := range [][2]string{
		{"Invoice Number:", doc.InvoiceNumber},
		{"Date:", doc.DateText},
		{"Bill To:", doc.ClientName},
	} {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(20, y, kv[0])
		pdf.SetFont("Helvetica", "", 11)
		pdf.Text(70, y, tr(kv[1]))
		y += 8
	}

	// ── Tabla ─────────────────────────────────────────────────────────────────
	y += 12
	pdf.SetFillColor(246, 246, 248)
	pdf.Rect(20, y-5, pageWidth-40, 10, "F")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(25, y, "Item")
	pdf.Text(120, y, "Qty")
	pdf.Text(145, y, "Price")
	right("Total", pageWidth-25, y)

	y += 10
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range doc.Rows {
		pdf.Text(25, y, tr(r.Name))
		pdf.Text(120, y, fmt.Sprint(r.Quantity))
		pdf.Text(145, y, tr(r.PriceText))
		right(r.AmountText, pageWidth-25, y)
		y += 8
	}

	// ── Totales ───────────────────────────────────────────────────────────────
	y += 10
	pdf.SetDrawColor(220, 220, 220)
	pdf.SetLineWidth(0.2)
	pdf.Line(120, y-5, pageWidth-20, y-5)
	pdf.Text(120, y, "Subtotal:")
	right(doc.SubtotalText, pageWidth-25, y)

	y += 8
	pdf.Text(120, y, doc.TaxLabel)
	right(doc.TaxText, pageWidth-25, y)

	y += 10
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetDrawColor(25, 93, 230)
	pdf.Line(120, y-5, pageWidth-20, y-5)
	pdf.Text(120, y, "Total:")
	pdf.SetTextColor(25, 93, 230)
	right(doc.TotalText, pageWidth-25, y)

	// ── Condiciones / notas ───────────────────────────────────────────────────
	if doc.HasTermsBlock() {
		y += 15
		pdf.SetTextColor(0, 0, 0)
		for _, kv := range [][2]string{{"Payment Terms:", doc.PaymentTerms}, {"Notes:", doc.Notes}} {
			if kv[1] == "" {
				continue
			}
			pdf.SetFont("Helvetica", "B", 10)
			pdf.Text(20, y, kv[0])
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetXY(20, y+2)
			pdf.MultiCell(pageWidth-40, 5, tr(kv[1]), "", "L", false)
			y = pdf.GetY() + 6
		}
	}

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(150, 150, 150)
	footer := tr(doc.Footer)
	pdf.Text(pageWidth/2-pdf.GetStringWidth(footer)/2, pageHeight-20, footer)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return buf.Bytes(), nil
}
