package invoice

import (
	"github.com/jhoicas/invoice-generator/internal/domain/billing"
	"github.com/jhoicas/invoice-generator/pkg/money"
)

// DocumentTitle título fijo del documento exportado.
const DocumentTitle = "INVOICE"

// DocumentRow línea de la tabla de ítems del documento.
type DocumentRow struct {
	Name       string
	Quantity   int
	Price      float64
	Amount     float64
	PriceText  string
	AmountText string
}

// Document contenido del documento exportado, ya calculado y formateado.
// Los exportadores solo deciden la disposición en la página.
type Document struct {
	Title          string
	BusinessName   string
	ClientName     string
	InvoiceNumber  string
	InvoiceDate    string // ISO, para formatos de máquina
	DateText       string // "January 5, 2024"
	Currency       string
	CurrencySymbol string
	Rows           []DocumentRow
	TaxRate        float64
	Subtotal       float64
	TaxAmount      float64
	Total          float64
	SubtotalText   string
	TaxLabel       string
	TaxText        string
	TotalText      string
	PaymentTerms   string
	Notes          string
	Footer         string
	Fingerprint    string // SHA-384 del contenido económico
}

// HasTermsBlock indica si el documento lleva el bloque de condiciones / notas.
func (d Document) HasTermsBlock() bool {
	return d.PaymentTerms != "" || d.Notes != ""
}

// Filename nombre de descarga: Invoice-<número>.<ext>.
func (d Document) Filename(ext string) string {
	return "Invoice-" + d.InvoiceNumber + "." + ext
}

// BuildDocument proyecta el formulario en el documento exportable. Incluye
// todas las filas del ledger (las filas sin nombre salen como "Untitled Item").
func BuildDocument(f Form, footer string) Document {
	items := f.Ledger.Items()
	totals := f.Totals()
	cur := f.Meta.Currency

	doc := Document{
		Title:          DocumentTitle,
		BusinessName:   f.Meta.BusinessName,
		ClientName:     f.Meta.ClientName,
		InvoiceNumber:  f.Meta.InvoiceNumber,
		InvoiceDate:    f.Meta.InvoiceDate,
		DateText:       billing.FormatInvoiceDate(f.Meta.InvoiceDate),
		Currency:       cur,
		CurrencySymbol: money.Symbol(cur),
		Rows:           make([]DocumentRow, 0, len(items)),
		TaxRate:        f.Meta.TaxRate,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		Total:          totals.Total,
		SubtotalText:   money.Format(totals.Subtotal, cur),
		TaxLabel:       TaxLabel(f.Meta.TaxRate),
		TaxText:        money.Format(totals.TaxAmount, cur),
		TotalText:      money.Format(totals.Total, cur),
		PaymentTerms:   f.Meta.PaymentTerms,
		Notes:          f.Meta.Notes,
		Footer:         footer,
		Fingerprint:    billing.Fingerprint(f.Meta, totals),
	}
	for _, it := range items {
		amount := billing.LineTotal(it)
		doc.Rows = append(doc.Rows, DocumentRow{
			Name:       it.DisplayName(),
			Quantity:   it.Quantity,
			Price:      it.Price,
			Amount:     amount,
			PriceText:  money.Format(it.Price, cur),
			AmountText: money.Format(amount, cur),
		})
	}
	return doc
}
