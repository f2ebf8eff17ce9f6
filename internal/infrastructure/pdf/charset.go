package pdf

import (
	"golang.org/x/text/encoding/charmap"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
	"github.com/jhoicas/invoice-generator/pkg/money"
)

// PrintableCurrency reescribe los montos con el código ISO cuando el símbolo de
// la moneda no existe en cp1252, la codificación de las fuentes base del PDF.
// Ej: INR → "INR 1,200.00" en lugar de ".1,200.00".
// Los textos libres (nombres, notas) fuera de cp1252 siguen saliendo como ".".
func PrintableCurrency(doc appinvoice.Document) appinvoice.Document {
	if inCP1252(doc.CurrencySymbol) {
		return doc
	}
	format := func(v float64) string { return doc.Currency + " " + money.FormatAmount(v) }

	rows := make([]appinvoice.DocumentRow, len(doc.Rows))
	for i, r := range doc.Rows {
		r.PriceText = format(r.Price)
		r.AmountText = format(r.Amount)
		rows[i] = r
	}
	doc.Rows = rows
	doc.CurrencySymbol = doc.Currency
	doc.SubtotalText = format(doc.Subtotal)
	doc.TaxText = format(doc.TaxAmount)
	doc.TotalText = format(doc.Total)
	return doc
}

func inCP1252(s string) bool {
	_, err := charmap.Windows1252.NewEncoder().String(s)
	return err == nil
}
