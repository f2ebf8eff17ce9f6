package invoice

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/invoice-generator/internal/application/dto"
	"github.com/jhoicas/invoice-generator/internal/domain/billing"
	"github.com/jhoicas/invoice-generator/pkg/money"
)

// NoItemsText fila única de la tabla cuando el ledger está vacío o en blanco.
const NoItemsText = "No items added yet"

// BuildTotals totales crudos y formateados con el símbolo de la moneda.
func BuildTotals(f Form) dto.TotalsResponse {
	t := f.Totals()
	cur := f.Meta.Currency
	return dto.TotalsResponse{
		Subtotal:        t.Subtotal,
		TaxAmount:       t.TaxAmount,
		Total:           t.Total,
		SubtotalDisplay: money.Format(t.Subtotal, cur),
		TaxDisplay:      money.Format(t.TaxAmount, cur),
		TotalDisplay:    money.Format(t.Total, cur),
	}
}

// BuildPreview proyecta el formulario en la vista previa de solo lectura.
func BuildPreview(f Form) dto.PreviewResponse {
	items := f.Ledger.Items()
	totals := f.Totals()
	cur := f.Meta.Currency

	p := dto.PreviewResponse{
		BusinessName:   f.Meta.BusinessNameOrPlaceholder(),
		ClientName:     f.Meta.ClientNameOrPlaceholder(),
		InvoiceNumber:  f.Meta.InvoiceNumber,
		Date:           billing.FormatInvoiceDate(f.Meta.InvoiceDate),
		Currency:       cur,
		CurrencySymbol: money.Symbol(cur),
		Rows:           []dto.PreviewRowResponse{},
		Subtotal:       money.Format(totals.Subtotal, cur),
		TaxLabel:       TaxLabel(f.Meta.TaxRate),
		Tax:            money.Format(totals.TaxAmount, cur),
		Total:          money.Format(totals.Total, cur),
		PaymentTerms:   f.Meta.PaymentTerms,
		Notes:          f.Meta.Notes,
	}
	if billing.IsEmptyLedger(items) {
		p.NoItems = true
		p.NoItemsText = NoItemsText
		return p
	}
	canRemove := f.Ledger.CanRemove()
	for i, it := range items {
		p.Rows = append(p.Rows, dto.PreviewRowResponse{
			Index:     i,
			Name:      it.DisplayName(),
			Quantity:  it.Quantity,
			Price:     money.Format(it.Price, cur),
			Total:     money.Format(billing.LineTotal(it), cur),
			CanRemove: canRemove,
		})
	}
	return p
}

// TaxLabel etiqueta del impuesto con la tasa sin ceros de relleno: "Tax (7.5%):".
func TaxLabel(rate float64) string {
	return fmt.Sprintf("Tax (%s%%):", strconv.FormatFloat(rate, 'f', -1, 64))
}
