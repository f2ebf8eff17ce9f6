package invoice

import (
	"strings"

	"github.com/jhoicas/invoice-generator/internal/application/dto"
	"github.com/jhoicas/invoice-generator/internal/domain/billing"
	"github.com/jhoicas/invoice-generator/internal/domain/entity"
	"github.com/jhoicas/invoice-generator/internal/domain/ledger"
	"github.com/jhoicas/invoice-generator/pkg/money"
)

// Form estado tipado del formulario: cabecera + ledger. Es la única fuente de
// verdad; vista previa y documento son proyecciones puras de este valor.
type Form struct {
	Meta   entity.InvoiceMeta
	Ledger ledger.Ledger
}

// Defaults valores iniciales del formulario (configurables).
type Defaults struct {
	Currency string
	TaxRate  float64
	Footer   string
}

// normalized aplica a los valores por defecto las mismas reglas que a la entrada
// del formulario: impuesto negativo o no finito → 0; moneda fuera del catálogo → USD.
func (d Defaults) normalized() Defaults {
	d.TaxRate = billing.SanitizeAmount(d.TaxRate)
	d.Currency = strings.ToUpper(strings.TrimSpace(d.Currency))
	if !money.IsSupported(d.Currency) {
		d.Currency = money.CurrencyUSD
	}
	return d
}

// Clone copia profunda del formulario.
func (f Form) Clone() Form {
	return Form{Meta: f.Meta, Ledger: f.Ledger.Clone()}
}

// Items líneas en orden.
func (f Form) Items() []entity.LineItem { return f.Ledger.Items() }

// Totals recalcula subtotal, impuesto y total.
func (f Form) Totals() billing.Totals {
	return billing.Calculate(f.Ledger.Items(), f.Meta.TaxRate)
}

// Validate valida el formulario antes de generar o exportar.
func (f Form) Validate() error {
	return billing.Validate(f.Meta, f.Ledger.Items())
}

// FormFromRequest interpreta el body del formulario. Los numéricos inválidos
// quedan en 0; moneda vacía toma el default.
func FormFromRequest(in dto.InvoiceFormRequest, defaults Defaults) Form {
	items := make([]entity.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, LineItemFromRequest(it))
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = defaults.Currency
	}
	return Form{
		Meta: entity.InvoiceMeta{
			BusinessName:  in.BusinessName,
			ClientName:    in.ClientName,
			InvoiceDate:   strings.TrimSpace(in.InvoiceDate),
			InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
			TaxRate:       billing.ParseTaxRate(string(in.TaxRate)),
			Currency:      currency,
			PaymentTerms:  in.PaymentTerms,
			Notes:         in.Notes,
		},
		Ledger: ledger.New(items...),
	}
}

// LineItemFromRequest interpreta una línea del formulario. El nombre se copia:
// el transporte puede reutilizar el buffer de la petición.
func LineItemFromRequest(in dto.LineItemRequest) entity.LineItem {
	return entity.LineItem{
		Name:     strings.Clone(in.Name),
		Quantity: billing.ParseQuantity(string(in.Quantity)),
		Price:    billing.ParsePrice(string(in.Price)),
	}
}

// ApplyUpdate aplica los campos presentes de un PATCH sobre la cabecera.
// Los textos se copian antes de guardarse en el borrador.
func ApplyUpdate(meta *entity.InvoiceMeta, in dto.UpdateDraftRequest) {
	if in.BusinessName != nil {
		meta.BusinessName = strings.Clone(*in.BusinessName)
	}
	if in.ClientName != nil {
		meta.ClientName = strings.Clone(*in.ClientName)
	}
	if in.InvoiceDate != nil {
		meta.InvoiceDate = strings.Clone(strings.TrimSpace(*in.InvoiceDate))
	}
	if in.TaxRate != nil {
		meta.TaxRate = billing.ParseTaxRate(string(*in.TaxRate))
	}
	if in.Currency != nil {
		meta.Currency = strings.Clone(strings.ToUpper(strings.TrimSpace(*in.Currency)))
	}
	if in.PaymentTerms != nil {
		meta.PaymentTerms = strings.Clone(*in.PaymentTerms)
	}
	if in.Notes != nil {
		meta.Notes = strings.Clone(*in.Notes)
	}
}

// ToStateResponse eco del estado tipado.
func ToStateResponse(f Form) dto.FormStateResponse {
	items := f.Ledger.Items()
	out := dto.FormStateResponse{
		BusinessName:  f.Meta.BusinessName,
		ClientName:    f.Meta.ClientName,
		InvoiceDate:   f.Meta.InvoiceDate,
		InvoiceNumber: f.Meta.InvoiceNumber,
		TaxRate:       f.Meta.TaxRate,
		Currency:      f.Meta.Currency,
		PaymentTerms:  f.Meta.PaymentTerms,
		Notes:         f.Meta.Notes,
		Items:         make([]dto.LineItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.LineItemResponse{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	return out
}
