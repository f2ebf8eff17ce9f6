package entity

// Textos sustitutos cuando el formulario aún no tiene nombres.
const (
	PlaceholderBusinessName = "Your Business Name"
	PlaceholderClientName   = "Client Name"
)

// InvoiceMeta representa la cabecera del formulario de factura.
// InvoiceDate conserva el texto ISO (YYYY-MM-DD) tal como lo envía el formulario;
// vacío significa "sin fecha".
type InvoiceMeta struct {
	BusinessName  string
	ClientName    string
	InvoiceDate   string
	InvoiceNumber string
	TaxRate       float64 // porcentaje (10 = 10%)
	Currency      string  // código ISO del catálogo pkg/money
	PaymentTerms  string  // opcional
	Notes         string  // opcional
}

// BusinessNameOrPlaceholder nombre del emisor para la vista previa.
func (m InvoiceMeta) BusinessNameOrPlaceholder() string {
	if m.BusinessName == "" {
		return PlaceholderBusinessName
	}
	return m.BusinessName
}

// ClientNameOrPlaceholder nombre del cliente para la vista previa.
func (m InvoiceMeta) ClientNameOrPlaceholder() string {
	if m.ClientName == "" {
		return PlaceholderClientName
	}
	return m.ClientName
}
