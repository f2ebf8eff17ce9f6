package dto

import (
	"encoding/json"
	"strings"
)

// NumericInput valor numérico del formulario tal como llega: acepta número JSON
// o texto ("10", "7.5", ""). El caso de uso lo interpreta con los parsers
// tolerantes de billing (inválido → 0).
type NumericInput string

// UnmarshalJSON acepta 10, "10", "" y null.
func (n *NumericInput) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*n = NumericInput(str)
		return nil
	}
	*n = NumericInput(s)
	return nil
}

// InvoiceFormRequest body con el formulario completo (endpoints sin estado y CLI).
// Si InvoiceNumber va vacío se genera uno; si Currency va vacía se usa la del servidor.
type InvoiceFormRequest struct {
	BusinessName  string            `json:"business_name"`
	ClientName    string            `json:"client_name"`
	InvoiceDate   string            `json:"invoice_date"` // YYYY-MM-DD
	InvoiceNumber string            `json:"invoice_number,omitempty"`
	TaxRate       NumericInput      `json:"tax_rate"`
	Currency      string            `json:"currency,omitempty"`
	PaymentTerms  string            `json:"payment_terms,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Items         []LineItemRequest `json:"items"`
}

// LineItemRequest línea del formulario.
type LineItemRequest struct {
	Name     string       `json:"name"`
	Quantity NumericInput `json:"quantity"`
	Price    NumericInput `json:"price"`
}

// LineItemResponse línea ya interpretada (estado tipado).
type LineItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// FormStateResponse eco del estado tipado del formulario.
type FormStateResponse struct {
	BusinessName  string             `json:"business_name"`
	ClientName    string             `json:"client_name"`
	InvoiceDate   string             `json:"invoice_date"`
	InvoiceNumber string             `json:"invoice_number"`
	TaxRate       float64            `json:"tax_rate"`
	Currency      string             `json:"currency"`
	PaymentTerms  string             `json:"payment_terms,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	Items         []LineItemResponse `json:"items"`
}

// TotalsResponse valores derivados: crudos y formateados para mostrar.
type TotalsResponse struct {
	Subtotal        float64 `json:"subtotal"`
	TaxAmount       float64 `json:"tax_amount"`
	Total           float64 `json:"total"`
	SubtotalDisplay string  `json:"subtotal_display"`
	TaxDisplay      string  `json:"tax_display"`
	TotalDisplay    string  `json:"total_display"`
}

// PreviewRowResponse fila de la tabla de ítems de la vista previa.
type PreviewRowResponse struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Total     string `json:"total"`
	CanRemove bool   `json:"can_remove"`
}

// PreviewResponse proyección de solo lectura del formulario.
// Con NoItems=true, Rows va vacío y la tabla muestra NoItemsText.
type PreviewResponse struct {
	BusinessName   string               `json:"business_name"`
	ClientName     string               `json:"client_name"`
	InvoiceNumber  string               `json:"invoice_number"`
	Date           string               `json:"date"`
	Currency       string               `json:"currency"`
	CurrencySymbol string               `json:"currency_symbol"`
	Rows           []PreviewRowResponse `json:"rows"`
	NoItems        bool                 `json:"no_items"`
	NoItemsText    string               `json:"no_items_text,omitempty"`
	Subtotal       string               `json:"subtotal"`
	TaxLabel       string               `json:"tax_label"`
	Tax            string               `json:"tax"`
	Total          string               `json:"total"`
	PaymentTerms   string               `json:"payment_terms,omitempty"`
	Notes          string               `json:"notes,omitempty"`
}

// ValidationResponse resultado de POST /api/invoices/validate.
type ValidationResponse struct {
	Valid   bool   `json:"valid"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

// InvoiceNumberResponse número de factura recién generado.
type InvoiceNumberResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date"` // hoy, formato YYYY-MM-DD
}
