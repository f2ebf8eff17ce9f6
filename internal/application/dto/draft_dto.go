package dto

import "time"

// UpdateDraftRequest body para PATCH /api/drafts/:id. Solo se aplican los campos presentes.
type UpdateDraftRequest struct {
	BusinessName *string       `json:"business_name,omitempty"`
	ClientName   *string       `json:"client_name,omitempty"`
	InvoiceDate  *string       `json:"invoice_date,omitempty"`
	TaxRate      *NumericInput `json:"tax_rate,omitempty"`
	Currency     *string       `json:"currency,omitempty"`
	PaymentTerms *string       `json:"payment_terms,omitempty"`
	Notes        *string       `json:"notes,omitempty"`
}

// DraftResponse estado del borrador tras cada interacción: formulario, totales y vista previa.
type DraftResponse struct {
	ID        string            `json:"id"`
	Form      FormStateResponse `json:"form"`
	Totals    TotalsResponse    `json:"totals"`
	Preview   PreviewResponse   `json:"preview"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
