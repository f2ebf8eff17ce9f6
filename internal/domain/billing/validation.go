package billing

import (
	"strings"

	"github.com/jhoicas/invoice-generator/internal/domain"
	"github.com/jhoicas/invoice-generator/internal/domain/entity"
)

// Mensajes mostrados al usuario cuando la validación bloquea la vista previa o la exportación.
const (
	MsgBusinessNameRequired = "Please enter your business name"
	MsgClientNameRequired   = "Please enter client name"
	MsgInvoiceDateRequired  = "Please select an invoice date"
	MsgValidItemRequired    = "Please add at least one valid item with name, quantity, and price"
)

// Validate revisa el formulario antes de generar la vista previa o exportar.
// Devuelve el primer fallo en este orden: emisor, cliente, fecha, ítems.
// Un ledger vacío falla en el campo items.
func Validate(meta entity.InvoiceMeta, items []entity.LineItem) error {
	if strings.TrimSpace(meta.BusinessName) == "" {
		return &domain.ValidationError{Field: domain.FieldBusinessName, Message: MsgBusinessNameRequired}
	}
	if strings.TrimSpace(meta.ClientName) == "" {
		return &domain.ValidationError{Field: domain.FieldClientName, Message: MsgClientNameRequired}
	}
	if strings.TrimSpace(meta.InvoiceDate) == "" {
		return &domain.ValidationError{Field: domain.FieldInvoiceDate, Message: MsgInvoiceDateRequired}
	}
	if _, err := ParseInvoiceDate(meta.InvoiceDate); err != nil {
		return &domain.ValidationError{Field: domain.FieldInvoiceDate, Message: MsgInvoiceDateRequired}
	}
	if !HasBillableItem(items) {
		return &domain.ValidationError{Field: domain.FieldItems, Message: MsgValidItemRequired}
	}
	return nil
}

// HasBillableItem indica si al menos una línea tiene nombre, cantidad y precio positivos.
func HasBillableItem(items []entity.LineItem) bool {
	for _, item := range items {
		if item.IsBillable() {
			return true
		}
	}
	return false
}

// IsEmptyLedger indica que la vista previa debe mostrar la fila "sin ítems":
// no hay filas o todas están en blanco.
func IsEmptyLedger(items []entity.LineItem) bool {
	for _, item := range items {
		if !item.IsBlank() {
			return false
		}
	}
	return true
}
