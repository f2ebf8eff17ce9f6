package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrItemNotFound      = errors.New("ítem no encontrado")
	ErrUnsupportedFormat = errors.New("formato de exportación no soportado")
)

// Campos del formulario que puede señalar una validación.
const (
	FieldBusinessName = "business_name"
	FieldClientName   = "client_name"
	FieldInvoiceDate  = "invoice_date"
	FieldItems        = "items"
)

// ValidationError fallo de validación del formulario. Field indica el campo
// que el cliente debe enfocar; Message es el texto que se muestra al usuario.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
