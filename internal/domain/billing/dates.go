package billing

import (
	"strings"
	"time"
)

const (
	// DateInputLayout formato de la fecha en el formulario (input type=date).
	DateInputLayout = "2006-01-02"
	// DateDisplayLayout formato largo mostrado en vista previa y documento.
	DateDisplayLayout = "January 2, 2006"
)

// ParseInvoiceDate interpreta la fecha ISO del formulario. La fecha es de
// calendario: no se aplica zona horaria.
func ParseInvoiceDate(s string) (time.Time, error) {
	return time.Parse(DateInputLayout, strings.TrimSpace(s))
}

// FormatInvoiceDate devuelve la fecha larga ("January 5, 2024") o "" si el
// texto está vacío o no es una fecha válida.
func FormatInvoiceDate(s string) string {
	d, err := ParseInvoiceDate(s)
	if err != nil {
		return ""
	}
	return d.Format(DateDisplayLayout)
}
