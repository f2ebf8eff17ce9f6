package billing

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"github.com/jhoicas/invoice-generator/internal/domain/entity"
	"github.com/jhoicas/invoice-generator/pkg/money"
)

// Fingerprint huella SHA-384 (hex, minúsculas) del documento exportado.
// Identifica el contenido económico de la factura: si cambia un monto, la fecha,
// el número o la moneda, cambia la huella.
//
// Cadena (sin separadores): InvoiceNumber + InvoiceDate + Subtotal + Tax + Total + Currency,
// con montos a dos decimales sin separador de miles (ej: 1500.00).
func Fingerprint(meta entity.InvoiceMeta, totals Totals) string {
	chain := strings.TrimSpace(meta.InvoiceNumber) +
		strings.TrimSpace(meta.InvoiceDate) +
		money.Plain(totals.Subtotal) +
		money.Plain(totals.TaxAmount) +
		money.Plain(totals.Total) +
		strings.ToUpper(strings.TrimSpace(meta.Currency))

	hash := sha512.Sum384([]byte(chain))
	return hex.EncodeToString(hash[:])
}
