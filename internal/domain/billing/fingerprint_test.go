package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-generator/internal/domain/billing"
	"github.com/jhoicas/invoice-generator/internal/domain/entity"
)

// Vector calculado con SHA-384 sobre:
//
//	"INV-20240105-0042" + "2024-01-05" + "120.00" + "12.00" + "132.00" + "USD"
const testFingerprint = "f6834d31b8e8683e60d169da7e400fb3c2edef9d3a5c8445f876865f244659888bf130a03b422cb0f2b32e7fc71fa554"

func fingerprintMeta() entity.InvoiceMeta {
	return entity.InvoiceMeta{InvoiceNumber: "INV-20240105-0042", InvoiceDate: "2024-01-05", Currency: "usd"}
}

func TestFingerprint_VectorExacto(t *testing.T) {
	totals := billing.Totals{Subtotal: 120, TaxAmount: 12, Total: 132}

	got := billing.Fingerprint(fingerprintMeta(), totals)

	assert.Equal(t, testFingerprint, got)
	assert.Len(t, got, 96, "SHA-384 en hex son 96 caracteres")
}

func TestFingerprint_CambiaConLosMontos(t *testing.T) {
	base := billing.Fingerprint(fingerprintMeta(), billing.Totals{Subtotal: 120, TaxAmount: 12, Total: 132})
	other := billing.Fingerprint(fingerprintMeta(), billing.Totals{Subtotal: 120, TaxAmount: 12, Total: 132.01})

	assert.NotEqual(t, base, other)
}

// Diferencias por debajo del centavo no cambian la huella: el documento muestra dos decimales.
func TestFingerprint_RedondeoADosDecimales(t *testing.T) {
	a := billing.Fingerprint(fingerprintMeta(), billing.Totals{Subtotal: 0.1 + 0.2, TaxAmount: 0, Total: 0.1 + 0.2})
	b := billing.Fingerprint(fingerprintMeta(), billing.Totals{Subtotal: 0.3, TaxAmount: 0, Total: 0.3})

	assert.Equal(t, a, b)
}
