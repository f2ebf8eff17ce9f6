package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-generator/internal/domain/billing"
)

func TestFormatInvoiceDate(t *testing.T) {
	assert.Equal(t, "January 5, 2024", billing.FormatInvoiceDate("2024-01-05"))
	assert.Equal(t, "December 31, 2025", billing.FormatInvoiceDate(" 2025-12-31 "))
	assert.Equal(t, "", billing.FormatInvoiceDate(""))
	assert.Equal(t, "", billing.FormatInvoiceDate("05/01/2024"))
	assert.Equal(t, "", billing.FormatInvoiceDate("2024-02-30"))
}
