package billing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-generator/internal/domain/billing"
)

func TestParseTaxRate(t *testing.T) {
	tests := map[string]float64{
		"10":    10,
		" 7.5 ": 7.5,
		"":      0,
		"abc":   0,
		"-5":    0,
		"NaN":   0,
		"Inf":   0,
		"0":     0,
	}
	for in, want := range tests {
		assert.Equal(t, want, billing.ParseTaxRate(in), "entrada %q", in)
	}
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 50.0, billing.ParsePrice("50.00"))
	assert.Equal(t, 0.99, billing.ParsePrice("0.99"))
	assert.Equal(t, 0.0, billing.ParsePrice("gratis"))
	assert.Equal(t, 0.0, billing.ParsePrice("-1"))
}

func TestParseQuantity(t *testing.T) {
	tests := map[string]int{
		"2":    2,
		" 3 ":  3,
		"2.9":  2,
		"":     0,
		"dos":  0,
		"-4":   0,
		"-0.5": 0,
		"1e20": 0,

		"2147483647":   2147483647,
		"2147483647.9": 2147483647,
		"3000000000":   0,
		"3000000000.0": 0,
	}
	for in, want := range tests {
		assert.Equal(t, want, billing.ParseQuantity(in), "entrada %q", in)
	}
}

func TestSanitizeAmount(t *testing.T) {
	assert.Equal(t, 0.0, billing.SanitizeAmount(math.NaN()))
	assert.Equal(t, 0.0, billing.SanitizeAmount(math.Inf(1)))
	assert.Equal(t, 0.0, billing.SanitizeAmount(-3))
	assert.Equal(t, 12.5, billing.SanitizeAmount(12.5))
}
