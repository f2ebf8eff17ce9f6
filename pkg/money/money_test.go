package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-generator/pkg/money"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"USD", "$"},
		{"EUR", "€"},
		{"GBP", "£"},
		{"gbp", "£"},
		{" INR ", "₹"},
		{"JPY", "¥"},
		{"XYZ", "$"},
		{"", "$"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Symbol(tt.code))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{12, "12.00"},
		{132, "132.00"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{0.1 + 0.2, "0.30"},
		{2.675, "2.68"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, money.FormatAmount(tt.amount), "monto %v", tt.amount)
	}
}

func TestFormat_ConSimbolo(t *testing.T) {
	assert.Equal(t, "$132.00", money.Format(132, "USD"))
	assert.Equal(t, "€1,000.00", money.Format(1000, "EUR"))
	assert.Equal(t, "$5.00", money.Format(5, "???"))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "1234.50", money.Plain(1234.5))
	assert.Equal(t, "0.00", money.Plain(0))
}

func TestCurrencies_OrdenadasYSoportadas(t *testing.T) {
	list := money.Currencies()
	assert.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Code, list[i].Code)
	}
	assert.True(t, money.IsSupported("usd"))
	assert.False(t, money.IsSupported("BTC"))
}
