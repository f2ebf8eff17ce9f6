package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Round2 redondea a dos decimales (mitad lejos de cero) sobre la representación
// decimal más corta del float, no sobre su valor binario.
func Round2(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

// FormatAmount devuelve el monto con separador de miles y dos decimales.
// Ej: 1234.5 → "1,234.50"
func FormatAmount(amount float64) string {
	return printer.Sprintf("%.2f", Round2(amount).InexactFloat64())
}

// Format antepone el símbolo de la moneda al monto formateado.
// Ej: Format(132, "EUR") → "€132.00"
func Format(amount float64, currencyCode string) string {
	return Symbol(currencyCode) + FormatAmount(amount)
}

// Plain devuelve el monto con dos decimales, sin separadores (documentos XML).
func Plain(amount float64) string {
	return Round2(amount).StringFixed(2)
}
