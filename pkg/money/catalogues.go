// Package money contiene el catálogo fijo de monedas soportadas por el formulario
// y el formateo de montos para la vista previa y el documento exportado.
package money

import (
	"sort"
	"strings"
)

// =============================================================================
// Monedas soportadas (ISO 4217). El catálogo es cerrado: un código desconocido
// se muestra con el símbolo por defecto.
// =============================================================================

const (
	CurrencyUSD = "USD" // Dólar estadounidense
	CurrencyEUR = "EUR" // Euro
	CurrencyGBP = "GBP" // Libra esterlina
	CurrencyINR = "INR" // Rupia india (₹ no existe en cp1252: el PDF muestra "INR 1,200.00")
	CurrencyJPY = "JPY" // Yen japonés
	CurrencyCAD = "CAD" // Dólar canadiense
	CurrencyAUD = "AUD" // Dólar australiano
)

// DefaultSymbol se usa para cualquier código fuera del catálogo.
const DefaultSymbol = "$"

// currencySymbols código ISO -> símbolo mostrado.
var currencySymbols = map[string]string{
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
	CurrencyINR: "₹",
	CurrencyJPY: "¥",
	CurrencyCAD: "CA$",
	CurrencyAUD: "A$",
}

// Currency par código/símbolo del catálogo.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// Symbol devuelve el símbolo de la moneda; "$" si el código no está en el catálogo.
func Symbol(code string) string {
	if s, ok := currencySymbols[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return s
	}
	return DefaultSymbol
}

// IsSupported indica si el código pertenece al catálogo.
func IsSupported(code string) bool {
	_, ok := currencySymbols[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Currencies lista el catálogo ordenado por código.
func Currencies() []Currency {
	out := make([]Currency, 0, len(currencySymbols))
	for code, sym := range currencySymbols {
		out = append(out, Currency{Code: code, Symbol: sym})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
