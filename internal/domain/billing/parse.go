package billing

import (
	"math"
	"strconv"
	"strings"
)

// ParseTaxRate interpreta el porcentaje de impuesto del formulario.
// Vacío, inválido, no finito o negativo → 0.
func ParseTaxRate(s string) float64 {
	return parseNonNegative(s)
}

// ParsePrice interpreta un precio. Vacío, inválido, no finito o negativo → 0.
func ParsePrice(s string) float64 {
	return parseNonNegative(s)
}

// MaxQuantity mayor cantidad aceptada por línea; por encima se trata como inválida.
const MaxQuantity = math.MaxInt32

// ParseQuantity interpreta una cantidad entera. Un texto decimal se trunca
// hacia cero ("2.9" → 2). Vacío, inválido, negativo o mayor que MaxQuantity → 0.
func ParseQuantity(s string) int {
	s = strings.TrimSpace(s)
	var f float64
	if n, err := strconv.Atoi(s); err == nil {
		f = float64(n)
	} else {
		f = math.Trunc(parseNonNegative(s))
	}
	if f < 0 || f > MaxQuantity {
		return 0
	}
	return int(f)
}

func parseNonNegative(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// SanitizeAmount aplica a un float ya tipado las mismas reglas que ParsePrice / ParseTaxRate.
func SanitizeAmount(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
