// Package billing contiene el motor de cálculo del formulario de factura:
// totales, parseo tolerante de entradas numéricas, validación previa a la
// exportación y generación del número de factura. Todas las funciones son puras
// salvo NumberGenerator, que depende de un reloj y una fuente aleatoria inyectables.
package billing

import "github.com/jhoicas/invoice-generator/internal/domain/entity"

// Totals valores derivados del ledger. No se almacenan: se recalculan en cada mutación.
type Totals struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// Calculate suma cantidad × precio de cada línea y aplica el impuesto porcentual.
// Aritmética float64 sin redondeo; el redondeo a dos decimales ocurre al mostrar.
//
//	subtotal = Σ(quantity × price)
//	tax      = subtotal × taxRate / 100
//	total    = subtotal + tax
func Calculate(items []entity.LineItem, taxRate float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += LineTotal(item)
	}
	tax := subtotal * taxRate / 100
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal + tax,
	}
}

// LineTotal total de una línea.
func LineTotal(item entity.LineItem) float64 {
	return item.Amount()
}
