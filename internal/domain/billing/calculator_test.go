package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-generator/internal/domain/billing"
	"github.com/jhoicas/invoice-generator/internal/domain/entity"
)

// Ejemplo de referencia: Design 2×50 + Hosting 1×20 con 10% de impuesto.
func TestCalculate_EjemploDeReferencia(t *testing.T) {
	items := []entity.LineItem{
		{Name: "Design", Quantity: 2, Price: 50.00},
		{Name: "Hosting", Quantity: 1, Price: 20.00},
	}

	got := billing.Calculate(items, 10)

	assert.InDelta(t, 120.00, got.Subtotal, 1e-9)
	assert.InDelta(t, 12.00, got.TaxAmount, 1e-9)
	assert.InDelta(t, 132.00, got.Total, 1e-9)
}

func TestCalculate_Propiedades(t *testing.T) {
	tests := []struct {
		name  string
		items []entity.LineItem
		rate  float64
	}{
		{"sin ítems", nil, 10},
		{"tasa cero", []entity.LineItem{{Quantity: 3, Price: 9.99}}, 0},
		{"tasa decimal", []entity.LineItem{{Quantity: 7, Price: 0.15}, {Quantity: 1, Price: 1000}}, 7.25},
		{"cantidad cero", []entity.LineItem{{Name: "x", Quantity: 0, Price: 100}}, 19},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.Calculate(tt.items, tt.rate)

			var want float64
			for _, it := range tt.items {
				want += float64(it.Quantity) * it.Price
			}
			assert.Equal(t, want, got.Subtotal)
			assert.Equal(t, got.Subtotal*tt.rate/100, got.TaxAmount)
			assert.Equal(t, got.Subtotal+got.TaxAmount, got.Total)
		})
	}
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 100.0, billing.LineTotal(entity.LineItem{Quantity: 2, Price: 50}))
	assert.Equal(t, 0.0, billing.LineTotal(entity.NewLineItem()))
}
