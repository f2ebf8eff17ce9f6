package entity

import "strings"

// UntitledItem nombre mostrado para una línea sin nombre.
const UntitledItem = "Untitled Item"

// LineItem representa una línea facturable. No tiene identidad propia:
// se identifica por su posición en el ledger.
type LineItem struct {
	Name     string
	Quantity int
	Price    float64
}

// NewLineItem devuelve la fila por defecto que agrega "add item" (cantidad 1, precio 0).
func NewLineItem() LineItem {
	return LineItem{Quantity: 1}
}

// Amount cantidad × precio.
func (i LineItem) Amount() float64 {
	return float64(i.Quantity) * i.Price
}

// DisplayName nombre para vista previa y documento; "Untitled Item" si está en blanco.
func (i LineItem) DisplayName() string {
	if strings.TrimSpace(i.Name) == "" {
		return UntitledItem
	}
	return i.Name
}

// IsBlank indica una fila sin nombre, cantidad ni precio.
func (i LineItem) IsBlank() bool {
	return strings.TrimSpace(i.Name) == "" && i.Quantity == 0 && i.Price == 0
}

// IsBillable indica una fila con nombre, cantidad positiva y precio positivo.
func (i LineItem) IsBillable() bool {
	return strings.TrimSpace(i.Name) != "" && i.Quantity > 0 && i.Price > 0
}
