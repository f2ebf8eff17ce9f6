// Package ledger mantiene la lista ordenada y mutable de líneas de una factura.
package ledger

import (
	"fmt"

	"github.com/jhoicas/invoice-generator/internal/domain"
	"github.com/jhoicas/invoice-generator/internal/domain/entity"
)

// Ledger colección ordenada de líneas. La posición es la única identidad de una línea.
// El valor cero es un ledger vacío listo para usar.
type Ledger struct {
	items []entity.LineItem
}

// New construye un ledger con las líneas dadas (se copian).
func New(items ...entity.LineItem) Ledger {
	l := Ledger{items: make([]entity.LineItem, len(items))}
	copy(l.items, items)
	return l
}

// Add agrega una fila por defecto al final y devuelve su índice.
func (l *Ledger) Add() int {
	l.items = append(l.items, entity.NewLineItem())
	return len(l.items) - 1
}

// Remove elimina la fila en index sin condiciones: puede dejar el ledger vacío.
func (l *Ledger) Remove(index int) error {
	if err := l.check(index); err != nil {
		return err
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// Update reemplaza la fila en index.
func (l *Ledger) Update(index int, item entity.LineItem) error {
	if err := l.check(index); err != nil {
		return err
	}
	l.items[index] = item
	return nil
}

// Items devuelve una copia de las filas en orden.
func (l Ledger) Items() []entity.LineItem {
	out := make([]entity.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len número de filas.
func (l Ledger) Len() int { return len(l.items) }

// CanRemove replica la regla del formulario: el control de quitar solo se
// muestra cuando hay más de una fila.
func (l Ledger) CanRemove() bool { return len(l.items) > 1 }

// Clone copia profunda (el slice no se comparte).
func (l Ledger) Clone() Ledger { return New(l.items...) }

func (l Ledger) check(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: índice %d (filas: %d)", domain.ErrItemNotFound, index, len(l.items))
	}
	return nil
}
