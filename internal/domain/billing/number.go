package billing

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NumberGenerator genera números de factura INV-YYYYMMDD-NNNN.
// NNNN es aleatorio en 1..9999; la unicidad no se verifica.
type NumberGenerator struct {
	now  func() time.Time
	intN func(n int) int
}

// NewNumberGenerator usa el reloj del sistema y math/rand/v2.
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{now: time.Now, intN: rand.IntN}
}

// NewNumberGeneratorWith permite inyectar reloj y fuente aleatoria (tests).
// intN debe devolver un valor en [0, n).
func NewNumberGeneratorWith(now func() time.Time, intN func(n int) int) *NumberGenerator {
	return &NumberGenerator{now: now, intN: intN}
}

// Next devuelve un número nuevo.
func (g *NumberGenerator) Next() string {
	suffix := g.intN(9999) + 1
	return fmt.Sprintf("INV-%s-%04d", g.now().Format("20060102"), suffix)
}

// Today fecha del reloj del generador en formato de formulario.
func (g *NumberGenerator) Today() string {
	return g.now().Format(DateInputLayout)
}
