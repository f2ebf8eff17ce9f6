package invoice

import (
	"context"
	"time"
)

// DocumentExporter colaborador que convierte el documento en un archivo descargable.
// Format es la clave con la que se pide el formato ("pdf", "xml").
type DocumentExporter interface {
	Format() string
	Extension() string
	ContentType() string
	Export(ctx context.Context, doc Document) ([]byte, error)
}

// Draft borrador del formulario guardado en memoria mientras el navegador lo edita.
type Draft struct {
	ID        string
	Form      Form
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone copia profunda del borrador.
func (d *Draft) Clone() *Draft {
	c := *d
	c.Form = d.Form.Clone()
	return &c
}

// DraftRepository puerto del almacén de borradores.
// Get y Mutate devuelven copias; Mutate ejecuta fn de forma atómica respecto
// de otras operaciones sobre el mismo almacén. Un id desconocido o expirado
// devuelve domain.ErrNotFound.
type DraftRepository interface {
	Create(ctx context.Context, d *Draft) error
	Get(ctx context.Context, id string) (*Draft, error)
	Mutate(ctx context.Context, id string, fn func(d *Draft) error) (*Draft, error)
	Delete(ctx context.Context, id string) error
}
