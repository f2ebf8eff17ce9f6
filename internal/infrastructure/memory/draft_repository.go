package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
	"github.com/jhoicas/invoice-generator/internal/domain"
)

var _ appinvoice.DraftRepository = (*DraftRepo)(nil)

// DraftRepo almacén de borradores en memoria del proceso. No persiste nada:
// un reinicio descarta todos los borradores. Las entradas sin actividad durante
// ttl se purgan de forma perezosa en cada acceso.
type DraftRepo struct {
	mu     sync.RWMutex
	drafts map[string]*appinvoice.Draft
	ttl    time.Duration
	now    func() time.Time
}

// NewDraftRepository construye el almacén. ttl <= 0 desactiva la expiración.
func NewDraftRepository(ttl time.Duration) *DraftRepo {
	return NewDraftRepositoryWithClock(ttl, time.Now)
}

// NewDraftRepositoryWithClock permite inyectar el reloj (tests).
func NewDraftRepositoryWithClock(ttl time.Duration, now func() time.Time) *DraftRepo {
	return &DraftRepo{
		drafts: make(map[string]*appinvoice.Draft),
		ttl:    ttl,
		now:    now,
	}
}

// Create guarda una copia del borrador.
func (r *DraftRepo) Create(_ context.Context, d *appinvoice.Draft) error {
	if d == nil || d.ID == "" {
		return fmt.Errorf("%w: borrador sin id", domain.ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purgeLocked()
	if _, exists := r.drafts[d.ID]; exists {
		return fmt.Errorf("%w: borrador %s ya existe", domain.ErrInvalidInput, d.ID)
	}
	r.drafts[d.ID] = d.Clone()
	return nil
}

// Get devuelve una copia del borrador.
func (r *DraftRepo) Get(_ context.Context, id string) (*appinvoice.Draft, error) {
	r.mu.RLock()
	d, ok := r.drafts[id]
	if ok && !r.expired(d) {
		c := d.Clone()
		r.mu.RUnlock()
		return c, nil
	}
	r.mu.RUnlock()
	if ok {
		r.mu.Lock()
		r.purgeLocked()
		r.mu.Unlock()
	}
	return nil, domain.ErrNotFound
}

// Mutate aplica fn sobre una copia y la guarda solo si fn no devuelve error.
func (r *DraftRepo) Mutate(_ context.Context, id string, fn func(d *appinvoice.Draft) error) (*appinvoice.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purgeLocked()
	current, ok := r.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	work := current.Clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	r.drafts[id] = work
	return work.Clone(), nil
}

// Delete elimina el borrador. Un borrador vencido ya no existe: ErrNotFound.
func (r *DraftRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purgeLocked()
	if _, ok := r.drafts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.drafts, id)
	return nil
}

// Len número de borradores vigentes.
func (r *DraftRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purgeLocked()
	return len(r.drafts)
}

func (r *DraftRepo) expired(d *appinvoice.Draft) bool {
	return r.ttl > 0 && r.now().Sub(d.UpdatedAt) > r.ttl
}

func (r *DraftRepo) purgeLocked() {
	for id, d := range r.drafts {
		if r.expired(d) {
			delete(r.drafts, id)
		}
	}
}
