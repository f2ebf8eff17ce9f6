package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-generator/internal/application/dto"
	"github.com/jhoicas/invoice-generator/internal/domain/billing"
	"github.com/jhoicas/invoice-generator/internal/domain/entity"
	"github.com/jhoicas/invoice-generator/internal/domain/ledger"
)

// DraftUseCase controlador del formulario con estado: cada interacción del
// navegador (agregar fila, editar, quitar, cambiar impuesto...) muta el borrador
// y la respuesta trae los totales recalculados y la vista previa actualizada.
type DraftUseCase struct {
	repo     DraftRepository
	numbers  *billing.NumberGenerator
	defaults Defaults
	export   *ExportService
	now      func() time.Time
	log      zerolog.Logger
}

// NewDraftUseCase construye el caso de uso inyectando todas sus dependencias.
func NewDraftUseCase(
	repo DraftRepository,
	numbers *billing.NumberGenerator,
	defaults Defaults,
	export *ExportService,
	log zerolog.Logger,
) *DraftUseCase {
	return &DraftUseCase{
		repo:     repo,
		numbers:  numbers,
		defaults: defaults.normalized(),
		export:   export,
		now:      time.Now,
		log:      log,
	}
}

// Create abre un borrador: una fila por defecto, número generado, fecha de hoy,
// moneda e impuesto por defecto.
func (uc *DraftUseCase) Create(ctx context.Context) (*dto.DraftResponse, error) {
	now := uc.now()
	var l ledger.Ledger
	l.Add()
	d := &Draft{
		ID: uuid.New().String(),
		Form: Form{
			Meta: entity.InvoiceMeta{
				InvoiceNumber: uc.numbers.Next(),
				InvoiceDate:   uc.numbers.Today(),
				TaxRate:       uc.defaults.TaxRate,
				Currency:      uc.defaults.Currency,
			},
			Ledger: l,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("crear borrador: %w", err)
	}
	uc.log.Debug().Str("draft_id", d.ID).Str("invoice_number", d.Form.Meta.InvoiceNumber).Msg("borrador creado")
	return toDraftResponse(d), nil
}

// Get estado actual del borrador.
func (uc *DraftUseCase) Get(ctx context.Context, id string) (*dto.DraftResponse, error) {
	d, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDraftResponse(d), nil
}

// UpdateMeta aplica los campos presentes de la cabecera.
func (uc *DraftUseCase) UpdateMeta(ctx context.Context, id string, in dto.UpdateDraftRequest) (*dto.DraftResponse, error) {
	return uc.mutate(ctx, id, func(f *Form) error {
		ApplyUpdate(&f.Meta, in)
		return nil
	})
}

// AddItem agrega una fila por defecto al final del ledger.
func (uc *DraftUseCase) AddItem(ctx context.Context, id string) (*dto.DraftResponse, error) {
	return uc.mutate(ctx, id, func(f *Form) error {
		f.Ledger.Add()
		return nil
	})
}

// UpdateItem reemplaza la fila index con los valores del formulario.
func (uc *DraftUseCase) UpdateItem(ctx context.Context, id string, index int, in dto.LineItemRequest) (*dto.DraftResponse, error) {
	item := LineItemFromRequest(in)
	return uc.mutate(ctx, id, func(f *Form) error {
		return f.Ledger.Update(index, item)
	})
}

// RemoveItem quita la fila index sin condiciones; el ledger puede quedar vacío
// y en ese caso generar/exportar falla en la validación de ítems.
func (uc *DraftUseCase) RemoveItem(ctx context.Context, id string, index int) (*dto.DraftResponse, error) {
	return uc.mutate(ctx, id, func(f *Form) error {
		return f.Ledger.Remove(index)
	})
}

// Delete descarta el borrador.
func (uc *DraftUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Preview vista previa del borrador.
func (uc *DraftUseCase) Preview(ctx context.Context, id string) (*dto.PreviewResponse, error) {
	d, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p := BuildPreview(d.Form)
	return &p, nil
}

// Generate valida el borrador antes de mostrar la vista previa definitiva.
func (uc *DraftUseCase) Generate(ctx context.Context, id string) (*dto.DraftResponse, error) {
	d, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.Form.Validate(); err != nil {
		return nil, err
	}
	return toDraftResponse(d), nil
}

// Export valida el borrador y genera el archivo.
func (uc *DraftUseCase) Export(ctx context.Context, id, format string) (*ExportResult, error) {
	d, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.export.Export(ctx, d.Form, format)
}

func (uc *DraftUseCase) mutate(ctx context.Context, id string, fn func(f *Form) error) (*dto.DraftResponse, error) {
	d, err := uc.repo.Mutate(ctx, id, func(d *Draft) error {
		if err := fn(&d.Form); err != nil {
			return err
		}
		d.UpdatedAt = uc.now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDraftResponse(d), nil
}

func toDraftResponse(d *Draft) *dto.DraftResponse {
	return &dto.DraftResponse{
		ID:        d.ID,
		Form:      ToStateResponse(d.Form),
		Totals:    BuildTotals(d.Form),
		Preview:   BuildPreview(d.Form),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
