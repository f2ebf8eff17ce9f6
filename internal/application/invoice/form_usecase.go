package invoice

import (
	"context"

	"github.com/jhoicas/invoice-generator/internal/application/dto"
	"github.com/jhoicas/invoice-generator/internal/domain/billing"
)

// FormUseCase operaciones sin estado: cada petición trae el formulario completo.
type FormUseCase struct {
	numbers  *billing.NumberGenerator
	defaults Defaults
	export   *ExportService
}

// NewFormUseCase construye el caso de uso.
func NewFormUseCase(numbers *billing.NumberGenerator, defaults Defaults, export *ExportService) *FormUseCase {
	return &FormUseCase{numbers: numbers, defaults: defaults.normalized(), export: export}
}

// NewNumber genera un número de factura y la fecha de hoy para un formulario nuevo.
func (uc *FormUseCase) NewNumber() dto.InvoiceNumberResponse {
	return dto.InvoiceNumberResponse{
		InvoiceNumber: uc.numbers.Next(),
		InvoiceDate:   uc.numbers.Today(),
	}
}

// Form interpreta el body; un formulario sin número recibe uno generado.
func (uc *FormUseCase) Form(in dto.InvoiceFormRequest) Form {
	f := FormFromRequest(in, uc.defaults)
	if f.Meta.InvoiceNumber == "" {
		f.Meta.InvoiceNumber = uc.numbers.Next()
	}
	return f
}

// Calculate totales del formulario.
func (uc *FormUseCase) Calculate(in dto.InvoiceFormRequest) dto.TotalsResponse {
	return BuildTotals(FormFromRequest(in, uc.defaults))
}

// Preview vista previa del formulario.
func (uc *FormUseCase) Preview(in dto.InvoiceFormRequest) dto.PreviewResponse {
	return BuildPreview(uc.Form(in))
}

// Validate valida el formulario; nil si puede generarse / exportarse.
func (uc *FormUseCase) Validate(in dto.InvoiceFormRequest) error {
	return FormFromRequest(in, uc.defaults).Validate()
}

// Export valida y genera el archivo en el formato pedido.
func (uc *FormUseCase) Export(ctx context.Context, in dto.InvoiceFormRequest, format string) (*ExportResult, error) {
	return uc.export.Export(ctx, uc.Form(in), format)
}

// Formats formatos de exportación disponibles.
func (uc *FormUseCase) Formats() []string {
	return uc.export.Formats()
}
