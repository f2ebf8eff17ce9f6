package invoice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-generator/internal/application/dto"
	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
	"github.com/jhoicas/invoice-generator/internal/domain"
	"github.com/jhoicas/invoice-generator/internal/infrastructure/memory"
)

func newDraftUC(exporters ...appinvoice.DocumentExporter) *appinvoice.DraftUseCase {
	svc := appinvoice.NewExportService(testDefaults.Footer, zerologNop(), exporters...)
	return appinvoice.NewDraftUseCase(memory.NewDraftRepository(time.Hour), fixedNumbers(), testDefaults, svc, zerologNop())
}

func strPtr(s string) *string { return &s }

func TestDraftUseCase_Create(t *testing.T) {
	uc := newDraftUC()

	d, err := uc.Create(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "INV-20240105-0042", d.Form.InvoiceNumber)
	assert.Equal(t, "2024-01-05", d.Form.InvoiceDate)
	assert.Equal(t, "USD", d.Form.Currency)
	assert.Equal(t, 10.0, d.Form.TaxRate)
	require.Len(t, d.Form.Items, 1)
	assert.Equal(t, dto.LineItemResponse{Quantity: 1}, d.Form.Items[0])
	assert.Equal(t, "$0.00", d.Totals.TotalDisplay)
	assert.Equal(t, "January 5, 2024", d.Preview.Date)
}

func TestDraftUseCase_Create_DefaultsFueraDeRango(t *testing.T) {
	svc := appinvoice.NewExportService("", zerologNop())
	defaults := appinvoice.Defaults{Currency: "btc", TaxRate: -5}
	uc := appinvoice.NewDraftUseCase(memory.NewDraftRepository(time.Hour), fixedNumbers(), defaults, svc, zerologNop())

	d, err := uc.Create(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0.0, d.Form.TaxRate, "un impuesto negativo se trata como 0")
	assert.Equal(t, "USD", d.Form.Currency)
	assert.Equal(t, "$0.00", d.Totals.TaxDisplay)
}

// Recorrido completo del formulario: cada mutación devuelve totales y vista previa recalculados.
func TestDraftUseCase_FlujoDelFormulario(t *testing.T) {
	ctx := context.Background()
	uc := newDraftUC(&fakeExporter{format: "pdf"})

	d, err := uc.Create(ctx)
	require.NoError(t, err)
	id := d.ID

	d, err = uc.UpdateMeta(ctx, id, dto.UpdateDraftRequest{
		BusinessName: strPtr("Acme Studio"),
		ClientName:   strPtr("Globex"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Studio", d.Preview.BusinessName)

	d, err = uc.UpdateItem(ctx, id, 0, dto.LineItemRequest{Name: "Design", Quantity: "2", Price: "50"})
	require.NoError(t, err)
	assert.Equal(t, "$110.00", d.Totals.TotalDisplay)

	d, err = uc.AddItem(ctx, id)
	require.NoError(t, err)
	require.Len(t, d.Preview.Rows, 2)
	assert.True(t, d.Preview.Rows[0].CanRemove)

	d, err = uc.UpdateItem(ctx, id, 1, dto.LineItemRequest{Name: "Hosting", Quantity: "1", Price: "20"})
	require.NoError(t, err)
	assert.Equal(t, "$132.00", d.Totals.TotalDisplay)

	gen, err := uc.Generate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "$132.00", gen.Preview.Total)

	p, err := uc.Preview(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Tax (10%):", p.TaxLabel)

	res, err := uc.Export(ctx, id, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "Invoice-INV-20240105-0042.pdf", res.Filename)

	require.NoError(t, uc.Delete(ctx, id))
	_, err = uc.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftUseCase_QuitarTodasLasFilas(t *testing.T) {
	ctx := context.Background()
	uc := newDraftUC(&fakeExporter{format: "pdf"})

	d, err := uc.Create(ctx)
	require.NoError(t, err)
	_, err = uc.UpdateMeta(ctx, d.ID, dto.UpdateDraftRequest{
		BusinessName: strPtr("Acme"),
		ClientName:   strPtr("Globex"),
	})
	require.NoError(t, err)

	d, err = uc.RemoveItem(ctx, d.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, d.Form.Items)
	assert.True(t, d.Preview.NoItems)

	_, err = uc.Generate(ctx, d.ID)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.FieldItems, verr.Field)

	_, err = uc.Export(ctx, d.ID, "pdf")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.FieldItems, verr.Field)
}

func TestDraftUseCase_IndiceInvalido(t *testing.T) {
	ctx := context.Background()
	uc := newDraftUC()

	d, err := uc.Create(ctx)
	require.NoError(t, err)

	_, err = uc.RemoveItem(ctx, d.ID, 3)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	_, err = uc.UpdateItem(ctx, d.ID, -1, dto.LineItemRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	got, err := uc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Len(t, got.Form.Items, 1)
}

func TestDraftUseCase_BorradorDesconocido(t *testing.T) {
	ctx := context.Background()
	uc := newDraftUC()

	_, err := uc.AddItem(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Preview(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Export(ctx, "no-existe", "pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
