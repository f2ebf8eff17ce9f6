package invoice_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
	"github.com/jhoicas/invoice-generator/internal/domain"
	"github.com/jhoicas/invoice-generator/internal/domain/ledger"
)

func zerologNop() zerolog.Logger { return zerolog.Nop() }

func TestExportService_Export(t *testing.T) {
	pdf := &fakeExporter{format: "pdf"}
	xml := &fakeExporter{format: "xml"}
	svc := appinvoice.NewExportService("Footer", zerologNop(), pdf, xml)

	assert.Equal(t, []string{"pdf", "xml"}, svc.Formats())

	res, err := svc.Export(context.Background(), sampleForm(), " XML ")
	require.NoError(t, err)
	assert.Equal(t, "Invoice-INV-20240105-0042.xml", res.Filename)
	assert.Equal(t, "application/xml", res.ContentType)
	assert.Equal(t, []byte("doc:INV-20240105-0042"), res.Content)
	assert.Equal(t, 1, xml.calls)
	assert.Equal(t, 0, pdf.calls)
	assert.Equal(t, "Footer", xml.last.Footer)
	assert.InDelta(t, 132.0, xml.last.Total, 1e-9)
}

func TestExportService_FormatoPorDefecto(t *testing.T) {
	pdf := &fakeExporter{format: "pdf"}
	svc := appinvoice.NewExportService("", zerologNop(), pdf)

	res, err := svc.Export(context.Background(), sampleForm(), "")
	require.NoError(t, err)
	assert.Equal(t, "Invoice-INV-20240105-0042.pdf", res.Filename)
}

func TestExportService_FormatoDesconocido(t *testing.T) {
	svc := appinvoice.NewExportService("", zerologNop(), &fakeExporter{format: "pdf"})

	_, err := svc.Export(context.Background(), sampleForm(), "docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExportService_ValidacionBloqueaExportacion(t *testing.T) {
	pdf := &fakeExporter{format: "pdf"}
	svc := appinvoice.NewExportService("", zerologNop(), pdf)

	f := sampleForm()
	f.Meta.BusinessName = "   "
	_, err := svc.Export(context.Background(), f, "pdf")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.FieldBusinessName, verr.Field)
	assert.Equal(t, 0, pdf.calls, "no se genera nada si la validación falla")
}

func TestExportService_LedgerVacioFallaEnItems(t *testing.T) {
	svc := appinvoice.NewExportService("", zerologNop(), &fakeExporter{format: "pdf"})

	f := sampleForm()
	f.Ledger = ledger.New()
	_, err := svc.Export(context.Background(), f, "pdf")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.FieldItems, verr.Field)
}

func TestExportService_ErrorDelExportador(t *testing.T) {
	svc := appinvoice.NewExportService("", zerologNop(), &fakeExporter{format: "pdf", err: errRender})

	_, err := svc.Export(context.Background(), sampleForm(), "pdf")
	assert.ErrorIs(t, err, errRender)
}
