package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
	"github.com/jhoicas/invoice-generator/internal/domain/entity"
	"github.com/jhoicas/invoice-generator/internal/domain/ledger"
	"github.com/jhoicas/invoice-generator/internal/infrastructure/pdf"
)

func sampleDocument() appinvoice.Document {
	f := appinvoice.Form{
		Meta: entity.InvoiceMeta{
			BusinessName:  "Acme Studio",
			ClientName:    "Globex",
			InvoiceDate:   "2024-01-05",
			InvoiceNumber: "INV-20240105-0042",
			TaxRate:       10,
			Currency:      "EUR",
			PaymentTerms:  "Net 30",
			Notes:         "Pago por transferencia",
		},
		Ledger: ledger.New(
			entity.LineItem{Name: "Design", Quantity: 2, Price: 50},
			entity.LineItem{Name: "Hosting", Quantity: 1, Price: 20},
		),
	}
	return appinvoice.BuildDocument(f, "Thank you for your business!")
}

func TestExporters_GeneranPDF(t *testing.T) {
	exporters := []appinvoice.DocumentExporter{pdf.NewMarotoExporter(), pdf.NewFPDFExporter()}

	for _, e := range exporters {
		t.Run(e.ContentType(), func(t *testing.T) {
			assert.Equal(t, "pdf", e.Format())
			assert.Equal(t, "pdf", e.Extension())
			assert.Equal(t, pdf.ContentType, e.ContentType())

			out, err := e.Export(context.Background(), sampleDocument())
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe empezar con la cabecera PDF")
		})
	}
}

func TestExporters_SinFilasNiNotas(t *testing.T) {
	doc := sampleDocument()
	doc.Rows = nil
	doc.PaymentTerms = ""
	doc.Notes = ""

	for _, e := range []appinvoice.DocumentExporter{pdf.NewMarotoExporter(), pdf.NewFPDFExporter()} {
		out, err := e.Export(context.Background(), doc)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	}
}

func TestExporters_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pdf.NewFPDFExporter().Export(ctx, sampleDocument())
	assert.ErrorIs(t, err, context.Canceled)
	_, err = pdf.NewMarotoExporter().Export(ctx, sampleDocument())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewExporter_SeleccionDeMotor(t *testing.T) {
	assert.IsType(t, &pdf.FPDFExporter{}, pdf.NewExporter(pdf.EngineFPDF))
	assert.IsType(t, &pdf.MarotoExporter{}, pdf.NewExporter(pdf.EngineMaroto))
	assert.IsType(t, &pdf.MarotoExporter{}, pdf.NewExporter(""))
}

func TestPrintableCurrency(t *testing.T) {
	doc := sampleDocument()
	assert.Equal(t, doc, pdf.PrintableCurrency(doc), "€ existe en cp1252")

	doc.Currency = "INR"
	doc.CurrencySymbol = "₹"
	doc.Rows[0].PriceText = "₹50.00"
	doc.TotalText = "₹132.00"

	got := pdf.PrintableCurrency(doc)
	assert.Equal(t, "INR", got.CurrencySymbol)
	assert.Equal(t, "INR 50.00", got.Rows[0].PriceText)
	assert.Equal(t, "INR 100.00", got.Rows[0].AmountText)
	assert.Equal(t, "INR 120.00", got.SubtotalText)
	assert.Equal(t, "INR 12.00", got.TaxText)
	assert.Equal(t, "INR 132.00", got.TotalText)
	assert.Equal(t, "₹50.00", doc.Rows[0].PriceText, "el documento original no se modifica")
}

func TestExporters_MonedaFueraDeCP1252(t *testing.T) {
	doc := sampleDocument()
	doc.Currency = "INR"
	doc.CurrencySymbol = "₹"

	for _, e := range []appinvoice.DocumentExporter{pdf.NewMarotoExporter(), pdf.NewFPDFExporter()} {
		out, err := e.Export(context.Background(), doc)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	}
}
