package invoice_test

import (
	"context"
	"errors"
	"time"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
	"github.com/jhoicas/invoice-generator/internal/domain/billing"
	"github.com/jhoicas/invoice-generator/internal/domain/entity"
	"github.com/jhoicas/invoice-generator/internal/domain/ledger"
)

var fixedNow = time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)

func fixedNumbers() *billing.NumberGenerator {
	return billing.NewNumberGeneratorWith(
		func() time.Time { return fixedNow },
		func(int) int { return 41 },
	)
}

var testDefaults = appinvoice.Defaults{Currency: "USD", TaxRate: 10, Footer: "Thank you for your business!"}

// sampleForm formulario válido: Design 2×50 + Hosting 1×20 con 10% → 132.
func sampleForm() appinvoice.Form {
	return appinvoice.Form{
		Meta: entity.InvoiceMeta{
			BusinessName:  "Acme Studio",
			ClientName:    "Globex",
			InvoiceDate:   "2024-01-05",
			InvoiceNumber: "INV-20240105-0042",
			TaxRate:       10,
			Currency:      "USD",
		},
		Ledger: ledger.New(
			entity.LineItem{Name: "Design", Quantity: 2, Price: 50},
			entity.LineItem{Name: "Hosting", Quantity: 1, Price: 20},
		),
	}
}

type fakeExporter struct {
	format string
	err    error
	calls  int
	last   appinvoice.Document
}

func (f *fakeExporter) Format() string      { return f.format }
func (f *fakeExporter) Extension() string   { return f.format }
func (f *fakeExporter) ContentType() string { return "application/" + f.format }

func (f *fakeExporter) Export(_ context.Context, doc appinvoice.Document) ([]byte, error) {
	f.calls++
	f.last = doc
	if f.err != nil {
		return nil, f.err
	}
	return []byte("doc:" + doc.InvoiceNumber), nil
}

var errRender = errors.New("render falló")
