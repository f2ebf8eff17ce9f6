// Package xmldoc exporta el documento de factura como XML estilo UBL 2.1
// (subconjunto sin extensiones ni firma), serializado en forma canónica C14N.
package xmldoc

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/ucarion/c14n"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
	"github.com/jhoicas/invoice-generator/pkg/money"
)

// Namespaces UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

const (
	ublVersion = "2.1"
	// 380 = Commercial invoice (UNCL1001)
	invoiceTypeCode = "380"
	// EA = each (UN/ECE Rec 20)
	unitCode = "EA"

	xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
)

var _ appinvoice.DocumentExporter = (*Exporter)(nil)

// Exporter implementa invoice.DocumentExporter para el formato "xml".
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string      { return "xml" }
func (e *Exporter) Extension() string   { return "xml" }
func (e *Exporter) ContentType() string { return "application/xml" }

// Export construye el árbol con etree y lo devuelve canonicalizado.
func (e *Exporter) Export(ctx context.Context, doc appinvoice.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tree := Build(doc)

	raw, err := tree.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmldoc: serializar: %w", err)
	}
	canonical, err := canonicalize(raw)
	if err != nil {
		return nil, fmt.Errorf("xmldoc: canonicalizar: %w", err)
	}
	out := make([]byte, 0, len(xmlHeader)+len(canonical))
	out = append(out, xmlHeader...)
	return append(out, canonical...), nil
}

// Build arma el árbol <Invoice> del documento.
func Build(doc appinvoice.Document) *etree.Document {
	tree := etree.NewDocument()
	root := tree.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	cur := doc.Currency
	amount := func(parent *etree.Element, tag string, v float64) {
		el := parent.CreateElement(tag)
		el.CreateAttr("currencyID", cur)
		el.SetText(money.Plain(v))
	}
	cbc := func(parent *etree.Element, tag, text string) *etree.Element {
		el := parent.CreateElement("cbc:" + tag)
		el.SetText(xmlText(text))
		return el
	}

	cbc(root, "UBLVersionID", ublVersion)
	cbc(root, "ID", doc.InvoiceNumber)
	if doc.Fingerprint != "" {
		cbc(root, "UUID", doc.Fingerprint).CreateAttr("schemeName", "SHA-384")
	}
	cbc(root, "IssueDate", doc.InvoiceDate)
	cbc(root, "InvoiceTypeCode", invoiceTypeCode)
	if doc.Notes != "" {
		cbc(root, "Note", doc.Notes)
	}
	cbc(root, "DocumentCurrencyCode", cur)
	cbc(root, "LineCountNumeric", strconv.Itoa(len(doc.Rows)))

	party(root, "cac:AccountingSupplierParty", doc.BusinessName)
	party(root, "cac:AccountingCustomerParty", doc.ClientName)

	if doc.PaymentTerms != "" {
		terms := root.CreateElement("cac:PaymentTerms")
		cbc(terms, "Note", doc.PaymentTerms)
	}

	// ── Impuestos ─────────────────────────────────────────────────────────────
	taxTotal := root.CreateElement("cac:TaxTotal")
	amount(taxTotal, "cbc:TaxAmount", doc.TaxAmount)
	sub := taxTotal.CreateElement("cac:TaxSubtotal")
	amount(sub, "cbc:TaxableAmount", doc.Subtotal)
	amount(sub, "cbc:TaxAmount", doc.TaxAmount)
	cat := sub.CreateElement("cac:TaxCategory")
	cbc(cat, "Percent", decimal.NewFromFloat(doc.TaxRate).String())

	// ── Totales ───────────────────────────────────────────────────────────────
	totals := root.CreateElement("cac:LegalMonetaryTotal")
	amount(totals, "cbc:LineExtensionAmount", doc.Subtotal)
	amount(totals, "cbc:TaxExclusiveAmount", doc.Subtotal)
	amount(totals, "cbc:TaxInclusiveAmount", doc.Total)
	amount(totals, "cbc:PayableAmount", doc.Total)

	// ── Líneas ────────────────────────────────────────────────────────────────
	for i, r := range doc.Rows {
		line := root.CreateElement("cac:InvoiceLine")
		cbc(line, "ID", strconv.Itoa(i+1))
		qty := cbc(line, "InvoicedQuantity", strconv.Itoa(r.Quantity))
		qty.CreateAttr("unitCode", unitCode)
		amount(line, "cbc:LineExtensionAmount", r.Amount)
		item := line.CreateElement("cac:Item")
		cbc(item, "Name", r.Name)
		price := line.CreateElement("cac:Price")
		amount(price, "cbc:PriceAmount", r.Price)
	}
	return tree
}

func party(root *etree.Element, tag, name string) {
	p := root.CreateElement(tag).CreateElement("cac:Party")
	p.CreateElement("cac:PartyName").CreateElement("cbc:Name").SetText(xmlText(name))
}

// xmlText descarta los caracteres que XML 1.0 no admite (controles salvo
// tab, LF y CR; sustitutos; U+FFFE/U+FFFF) en lugar de reemplazarlos por U+FFFD.
func xmlText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20, r >= 0xD800 && r <= 0xDFFF, r == 0xFFFE, r == 0xFFFF, r == utf8.RuneError:
			return -1
		}
		return r
	}, s)
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
