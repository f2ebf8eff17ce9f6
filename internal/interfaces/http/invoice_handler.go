package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-generator/internal/application/dto"
	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
	"github.com/jhoicas/invoice-generator/internal/domain"
	"github.com/jhoicas/invoice-generator/pkg/money"
)

// previewRenderer es el contrato mínimo para devolver la vista previa como HTML.
// Lo implementa *web.PreviewRenderer.
type previewRenderer interface {
	Render(p dto.PreviewResponse) ([]byte, error)
}

// InvoiceHandler endpoints sin estado: cada petición trae el formulario completo.
type InvoiceHandler struct {
	uc      *appinvoice.FormUseCase
	preview previewRenderer
	log     zerolog.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *appinvoice.FormUseCase, preview previewRenderer, log zerolog.Logger) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, preview: preview, log: log}
}

// Currencies catálogo fijo de monedas y símbolos.
// GET /api/currencies
func (h *InvoiceHandler) Currencies(c *fiber.Ctx) error {
	return c.JSON(money.Currencies())
}

// Formats formatos de exportación disponibles.
// GET /api/invoices/formats
func (h *InvoiceHandler) Formats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"formats": h.uc.Formats()})
}

// NewNumber número de factura y fecha de hoy para un formulario nuevo.
// GET /api/invoices/number
func (h *InvoiceHandler) NewNumber(c *fiber.Ctx) error {
	return c.JSON(h.uc.NewNumber())
}

// Calculate totales del formulario.
// POST /api/invoices/calculate
func (h *InvoiceHandler) Calculate(c *fiber.Ctx) error {
	var in dto.InvoiceFormRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.Calculate(in))
}

// Preview vista previa en JSON, o fragmento HTML con ?format=html.
// POST /api/invoices/preview
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.InvoiceFormRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendPreview(c, h.preview, h.log, h.uc.Preview(in))
}

// Validate informa si el formulario puede generarse; 422 con el campo a enfocar si no.
// POST /api/invoices/validate
func (h *InvoiceHandler) Validate(c *fiber.Ctx) error {
	var in dto.InvoiceFormRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Validate(in); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationResponse{Valid: false, Field: verr.Field, Message: verr.Message})
		}
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ValidationResponse{Valid: true})
}

// Export valida y descarga el documento.
// POST /api/invoices/export?format=pdf|xml|zip
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	var in dto.InvoiceFormRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.uc.Export(c.UserContext(), in, c.Query("format"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendDownload(c, res)
}

// ── helpers compartidos ───────────────────────────────────────────────────────

func sendPreview(c *fiber.Ctx, r previewRenderer, log zerolog.Logger, p dto.PreviewResponse) error {
	if !strings.EqualFold(c.Query("format"), "html") {
		return c.JSON(p)
	}
	html, err := r.Render(p)
	if err != nil {
		return writeError(c, log, err)
	}
	c.Type("html", "utf-8")
	return c.Send(html)
}

func sendDownload(c *fiber.Ctx, res *appinvoice.ExportResult) error {
	c.Attachment(res.Filename)
	c.Set(fiber.HeaderContentType, res.ContentType)
	return c.Send(res.Content)
}
