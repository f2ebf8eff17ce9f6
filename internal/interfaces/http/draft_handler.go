package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-generator/internal/application/dto"
	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
)

// DraftHandler endpoints del formulario con estado. Cada mutación responde con
// el formulario, los totales y la vista previa recalculados.
type DraftHandler struct {
	uc      *appinvoice.DraftUseCase
	preview previewRenderer
	log     zerolog.Logger
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *appinvoice.DraftUseCase, preview previewRenderer, log zerolog.Logger) *DraftHandler {
	return &DraftHandler{uc: uc, preview: preview, log: log}
}

// Create abre un borrador con una fila por defecto.
// POST /api/drafts
func (h *DraftHandler) Create(c *fiber.Ctx) error {
	d, err := h.uc.Create(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(d)
}

// Get estado del borrador.
// GET /api/drafts/:id
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	d, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(d)
}

// Update aplica los campos presentes de la cabecera.
// PATCH /api/drafts/:id
func (h *DraftHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	d, err := h.uc.UpdateMeta(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(d)
}

// Delete descarta el borrador.
// DELETE /api/drafts/:id
func (h *DraftHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddItem agrega una fila por defecto.
// POST /api/drafts/:id/items
func (h *DraftHandler) AddItem(c *fiber.Ctx) error {
	d, err := h.uc.AddItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(d)
}

// UpdateItem reemplaza la fila :index.
// PUT /api/drafts/:id/items/:index
func (h *DraftHandler) UpdateItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return invalidIndex(c)
	}
	var in dto.LineItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	d, err := h.uc.UpdateItem(c.UserContext(), c.Params("id"), index, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(d)
}

// RemoveItem quita la fila :index.
// DELETE /api/drafts/:id/items/:index
func (h *DraftHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return invalidIndex(c)
	}
	d, err := h.uc.RemoveItem(c.UserContext(), c.Params("id"), index)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(d)
}

// Preview fragmento HTML de la vista previa (JSON con ?format=json).
// GET /api/drafts/:id/preview
func (h *DraftHandler) Preview(c *fiber.Ctx) error {
	p, err := h.uc.Preview(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	if c.Query("format") == "json" {
		return c.JSON(p)
	}
	html, err := h.preview.Render(*p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Type("html", "utf-8")
	return c.Send(html)
}

// Generate valida el borrador y devuelve su estado; 422 con el campo a enfocar si falla.
// POST /api/drafts/:id/generate
func (h *DraftHandler) Generate(c *fiber.Ctx) error {
	d, err := h.uc.Generate(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(d)
}

// Export valida el borrador y descarga el documento.
// GET /api/drafts/:id/export?format=pdf|xml|zip
func (h *DraftHandler) Export(c *fiber.Ctx) error {
	res, err := h.uc.Export(c.UserContext(), c.Params("id"), c.Query("format"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendDownload(c, res)
}

func invalidIndex(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "índice de fila inválido"})
}
