package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FormUC  *appinvoice.FormUseCase
	DraftUC *appinvoice.DraftUseCase
	Preview previewRenderer
	Log     zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestID(), AccessLog(deps.Log))

	// Formulario sin estado
	invoiceHandler := NewInvoiceHandler(deps.FormUC, deps.Preview, deps.Log)
	api.Get("/currencies", invoiceHandler.Currencies)

	invoices := api.Group("/invoices")
	invoices.Get("/number", invoiceHandler.NewNumber)
	invoices.Get("/formats", invoiceHandler.Formats)
	invoices.Post("/calculate", invoiceHandler.Calculate)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Post("/validate", invoiceHandler.Validate)
	invoices.Post("/export", invoiceHandler.Export)

	// Borradores (formulario con estado en memoria)
	drafts := api.Group("/drafts")
	draftHandler := NewDraftHandler(deps.DraftUC, deps.Preview, deps.Log)
	drafts.Post("/", draftHandler.Create)
	drafts.Get("/:id", draftHandler.Get)
	drafts.Patch("/:id", draftHandler.Update)
	drafts.Delete("/:id", draftHandler.Delete)
	drafts.Post("/:id/items", draftHandler.AddItem)
	drafts.Put("/:id/items/:index", draftHandler.UpdateItem)
	drafts.Delete("/:id/items/:index", draftHandler.RemoveItem)
	drafts.Get("/:id/preview", draftHandler.Preview)
	drafts.Post("/:id/generate", draftHandler.Generate)
	drafts.Get("/:id/export", draftHandler.Export)
}
