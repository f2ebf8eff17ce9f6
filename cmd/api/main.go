package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
	"github.com/jhoicas/invoice-generator/internal/domain/billing"
	"github.com/jhoicas/invoice-generator/internal/infrastructure/bundle"
	"github.com/jhoicas/invoice-generator/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/invoice-generator/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-generator/internal/infrastructure/web"
	"github.com/jhoicas/invoice-generator/internal/infrastructure/xmldoc"
	httpRouter "github.com/jhoicas/invoice-generator/internal/interfaces/http"
	"github.com/jhoicas/invoice-generator/pkg/config"
	"github.com/jhoicas/invoice-generator/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("pdf_engine", cfg.Invoice.PDFEngine).
		Msg("iniciando aplicación")

	defaults := appinvoice.Defaults{
		Currency: cfg.Invoice.DefaultCurrency,
		TaxRate:  cfg.Invoice.DefaultTaxRate,
		Footer:   cfg.Invoice.Footer,
	}
	numbers := billing.NewNumberGenerator()

	// Exportadores: PDF (motor configurable), XML UBL canonicalizado y ZIP con ambos
	pdfExporter := infrapdf.NewExporter(cfg.Invoice.PDFEngine)
	xmlExporter := xmldoc.NewExporter()
	exportSvc := appinvoice.NewExportService(
		defaults.Footer,
		log.Zerolog(),
		pdfExporter,
		xmlExporter,
		bundle.NewZipExporter(pdfExporter, xmlExporter),
	)

	draftRepo := memory.NewDraftRepository(time.Duration(cfg.Draft.TTLMinutes) * time.Minute)
	formUC := appinvoice.NewFormUseCase(numbers, defaults, exportSvc)
	draftUC := appinvoice.NewDraftUseCase(draftRepo, numbers, defaults, exportSvc, log.Zerolog())

	previewRenderer, err := web.NewPreviewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("plantilla de vista previa")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Immutable:    true, // los borradores guardan textos del body
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Invoice Generator API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		FormUC:  formUC,
		DraftUC: draftUC,
		Preview: previewRenderer,
		Log:     log.Zerolog(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
