package main

import (
	"os"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
	"github.com/jhoicas/invoice-generator/internal/domain/billing"
	"github.com/jhoicas/invoice-generator/internal/infrastructure/bundle"
	infrapdf "github.com/jhoicas/invoice-generator/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-generator/internal/infrastructure/web"
	"github.com/jhoicas/invoice-generator/internal/infrastructure/xmldoc"
	"github.com/jhoicas/invoice-generator/internal/interfaces/cli"
	"github.com/jhoicas/invoice-generator/pkg/config"
	"github.com/jhoicas/invoice-generator/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// La salida estándar es para el resultado; los logs van a stderr.
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   os.Stderr,
	})

	defaults := appinvoice.Defaults{
		Currency: cfg.Invoice.DefaultCurrency,
		TaxRate:  cfg.Invoice.DefaultTaxRate,
		Footer:   cfg.Invoice.Footer,
	}
	pdfExporter := infrapdf.NewExporter(cfg.Invoice.PDFEngine)
	xmlExporter := xmldoc.NewExporter()
	exportSvc := appinvoice.NewExportService(
		defaults.Footer,
		log.Zerolog(),
		pdfExporter,
		xmlExporter,
		bundle.NewZipExporter(pdfExporter, xmlExporter),
	)
	previewRenderer, err := web.NewPreviewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("plantilla de vista previa")
	}

	rootCmd := cli.NewRootCommand(cli.Deps{
		FormUC:  appinvoice.NewFormUseCase(billing.NewNumberGenerator(), defaults, exportSvc),
		Preview: previewRenderer,
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
