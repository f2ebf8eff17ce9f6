// Package cli expone el formulario de factura como comandos Cobra (invoicectl).
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-generator/internal/application/dto"
	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
)

// Deps dependencias de los comandos.
type Deps struct {
	FormUC  *appinvoice.FormUseCase
	Preview interface {
		Render(p dto.PreviewResponse) ([]byte, error)
	}
}

// NewRootCommand crea el comando raíz con todos los subcomandos registrados.
func NewRootCommand(deps Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "invoicectl",
		Short: "Formulario de factura: totales, vista previa y exportación PDF/XML/ZIP",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newNumberCommand(deps))
	rootCmd.AddCommand(newCalcCommand(deps))
	rootCmd.AddCommand(newPreviewCommand(deps))
	rootCmd.AddCommand(newExportCommand(deps))

	return rootCmd
}

// readForm lee el formulario JSON desde path ("-" = stdin).
func readForm(cmd *cobra.Command, path string) (dto.InvoiceFormRequest, error) {
	var in dto.InvoiceFormRequest
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return in, fmt.Errorf("abrir formulario: %w", err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return in, fmt.Errorf("leer formulario %s: %w", path, err)
	}
	return in, nil
}

func addFormFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "file", "f", "", `archivo JSON del formulario ("-" = stdin)`)
	_ = cmd.MarkFlagRequired("file")
}
