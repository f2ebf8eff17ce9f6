package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	appinvoice "github.com/jhoicas/invoice-generator/internal/application/invoice"
)

func newExportCommand(deps Deps) *cobra.Command {
	var file, format, outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Valida un formulario y escribe Invoice-<número>.<ext>",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := readForm(cmd, file)
			if err != nil {
				return err
			}
			res, err := deps.FormUC.Export(cmd.Context(), in, format)
			if err != nil {
				return describe(err)
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("crear directorio de salida: %w", err)
			}
			path := filepath.Join(outDir, res.Filename)
			if err := os.WriteFile(path, res.Content, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", path, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	addFormFlag(cmd, &file)
	cmd.Flags().StringVar(&format, "format", appinvoice.DefaultFormat, "formato de exportación (pdf|xml|zip)")
	cmd.Flags().StringVar(&outDir, "out", ".", "directorio de salida")

	return cmd
}
