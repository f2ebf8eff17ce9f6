package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNumberCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "number",
		Short: "Genera un número de factura (INV-YYYYMMDD-NNNN)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), deps.FormUC.NewNumber().InvoiceNumber)
			return err
		},
	}
}
