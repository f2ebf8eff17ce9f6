package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newCalcCommand(deps Deps) *cobra.Command {
	var file string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Muestra subtotal, impuesto y total de un formulario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := readForm(cmd, file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(deps.FormUC.Calculate(in))
			}
			p := deps.FormUC.Preview(in)
			_, err = fmt.Fprintf(out, "Subtotal: %s\n%s %s\nTotal: %s\n", p.Subtotal, p.TaxLabel, p.Tax, p.Total)
			return err
		},
	}

	addFormFlag(cmd, &file)
	cmd.Flags().BoolVar(&asJSON, "json", false, "totales crudos y formateados en JSON")

	return cmd
}
