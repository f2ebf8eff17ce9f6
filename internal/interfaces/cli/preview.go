package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-generator/internal/domain"
)

func newPreviewCommand(deps Deps) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Valida un formulario e imprime su vista previa HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := readForm(cmd, file)
			if err != nil {
				return err
			}
			if err := deps.FormUC.Validate(in); err != nil {
				return describe(err)
			}
			html, err := deps.Preview.Render(deps.FormUC.Preview(in))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(html)
			return err
		},
	}

	addFormFlag(cmd, &file)

	return cmd
}

// describe antepone el campo a los errores de validación.
func describe(err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("%s: %w", verr.Field, err)
	}
	return err
}
