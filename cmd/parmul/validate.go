// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/parmul/matmul"
)

func newValidateCmd() *cobra.Command {
	in := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a chain can be multiplied without computing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, err := in.load()
			if err != nil {
				return err
			}
			shapes := make([]string, len(ms))
			for i, m := range ms {
				shapes[i] = shapeOf(m)
			}
			if !matmul.Validate(ms...) {
				return fmt.Errorf("%s: %w", strings.Join(shapes, " · "), matmul.ErrShapeMismatch)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", strings.Join(shapes, " · "))

			return err
		},
	}
	cmd.Flags().StringVarP(&in.path, "input", "i", "", "YAML or JSON file with a matrices: list")
	cmd.Flags().StringArrayVarP(&in.shapes, "shape", "s", nil, "matrix shape RxC (repeatable)")

	return cmd
}
