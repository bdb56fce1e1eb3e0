// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/xataio/svgbench/pkg/plan"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "validate <file>",
		Short:     "Validate a benchmark plan file",
		Example:   "validate plans/icons.yaml",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"file"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fileName := args[0]

			if _, err := plan.Load(fileName); err != nil {
				return err
			}
			pterm.Success.Printfln("%s is a valid benchmark plan", fileName)
			return nil
		},
	}
}
