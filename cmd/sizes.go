// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/xataio/svgbench/pkg/plan"
)

func sizesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "List the standard bitmap sizes, marking the default selection",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, size := range plan.StandardSizes {
				marker := " "
				if slices.Contains(plan.DefaultSelection, size) {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, size)
			}
		},
	}
}
