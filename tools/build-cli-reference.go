// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/xataio/svgbench/cmd"
)

const envPrefix = "SVGBENCH_"

// Generates cli-reference.md, the Markdown reference of every svgbench
// command, its flags and the environment variables that override them.
func main() {
	fmt.Println("Generating CLI reference...")

	rootCmd := cmd.Prepare()
	boundKeys := viper.AllKeys()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", rootCmd.Name(), rootCmd.Short)
	writeFlags(&b, "Global flags", rootCmd.PersistentFlags(), boundKeys)

	for _, c := range rootCmd.Commands() {
		if c.Hidden || c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		writeCommand(&b, c, boundKeys)
	}

	if err := os.WriteFile("cli-reference.md", []byte(b.String()), 0o644); err != nil {
		log.Fatalf("failed to write CLI reference: %v", err)
	}

	fmt.Println("CLI reference generated successfully")
}

func writeCommand(b *strings.Builder, c *cobra.Command, boundKeys []string) {
	fmt.Fprintf(b, "## %s\n\n%s\n\n", c.CommandPath(), c.Short)
	fmt.Fprintf(b, "```\n%s\n```\n\n", c.UseLine())
	if c.Example != "" {
		fmt.Fprintf(b, "Example:\n\n```\n%s %s\n```\n\n", c.Root().Name(), c.Example)
	}
	writeFlags(b, "Flags", c.LocalNonPersistentFlags(), boundKeys)
}

func writeFlags(b *strings.Builder, title string, flagSet *pflag.FlagSet, boundKeys []string) {
	if !flagSet.HasAvailableFlags() {
		return
	}

	fmt.Fprintf(b, "### %s\n\n", title)
	b.WriteString("| Flag | Default | Environment | Description |\n")
	b.WriteString("|---|---|---|---|\n")

	flagSet.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}

		name := "`--" + flag.Name + "`"
		if flag.Shorthand != "" {
			name = "`-" + flag.Shorthand + "`, " + name
		}

		var env string
		key := strings.ReplaceAll(flag.Name, "-", "_")
		if slices.Contains(boundKeys, key) {
			env = "`" + envPrefix + strings.ToUpper(key) + "`"
		}

		fmt.Fprintf(b, "| %s | `%s` | %s | %s |\n", name, flag.DefValue, env, flag.Usage)
	})
	b.WriteString("\n")
}
