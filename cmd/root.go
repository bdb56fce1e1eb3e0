// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xataio/svgbench/cmd/flags"
	"github.com/xataio/svgbench/pkg/raster"
)

// Version is the svgbench version, set at build time.
var Version = "development"

var logLevels = map[string]pterm.LogLevel{
	"debug": pterm.LogLevelDebug,
	"info":  pterm.LogLevelInfo,
	"warn":  pterm.LogLevelWarn,
	"error": pterm.LogLevelError,
}

func Prepare() *cobra.Command {
	viper.SetEnvPrefix("SVGBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "svgbench",
		Short:        "Benchmark SVG rasterization backends",
		SilenceUsage: true,
		Version:      Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setLogLevel(flags.LogLevel())
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("surface-size", raster.DefaultSurfaceSize.String(), "Size of the off-screen surface shared by the surface backend")

	viper.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("SURFACE_SIZE", rootCmd.PersistentFlags().Lookup("surface-size"))

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(backendsCmd())
	rootCmd.AddCommand(sizesCmd())
	rootCmd.AddCommand(validateCmd())

	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	cmd := Prepare()
	return cmd.Execute()
}

func setLogLevel(name string) error {
	level, ok := logLevels[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown log level %q", name)
	}
	pterm.DefaultLogger.Level = level
	if level == pterm.LogLevelDebug {
		pterm.EnableDebugMessages()
	}
	return nil
}
