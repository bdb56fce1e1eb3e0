// SPDX-License-Identifier: Apache-2.0

package flags

import (
	"github.com/spf13/viper"
)

func LogLevel() string {
	return viper.GetString("LOG_LEVEL")
}

func SurfaceSize() string {
	return viper.GetString("SURFACE_SIZE")
}

func Sizes() []string {
	return viper.GetStringSlice("SIZES")
}

func Runs() int {
	return viper.GetInt("RUNS")
}

func NoSurface() bool {
	return viper.GetBool("NO_SURFACE")
}

func OutputDir() string {
	return viper.GetString("OUTPUT_DIR")
}

func DetailedFormat() string {
	return viper.GetString("DETAILED_FORMAT")
}
