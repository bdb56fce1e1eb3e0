// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xataio/svgbench/cmd/flags"
	"github.com/xataio/svgbench/internal/metrics"
	"github.com/xataio/svgbench/pkg/bench"
	"github.com/xataio/svgbench/pkg/plan"
	"github.com/xataio/svgbench/pkg/raster"
	"github.com/xataio/svgbench/pkg/report"
)

type outputs struct {
	dir          string
	chart        bool
	exportFormat string
	metricsFile  string
}

func runCmd() *cobra.Command {
	var files []string
	var planFile string
	var interactive bool
	var out outputs

	runCmd := &cobra.Command{
		Use:     "run [dir]",
		Short:   "Benchmark the rasterization of the SVG files in a folder",
		Example: "run icons --sizes 16,32,48x48 --runs 50",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive && planFile != "" {
				return errInteractiveWithPlan
			}

			settings, err := resolveSettings(args, files, planFile, interactive)
			if err != nil {
				return err
			}

			set, err := openBackends(settings.Secondary)
			if err != nil {
				return err
			}
			defer set.Close()

			out.dir = flags.OutputDir()
			return runBenchmark(settings, set, out)
		},
	}

	runCmd.Flags().StringSliceVar(&files, "files", nil, "SVG files of the folder to benchmark, all of them by default")
	runCmd.Flags().StringSlice("sizes", plan.SizeStrings(plan.DefaultSelection), "Bitmap sizes, as N or WxH")
	runCmd.Flags().Int("runs", plan.DefaultRuns, fmt.Sprintf("Number of times each file is rasterized at each size (%d-%d)", plan.MinRuns, plan.MaxRuns))
	runCmd.Flags().StringVar(&planFile, "plan", "", "Read files, sizes and runs from a plan file")
	runCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose files, sizes and runs interactively")
	runCmd.Flags().Bool("no-surface", false, "Only benchmark the portable backend")
	runCmd.Flags().StringP("output-dir", "o", ".", "Folder the reports are written to")
	runCmd.Flags().String("detailed-format", "html", "Format of the detailed report: html or tsv")
	runCmd.Flags().BoolVar(&out.chart, "chart", false, "Also write a chart of the medians")
	runCmd.Flags().StringVar(&out.exportFormat, "export", "", "Also export the raw samples: yaml or json")
	runCmd.Flags().StringVar(&out.metricsFile, "metrics-file", "", "Write Prometheus metrics of the samples to this file")

	viper.BindPFlag("SIZES", runCmd.Flags().Lookup("sizes"))
	viper.BindPFlag("RUNS", runCmd.Flags().Lookup("runs"))
	viper.BindPFlag("NO_SURFACE", runCmd.Flags().Lookup("no-surface"))
	viper.BindPFlag("OUTPUT_DIR", runCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("DETAILED_FORMAT", runCmd.Flags().Lookup("detailed-format"))

	return runCmd
}

// resolveSettings builds the benchmark inputs from a plan file, the command
// line or interactive prompts.
func resolveSettings(args, files []string, planFile string, interactive bool) (*plan.Settings, error) {
	var p *plan.Plan
	if planFile != "" {
		var err error
		if p, err = plan.Load(planFile); err != nil {
			return nil, err
		}
		if len(args) == 1 {
			p.Dir = args[0]
		}
	} else {
		p = &plan.Plan{
			Dir:            ".",
			Files:          files,
			Runs:           flags.Runs(),
			DetailedFormat: flags.DetailedFormat(),
		}
		if len(args) == 1 {
			p.Dir = args[0]
		}
		for _, s := range flags.Sizes() {
			p.Sizes = append(p.Sizes, plan.SizeValue(s))
		}
	}

	if flags.NoSurface() {
		secondary := false
		p.Secondary = &secondary
	}

	settings, err := p.Resolve(os.DirFS(p.Dir))
	if err != nil {
		return nil, err
	}

	if interactive {
		if err := promptSettings(settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

func promptSettings(settings *plan.Settings) error {
	var err error
	if settings.Files, err = plan.PromptFiles(settings.Files); err != nil {
		return err
	}
	if settings.Sizes, err = plan.PromptSizes(); err != nil {
		return err
	}
	if settings.Runs, err = plan.PromptRuns(); err != nil {
		return err
	}
	if settings.Secondary && !flags.NoSurface() {
		if settings.Secondary, err = plan.PromptSecondary(raster.SurfaceName); err != nil {
			return err
		}
	}
	return nil
}

func runBenchmark(settings *plan.Settings, set *backendSet, out outputs) error {
	secondary, hasSecondBackend := set.secondary()
	if settings.Secondary && set.surfaceErr != nil {
		pterm.Warning.Printfln("%s backend unavailable, benchmarking %s only: %s", raster.SurfaceName, raster.PortableName, set.surfaceErr)
	}
	if hasSecondBackend {
		for _, size := range settings.Sizes {
			if !size.Fits(secondary.MaxSize()) {
				pterm.Warning.Printfln("%s exceeds the %s surface, benchmarking %s only", size, secondary.MaxSize(), raster.PortableName)
				hasSecondBackend = false
				break
			}
		}
	}

	recorder := metrics.NewRecorder()

	sp, _ := pterm.DefaultSpinner.WithText("Benchmarking...").Start()
	opts := []bench.Option{
		bench.WithLogger(bench.NewLogger()),
		bench.WithDetailedFormat(settings.DetailedFormat),
		bench.WithCollectOptions(bench.WithObserver(recorder)),
		bench.WithProgress(func(done, total int) {
			percent := float64(done) / float64(total) * 100
			sp.UpdateText(fmt.Sprintf("%d of %d collections complete... (%.2f%%)", done, total, percent))
		}),
	}
	if hasSecondBackend {
		opts = append(opts, bench.WithSecondaryBackend(secondary))
	}

	runner := bench.NewRunner(set.portable, opts...)
	runner.Setup(settings.Dir, settings.Files, settings.Sizes)

	reports, err := runner.Run(hasSecondBackend, settings.Runs)
	if err != nil {
		sp.Fail(fmt.Sprintf("Benchmark failed: %s", err))
		return err
	}
	sp.Success(fmt.Sprintf("Benchmarked %d files at %d sizes in %s", len(settings.Files), len(settings.Sizes), reports.Run.Elapsed.Round(time.Millisecond)))

	table, err := report.SummaryTable(reports.Run)
	if err != nil {
		return err
	}
	pterm.Println(table)

	return writeOutputs(reports, settings, recorder, out)
}

func writeOutputs(reports *bench.Reports, settings *plan.Settings, recorder *metrics.Recorder, out outputs) error {
	run := reports.Run
	summaryPath := filepath.Join(out.dir, report.SummaryFileName(run.Dir))
	detailedPath := filepath.Join(out.dir, report.DetailedFileName(run.Dir, settings.DetailedFormat))

	err := errors.Join(
		report.WriteFile(summaryPath, reports.Summary),
		report.WriteFile(detailedPath, reports.Detailed),
	)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Reports written to %q and %q", summaryPath, detailedPath)

	if out.chart {
		path := filepath.Join(out.dir, report.ChartFileName(run.Dir))
		if err := writeWith(path, func(f *os.File) error { return report.RenderChart(f, run) }); err != nil {
			return err
		}
		pterm.Info.Printfln("Chart written to %q", path)
	}

	if out.exportFormat != "" {
		format, err := report.ParseExportFormat(out.exportFormat)
		if err != nil {
			return err
		}
		path := filepath.Join(out.dir, report.ExportFileName(run.Dir, format))
		if err := writeWith(path, func(f *os.File) error { return report.Export(f, run, format) }); err != nil {
			return err
		}
		pterm.Info.Printfln("Samples exported to %q", path)
	}

	if out.metricsFile != "" {
		if err := recorder.WriteTextfile(out.metricsFile); err != nil {
			return report.ReportWriteError{Path: out.metricsFile, Err: err}
		}
	}
	return nil
}

func writeWith(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return report.ReportWriteError{Path: path, Err: err}
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return report.ReportWriteError{Path: path, Err: err}
	}
	return nil
}
