// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"time"

	"github.com/pterm/pterm"
)

// Logger is responsible for logging the progress of a benchmark run.
type Logger interface {
	LogRunStart(dir string, files, sizes, runCount int, backends []string)
	LogRunComplete(run *Run)
	LogRunFailed(err error)

	LogCollectStart(file, backend string)
	LogCollectComplete(file, backend string, elapsed time.Duration)

	Info(msg string, args ...any)
}

type benchLogger struct {
	logger pterm.Logger
}

type noopLogger struct{}

func NewLogger() Logger {
	return &benchLogger{logger: pterm.DefaultLogger}
}

func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (l *benchLogger) LogRunStart(dir string, files, sizes, runCount int, backends []string) {
	l.logger.Info("starting benchmark", l.logger.Args(
		"dir", dir,
		"files", files,
		"sizes", sizes,
		"runs", runCount,
		"backends", backends,
	))
}

func (l *benchLogger) LogRunComplete(run *Run) {
	l.logger.Info("benchmark complete", l.logger.Args(
		"id", run.ID.String(),
		"files", len(run.Files),
		"sizes", len(run.Sizes),
		"runs", run.RunCount,
		"elapsed", run.Elapsed.Round(time.Millisecond).String(),
	))
}

func (l *benchLogger) LogRunFailed(err error) {
	l.logger.Error("benchmark failed", l.logger.Args("error", err.Error()))
}

func (l *benchLogger) LogCollectStart(file, backend string) {
	l.logger.Debug("collecting samples", l.logger.Args("file", file, "backend", backend))
}

func (l *benchLogger) LogCollectComplete(file, backend string, elapsed time.Duration) {
	l.logger.Debug("collected samples", l.logger.Args(
		"file", file,
		"backend", backend,
		"elapsed", elapsed.Round(time.Microsecond).String(),
	))
}

func (l *benchLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, l.logger.Args(args...))
}

func (l *noopLogger) LogRunStart(dir string, files, sizes, runCount int, backends []string) {}
func (l *noopLogger) LogRunComplete(run *Run)                                             {}
func (l *noopLogger) LogRunFailed(err error)                                              {}
func (l *noopLogger) LogCollectStart(file, backend string)                                {}
func (l *noopLogger) LogCollectComplete(file, backend string, elapsed time.Duration)      {}
func (l *noopLogger) Info(msg string, args ...any)                                        {}
