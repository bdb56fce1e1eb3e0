// SPDX-License-Identifier: Apache-2.0

package benchmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Reports is one line of the benchmark results file: every result of a
// single commit.
type Reports struct {
	GitSHA    string
	GoVersion string
	Timestamp int64
	Reports   []Report
}

type Report struct {
	Name            string
	Backend         string
	Size            string
	MicrosPerBitmap float64
}

type ReportRecorder struct {
	mu      sync.Mutex
	reports Reports
}

func newReportRecorder(goVersion string) *ReportRecorder {
	return &ReportRecorder{
		reports: Reports{
			GitSHA:    os.Getenv("GITHUB_SHA"),
			GoVersion: goVersion,
			Timestamp: time.Now().Unix(),
			Reports:   []Report{},
		},
	}
}

func (r *ReportRecorder) AddReport(report Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports.Reports = append(r.reports.Reports, report)
}

// Append adds the recorded reports as one JSON line to the file at path.
func (r *ReportRecorder) Append(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, err := json.Marshal(r.reports)
	if err != nil {
		return fmt.Errorf("marshalling reports: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening results file: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("writing results: %w", err)
	}
	return f.Close()
}
