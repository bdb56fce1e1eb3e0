// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/xataio/svgbench/pkg/bench"
	"github.com/xataio/svgbench/pkg/raster"
)

type ExportFormat int

const (
	InvalidExportFormat ExportFormat = iota
	YAMLExportFormat
	JSONExportFormat
)

// ParseExportFormat returns the ExportFormat named by s ("yaml" or "json").
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return YAMLExportFormat, nil
	case "json":
		return JSONExportFormat, nil
	}
	return InvalidExportFormat, ErrInvalidExportFormat
}

// Extension returns the extension name for the export file
func (f ExportFormat) Extension() string {
	switch f {
	case YAMLExportFormat:
		return "yaml"
	case JSONExportFormat:
		return "json"
	}
	return ""
}

// ExportFileName returns the file name of the export of a run over dir.
func ExportFileName(dir string, f ExportFormat) string {
	return fmt.Sprintf("svgbench - %s.%s", folderName(dir), f.Extension())
}

// Document is the machine readable form of a run.
type Document struct {
	ID       string          `json:"id"`
	Dir      string          `json:"dir"`
	Started  time.Time       `json:"started"`
	Elapsed  string          `json:"elapsed"`
	Runs     int             `json:"runs"`
	Sizes    []raster.Size   `json:"sizes"`
	Backends []BackendResult `json:"backends"`
}

type BackendResult struct {
	Name  string       `json:"name"`
	Files []FileResult `json:"files"`
}

type FileResult struct {
	File  string       `json:"file"`
	Sizes []CellResult `json:"sizes"`
}

type CellResult struct {
	Size    string      `json:"size"`
	Samples []int64     `json:"samples"`
	Stats   bench.Stats `json:"stats"`
}

// NewDocument converts run into its exported form. Backends that did not
// take part are omitted.
func NewDocument(run *bench.Run) *Document {
	doc := &Document{
		ID:      run.ID.String(),
		Dir:     run.Dir,
		Started: run.Started,
		Elapsed: run.Elapsed.String(),
		Runs:    run.RunCount,
		Sizes:   run.Sizes,
	}

	for _, slot := range bench.Slots {
		if !run.Present(slot) {
			continue
		}
		result := BackendResult{Name: run.Backends[slot]}
		for f, file := range run.Files {
			fr := FileResult{File: file}
			for s, size := range run.Sizes {
				fr.Sizes = append(fr.Sizes, CellResult{
					Size:    size.String(),
					Samples: run.Times[slot].Samples(f, s),
					Stats:   run.Stats[slot].At(f, s),
				})
			}
			result.Files = append(result.Files, fr)
		}
		doc.Backends = append(doc.Backends, result)
	}
	return doc
}

// Export writes run to w as YAML or JSON.
func Export(w io.Writer, run *bench.Run, f ExportFormat) error {
	doc := NewDocument(run)

	switch f {
	case YAMLExportFormat:
		yml, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode yaml export: %w", err)
		}
		if _, err := w.Write(yml); err != nil {
			return fmt.Errorf("write yaml export: %w", err)
		}
		return nil
	case JSONExportFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json export: %w", err)
		}
		return nil
	}
	return ErrInvalidExportFormat
}
