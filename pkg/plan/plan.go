// SPDX-License-Identifier: Apache-2.0

package plan

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"sigs.k8s.io/yaml"

	"github.com/xataio/svgbench/pkg/bench"
	"github.com/xataio/svgbench/pkg/raster"
)

const (
	MinRuns     = 10
	MaxRuns     = 100
	DefaultRuns = 25
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://raw.githubusercontent.com/xataio/svgbench/main/schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
})

// SchemaJSON returns the JSON schema plan files are validated against.
func SchemaJSON() []byte {
	return bytes.Clone(schemaJSON)
}

// SizeValue is a size as written in a plan file, either a bare number or a
// "WxH" string.
type SizeValue string

func (v *SizeValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = SizeValue(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("size must be a number or a WxH string: %w", err)
	}
	*v = SizeValue(strconv.Itoa(n))
	return nil
}

// Plan describes a benchmark run as read from a plan file.
type Plan struct {
	Dir            string      `json:"dir"`
	Files          []string    `json:"files,omitempty"`
	Sizes          []SizeValue `json:"sizes,omitempty"`
	Runs           int         `json:"runs,omitempty"`
	Secondary      *bool       `json:"secondary,omitempty"`
	DetailedFormat string      `json:"detailedFormat,omitempty"`
}

// Settings are the fully resolved inputs of a benchmark run.
type Settings struct {
	Dir            string
	Files          []string
	Sizes          []raster.Size
	Runs           int
	Secondary      bool
	DetailedFormat bench.Format
}

// Load reads and validates the plan file at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return Parse(data)
}

// Parse validates a YAML or JSON plan against the plan schema and decodes it.
func Parse(data []byte) (*Plan, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, InvalidPlanError{Reason: err.Error()}
	}

	if err := Validate(jsonData); err != nil {
		return nil, err
	}

	var p Plan
	if err := json.Unmarshal(jsonData, &p); err != nil {
		return nil, InvalidPlanError{Reason: err.Error()}
	}
	return &p, nil
}

// Validate checks a JSON document against the plan schema.
func Validate(jsonData []byte) error {
	sch, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile plan schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return InvalidPlanError{Reason: err.Error()}
	}
	if err := sch.Validate(doc); err != nil {
		return InvalidPlanError{Reason: err.Error()}
	}
	return nil
}

// CheckRuns verifies that runs is within [MinRuns, MaxRuns].
func CheckRuns(runs int) error {
	if runs < MinRuns || runs > MaxRuns {
		return InvalidPlanError{Reason: fmt.Sprintf("runs must be between %d and %d, got %d", MinRuns, MaxRuns, runs)}
	}
	return nil
}

// Resolve fills in the defaults of p and checks its files against fsys,
// the folder named by p.Dir.
func (p *Plan) Resolve(fsys fs.FS) (*Settings, error) {
	all, err := Discover(fsys)
	if err != nil {
		return nil, err
	}
	files, err := SelectFiles(all, p.Files)
	if err != nil {
		return nil, err
	}

	sizes := slices.Clone(DefaultSelection)
	if len(p.Sizes) > 0 {
		values := make([]string, len(p.Sizes))
		for i, v := range p.Sizes {
			values[i] = string(v)
		}
		if sizes, err = ParseSizes(values); err != nil {
			return nil, err
		}
	}

	runs := p.Runs
	if runs == 0 {
		runs = DefaultRuns
	}
	if err := CheckRuns(runs); err != nil {
		return nil, err
	}

	format := bench.FormatHTML
	if p.DetailedFormat != "" {
		if format, err = bench.ParseFormat(p.DetailedFormat); err != nil {
			return nil, InvalidPlanError{Reason: err.Error()}
		}
	}

	secondary := true
	if p.Secondary != nil {
		secondary = *p.Secondary
	}

	return &Settings{
		Dir:            p.Dir,
		Files:          files,
		Sizes:          sizes,
		Runs:           runs,
		Secondary:      secondary,
		DetailedFormat: format,
	}, nil
}
