// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"errors"
	"html"
	"strconv"
	"strings"
)

// Format selects how a report table is rendered.
type Format int

const (
	InvalidFormat Format = iota
	FormatHTML
	FormatTSV
)

var ErrInvalidFormat = errors.New("invalid report format")

// ParseFormat returns the Format named by s ("html" or "tsv").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html":
		return FormatHTML, nil
	case "tsv", "text":
		return FormatTSV, nil
	}
	return InvalidFormat, ErrInvalidFormat
}

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatTSV:
		return "tsv"
	}
	return "invalid"
}

// Extension returns the file name extension for reports in this format.
func (f Format) Extension() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatTSV:
		return "tsv"
	}
	return ""
}

type cell struct {
	text    string
	header  bool
	colspan int
	rowspan int

	// fills the column an HTML rowspan covers; not rendered in HTML
	tsvOnly bool
}

// table writes one report as either an HTML document or tab separated
// lines. Structural markup is dropped in TSV so both renderings carry the
// same cells in the same order.
type table struct {
	format Format
	b      strings.Builder
}

func newTable(format Format) (*table, error) {
	if format != FormatHTML && format != FormatTSV {
		return nil, ErrInvalidFormat
	}
	return &table{format: format}, nil
}

func (t *table) html() bool {
	return t.format == FormatHTML
}

func (t *table) document(description, style string) {
	if !t.html() {
		return
	}
	t.b.WriteString(`<!DOCTYPE html><html><head><meta charset="UTF-8">`)
	t.b.WriteString(`<meta name="description" content="` + html.EscapeString(description) + `">`)
	t.b.WriteString("<style>" + style + "</style></head><body>\n")
}

func (t *table) end() {
	t.tag("</body></html>")
}

func (t *table) heading(text string) {
	t.tag("<h3>" + html.EscapeString(text) + "</h3>")
}

func (t *table) paragraph(text string) {
	t.tag("<p>" + html.EscapeString(text) + "</p>")
}

// tag writes a line of markup, HTML only.
func (t *table) tag(s string) {
	if !t.html() {
		return
	}
	t.b.WriteString(s)
	t.b.WriteByte('\n')
}

func (t *table) row(cells []cell) {
	if t.html() {
		t.b.WriteString("<tr>")
		for _, c := range cells {
			if c.tsvOnly {
				continue
			}
			name := "td"
			if c.header {
				name = "th"
			}
			t.b.WriteString("<" + name)
			if c.rowspan > 1 {
				t.b.WriteString(` rowspan="` + strconv.Itoa(c.rowspan) + `"`)
			}
			if c.colspan > 1 {
				t.b.WriteString(` colspan="` + strconv.Itoa(c.colspan) + `"`)
			}
			t.b.WriteString(">" + html.EscapeString(c.text) + "</" + name + ">")
		}
		t.b.WriteString("</tr>\n")
		return
	}

	// Colspan padding after the last cell is dropped, empty cells are kept.
	fields := make([]string, 0, len(cells))
	padding := 0
	for _, c := range cells {
		fields = append(fields, c.text)
		padding = max(c.colspan-1, 0)
		for range padding {
			fields = append(fields, "")
		}
	}
	fields = fields[:len(fields)-padding]
	t.b.WriteString(strings.Join(fields, "\t"))
	t.b.WriteByte('\n')
}

func (t *table) String() string {
	return t.b.String()
}

// pairCells returns one cell per backend slot. Backends that did not take
// part get an empty cell and value is not called for them.
func pairCells(run *Run, value func(slot Slot) string) []cell {
	cells := make([]cell, 0, len(Slots))
	for _, slot := range Slots {
		var text string
		if run.Present(slot) {
			text = value(slot)
		}
		cells = append(cells, cell{text: text})
	}
	return cells
}

func backendHeaderCells(run *Run) []cell {
	return []cell{
		{text: run.Backends[Primary], header: true},
		{text: run.Backends[Secondary], header: true},
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func checkRun(run *Run) error {
	switch {
	case run == nil:
		return errors.New("no benchmark run to report")
	case len(run.Files) == 0 || len(run.Sizes) == 0:
		return errors.New("benchmark run has no files or sizes")
	case !run.Present(Primary):
		return errors.New("benchmark run has no primary backend timings")
	}

	for _, slot := range Slots {
		if !run.Present(slot) {
			continue
		}
		files, sizes, runs := run.Times[slot].Dims()
		mf, ms := run.Stats[slot].Dims()
		if files != len(run.Files) || sizes != len(run.Sizes) || runs != run.RunCount || mf != files || ms != sizes {
			return errors.New("benchmark run timings do not match its files, sizes and run count")
		}
	}
	return nil
}
