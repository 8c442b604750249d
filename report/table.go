// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report prints benchmark results as a reStructuredText simple
// table.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// Table is a plain-text table whose columns are sized to their widest cell.
type Table struct {
	Header []string

	// Rows hold strings and numbers; every row has len(Header) cells.
	Rows [][]interface{}

	// Formats holds a printf verb without the leading '%' for each column,
	// e.g. ".1f". Empty means the default for the cell's type.
	Formats []string
}

// FormatField formats field padded to width runes. Strings are left-aligned
// and numbers right-aligned.
func FormatField(field interface{}, format string, width int) string {
	switch v := field.(type) {
	case string:
		if n := utf8.RuneCountInString(v); n < width {
			return v + strings.Repeat(" ", width-n)
		}
		return v
	case int, int64, uint64:
		if format == "" {
			format = "d"
		}
		return fmt.Sprintf("%*"+format, width, v)
	case float64:
		if format == "" {
			format = "g"
		}
		return fmt.Sprintf("%*"+format, width, v)
	}
	return FormatField(fmt.Sprint(field), "", width)
}

func (t *Table) format(col int) string {
	if col < len(t.Formats) {
		return t.Formats[col]
	}
	return ""
}

// Widths returns the width of each column: the widest of its header and
// its formatted cells.
func (t *Table) Widths() []int {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if n := utf8.RuneCountInString(FormatField(row[i], t.format(i), 0)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func writeRulers(b *strings.Builder, widths []int) {
	for _, w := range widths {
		b.WriteString(strings.Repeat("=", w))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
}

// Write prints the table: a ruler, the header, a ruler, the body and a
// closing ruler. Every cell is followed by a single space.
func (t *Table) Write(w io.Writer) error {
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("row %d has %d cells, header has %d", i, len(row), len(t.Header))
		}
	}
	widths := t.Widths()
	var b strings.Builder
	writeRulers(&b, widths)
	for i, h := range t.Header {
		b.WriteString(FormatField(h, "", widths[i]))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	writeRulers(&b, widths)
	for _, row := range t.Rows {
		for i, cell := range row {
			b.WriteString(FormatField(cell, t.format(i), widths[i]))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	writeRulers(&b, widths)
	_, err := io.WriteString(w, b.String())
	return err
}

// ToKiB converts n bytes to kibibytes, rounding halves away from zero.
func ToKiB(n int64) int64 {
	return int64(math.Round(float64(n) / 1024))
}

// Measurement is the final result for one method.
type Measurement struct {
	Method       string
	Time         time.Duration
	Size         int64
	StrippedSize int64
}

// Comparison builds the results table, one row per measurement in order.
func Comparison(ms []Measurement) *Table {
	t := &Table{
		Header:  []string{"Method", "Compile Time, s", "Executable size, KiB", "Stripped size, KiB"},
		Formats: []string{"", ".1f", "", ""},
	}
	for _, m := range ms {
		t.Rows = append(t.Rows, []interface{}{m.Method, m.Time.Seconds(), ToKiB(m.Size), ToKiB(m.StrippedSize)})
	}
	return t
}
