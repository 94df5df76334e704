// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simstat

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// FormatText appends a fixed-width text formatting of the tables to
// buf.
func FormatText(buf *bytes.Buffer, tables []*Table) {
	if len(tables) == 0 {
		return
	}
	fmt.Fprintf(buf, "Performance analysis: %s vs %s\n", tables[0].Y, tables[0].X)

	for _, t := range tables {
		rows := toRows(t)

		var max []int
		for _, row := range rows {
			for len(max) < len(row) {
				max = append(max, 0)
			}
			for i, s := range row {
				if n := utf8.RuneCountInString(s); max[i] < n {
					max[i] = n
				}
			}
		}

		fmt.Fprintf(buf, "\n%s\n", strings.ToUpper(t.Application))
		for _, row := range rows {
			for i, s := range row {
				if i == 0 {
					fmt.Fprintf(buf, "%-*s", max[i], s)
					continue
				}
				fmt.Fprintf(buf, "  %*s", max[i], s)
			}
			fmt.Fprintf(buf, "\n")
		}
	}
}

// toRows converts a Table to a textual grid of cells: a heading row
// followed by one row per category.
func toRows(t *Table) [][]string {
	rows := [][]string{{t.X, "mean", "min", "max", "count"}}
	for _, g := range t.Groups {
		rows = append(rows, []string{
			g.Label,
			formatValue(g.Summary.Mean),
			formatValue(g.Summary.Min),
			formatValue(g.Summary.Max),
			fmt.Sprintf("%d", g.Summary.Count),
		})
	}
	return rows
}

// formatValue renders a metric value with enough precision for
// rates and IPC without drowning large counters in digits.
func formatValue(v float64) string {
	if v != 0 && (v >= 1e6 || v < 1e-3) {
		return fmt.Sprintf("%.4g", v)
	}
	return fmt.Sprintf("%.4f", v)
}
