// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simstat

import (
	"encoding/csv"
	"io"
	"strconv"
)

// FormatCSV writes the tables to w in CSV form, one record per
// category with the application repeated in the first column so the
// output stays grep- and spreadsheet-friendly.
func FormatCSV(w io.Writer, tables []*Table) error {
	o := csv.NewWriter(w)
	if len(tables) > 0 {
		o.Write([]string{"application", tables[0].X, "mean", "min", "max", "count"})
	}
	for _, t := range tables {
		for _, g := range t.Groups {
			o.Write([]string{
				t.Application,
				g.Label,
				strconv.FormatFloat(g.Summary.Mean, 'g', -1, 64),
				strconv.FormatFloat(g.Summary.Min, 'g', -1, 64),
				strconv.FormatFloat(g.Summary.Max, 'g', -1, 64),
				strconv.Itoa(g.Summary.Count),
			})
		}
	}
	o.Flush()
	return o.Error()
}
