// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simstat summarizes a collected result set along a chosen
// pair of axes and renders the comparison as text, HTML or CSV.
package simstat

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"

	"github.com/gem5-tools/simstat/simcfg"
	"github.com/gem5-tools/simstat/simproc"
)

// A Summary holds the per-group statistics of one metric. An empty
// group is represented by the zero Summary with Count 0; it is a
// sentinel, not an error.
type Summary struct {
	Mean  float64
	Min   float64
	Max   float64
	Count int
}

// Summarize computes the Summary of a set of metric values.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	s := stats.Sample{Xs: values}
	min, max := s.Bounds()
	return Summary{
		Mean:  s.Mean(),
		Min:   min,
		Max:   max,
		Count: len(values),
	}
}

// A Group is one category on the report's x-axis with the summary of
// the y-metric over every run in that category.
type Group struct {
	Label   string
	Summary Summary
}

// A Table is the comparison for one application: the y-metric
// summarized per x-category, categories in normalized numeric order.
type Table struct {
	Application string
	X, Y        string
	Groups      []Group
}

// An AxisError reports a requested axis or metric name that the
// result set does not recognize, along with every valid alternative.
type AxisError struct {
	Axis  string
	Valid []string
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("unrecognized parameter %q; valid parameters: %s",
		e.Axis, strings.Join(e.Valid, ", "))
}

// categoryOf labels an entry on an axis: configuration fields use
// their display form, metrics their formatted value.
func categoryOf(e *simproc.Entry, axis string) string {
	if f, ok := simcfg.FieldByName(axis); ok {
		return e.Category(f)
	}
	v, ok := e.Metric(axis)
	if !ok {
		return simproc.UnknownCategory
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// BuildTables summarizes the set's y metric per x category, one
// Table per application, applications in name order. An axis name
// the set does not recognize is the one caller-facing error; nothing
// is partially built in that case.
func BuildTables(set *simproc.Set, x, y string) ([]*Table, error) {
	for _, axis := range []string{x, y} {
		if !set.HasParam(axis) {
			return nil, &AxisError{Axis: axis, Valid: set.Params()}
		}
	}

	apps, byApp := set.GroupBy(simproc.ByApplication())
	sort.Strings(apps)

	var tables []*Table
	for _, app := range apps {
		sub := &simproc.Set{Entries: byApp[app]}
		cats, byCat := sub.GroupBy(func(e *simproc.Entry) string {
			return categoryOf(e, x)
		})
		simproc.SortCategories(cats)

		table := &Table{Application: app, X: x, Y: y}
		for _, cat := range cats {
			var values []float64
			for _, e := range byCat[cat] {
				// Entries missing the metric contribute the
				// documented zero fallback.
				v, _ := e.Metric(y)
				values = append(values, v)
			}
			table.Groups = append(table.Groups, Group{Label: cat, Summary: Summarize(values)})
		}
		tables = append(tables, table)
	}
	return tables, nil
}
