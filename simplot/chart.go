// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simplot renders a result set as a two-dimensional sweep
// chart: one line series per optimization variant (or per
// application when the sweep has no opt/unopt split), an x-axis
// configuration parameter and a y-axis metric.
//
// Rendering failures are ordinary errors; callers degrade to the
// tabular report rather than failing the run.
package simplot

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/gem5-tools/simstat/simcfg"
	"github.com/gem5-tools/simstat/simproc"
)

// A Series is one plotted line: a name and its points in ascending
// x order.
type Series struct {
	Name   string
	Points plotter.XYs
}

// BuildSeries shapes the set into plot series for the given axes.
// When any run carries the optimization flag the series split on it;
// otherwise one series is built per application. Entries missing
// either axis contribute no point.
func BuildSeries(set *simproc.Set, x, y string) ([]Series, error) {
	for _, axis := range []string{x, y} {
		if !set.HasParam(axis) {
			return nil, fmt.Errorf("unrecognized parameter %q", axis)
		}
	}

	split := simproc.ByApplication()
	for _, e := range set.Entries {
		if e.Config.Has(simcfg.Optimized) {
			split = func(e *simproc.Entry) string {
				if e.Config.Bool(simcfg.Optimized) {
					return "optimized"
				}
				return "unoptimized"
			}
			break
		}
	}

	names, groups := set.GroupBy(split)
	sort.Strings(names)

	var out []Series
	for _, name := range names {
		var pts plotter.XYs
		for _, e := range groups[name] {
			xv, ok := e.AxisValue(x)
			if !ok {
				continue
			}
			yv, ok := e.AxisValue(y)
			if !ok {
				continue
			}
			pts = append(pts, plotter.XY{X: xv, Y: yv})
		}
		if len(pts) == 0 {
			continue
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
		out = append(out, Series{Name: name, Points: pts})
	}
	return out, nil
}

// AxisLabel returns the human label of an axis, with the canonical
// unit appended for normalized axes.
func AxisLabel(axis string) string {
	words := strings.Split(axis, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	label := strings.Join(words, " ")
	if f, ok := simcfg.FieldByName(axis); ok {
		switch f.Kind() {
		case simcfg.KindCapacity:
			label += " (KiB)"
		case simcfg.KindClock:
			label += " (GHz)"
		}
	}
	return label
}

// Filename derives the output file name from the two axis names, so
// repeated renders of the same report overwrite deterministically.
func Filename(x, y string) string {
	clean := func(s string) string {
		return strings.Map(func(r rune) rune {
			switch r {
			case '.', ':', '/':
				return '_'
			}
			return r
		}, s)
	}
	return fmt.Sprintf("plot_%s_vs_%s.png", clean(x), clean(y))
}

// Render draws the series to a PNG at path.
func Render(series []Series, x, y, path string) error {
	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s vs %s", AxisLabel(y), AxisLabel(x))
	pl.X.Label.Text = AxisLabel(x)
	pl.Y.Label.Text = AxisLabel(y)
	pl.Add(plotter.NewGrid())

	var args []interface{}
	for _, s := range series {
		args = append(args, s.Name, s.Points)
	}
	if err := plotutil.AddLinePoints(pl, args...); err != nil {
		return err
	}

	return pl.Save(10*vg.Inch, 6*vg.Inch, path)
}
