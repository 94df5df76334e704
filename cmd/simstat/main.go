// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Simstat aggregates gem5 simulation results and compares them
// across a configuration sweep.
//
// Usage:
//
//	simstat -dir results [-x param] [-y metric] [options]
//
// Simstat walks the results directory for statistics dumps
// ("stats.txt" per run directory, or harness-named "stats_*.txt"
// files), recovers each run's configuration from its path, and
// reports the chosen y-axis metric summarized per x-axis category,
// grouped by application.
//
// The -list option enumerates every parameter and metric observed in
// the results, which is the valid vocabulary for -x and -y.
//
// By default the report is a fixed-width text table; -html and -csv
// select other encodings, and -plot renders a PNG chart instead,
// falling back to the text table when rendering fails.
//
// Example:
//
//	simstat -dir results -x l1d_size -y ipc
//	simstat -dir results -x cache_size -y l1d_miss_rate -plot -o plots
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gem5-tools/simstat/simplot"
	"github.com/gem5-tools/simstat/simproc"
	"github.com/gem5-tools/simstat/simstat"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: simstat -dir results [-x param] [-y metric] [options]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagDir     = flag.String("dir", "", "results `directory` to analyze (required)")
	flagX       = flag.String("x", "", "x-axis `parameter` (e.g. l1d_size)")
	flagY       = flag.String("y", "", "y-axis `metric` (e.g. ipc)")
	flagOut     = flag.String("o", "", "output `directory` for rendered plots (default: results directory)")
	flagList    = flag.Bool("list", false, "list every available parameter and metric, then exit")
	flagPlot    = flag.Bool("plot", false, "render a PNG chart instead of a table")
	flagHTML    = flag.Bool("html", false, "print the report as an HTML table")
	flagCSV     = flag.Bool("csv", false, "print the report in CSV form")
	flagSummary = flag.Bool("summary", false, "append a per-application analysis overview")
)

func main() {
	log.SetPrefix("simstat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if *flagDir == "" {
		flag.Usage()
	}

	opts := options{
		dir:     *flagDir,
		x:       *flagX,
		y:       *flagY,
		out:     *flagOut,
		list:    *flagList,
		plot:    *flagPlot,
		html:    *flagHTML,
		csv:     *flagCSV,
		summary: *flagSummary,
	}
	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	dir, x, y, out                 string
	list, plot, html, csv, summary bool
}

func run(opts options, w io.Writer) error {
	set, err := simproc.Collect(opts.dir)
	if err != nil {
		return err
	}
	for _, warn := range set.Warnings {
		log.Print(warn)
	}
	if len(set.Entries) == 0 {
		return fmt.Errorf("no parseable logs found in %s", opts.dir)
	}

	if opts.list {
		for _, p := range set.Params() {
			fmt.Fprintln(w, p)
		}
		return nil
	}

	if opts.x == "" || opts.y == "" {
		return fmt.Errorf("both -x and -y are required (use -list to see valid names)")
	}

	if opts.plot {
		err := renderPlot(set, opts, w)
		if err == nil {
			return nil
		}
		var axisErr *simstat.AxisError
		if errors.As(err, &axisErr) {
			// A bad axis halts the request before any output.
			return err
		}
		// Degrade to the text table, visibly.
		fmt.Fprintf(w, "plot rendering unavailable (%v); falling back to text report\n", err)
	}

	tables, err := simstat.BuildTables(set, opts.x, opts.y)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch {
	case opts.html:
		simstat.FormatHTML(&buf, tables)
	case opts.csv:
		if err := simstat.FormatCSV(&buf, tables); err != nil {
			return err
		}
	default:
		simstat.FormatText(&buf, tables)
	}
	if opts.summary {
		buf.WriteByte('\n')
		simstat.FormatAnalysis(&buf, simstat.Analyze(set))
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func renderPlot(set *simproc.Set, opts options, w io.Writer) error {
	series, err := simplot.BuildSeries(set, opts.x, opts.y)
	if err != nil {
		// A bad axis name is a caller error, not a rendering
		// failure; report it through the table path so the
		// valid alternatives get listed.
		if _, tErr := simstat.BuildTables(set, opts.x, opts.y); tErr != nil {
			return tErr
		}
		return err
	}
	outDir := opts.out
	if outDir == "" {
		outDir = opts.dir
	}
	path := filepath.Join(outDir, simplot.Filename(opts.x, opts.y))
	if err := simplot.Render(series, opts.x, opts.y, path); err != nil {
		return err
	}
	fmt.Fprintf(w, "plot saved to %s\n", path)
	return nil
}
