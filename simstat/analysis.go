// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simstat

import (
	"bytes"
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/gem5-tools/simstat/simcfg"
	"github.com/gem5-tools/simstat/simproc"
)

// An AppAnalysis is the cross-configuration overview of one
// application: how much IPC varied over the sweep and which cache
// size served it best.
type AppAnalysis struct {
	Application string
	Runs        int

	MinIPC, MaxIPC float64
	// ImprovementPct is the IPC gain of the best configuration
	// over the worst, as a percentage. 0 when MinIPC is 0.
	ImprovementPct float64

	// BestCache and WorstCache are the cache-size categories with
	// the highest and lowest mean IPC, empty when the sweep does
	// not vary a cache-size axis.
	BestCache, WorstCache string
}

// cacheAxis picks the capacity field this set actually sweeps.
func cacheAxis(set *simproc.Set) (simcfg.Field, bool) {
	for _, f := range []simcfg.Field{simcfg.CacheSize, simcfg.L1DSize, simcfg.L2Size, simcfg.L1ISize, simcfg.L3Size} {
		for _, e := range set.Entries {
			if e.Config.Has(f) {
				return f, true
			}
		}
	}
	return 0, false
}

// Analyze computes the per-application overview of a result set,
// applications in first-appearance order.
func Analyze(set *simproc.Set) []AppAnalysis {
	apps, byApp := set.GroupBy(simproc.ByApplication())

	var out []AppAnalysis
	for _, app := range apps {
		sub := &simproc.Set{Entries: byApp[app]}
		a := AppAnalysis{Application: app, Runs: len(sub.Entries)}

		var ipcs stats.Sample
		for _, e := range sub.Entries {
			v, _ := e.Metric("ipc")
			ipcs.Xs = append(ipcs.Xs, v)
		}
		a.MinIPC, a.MaxIPC = ipcs.Bounds()
		if a.MinIPC > 0 {
			a.ImprovementPct = (a.MaxIPC - a.MinIPC) / a.MinIPC * 100
		}

		if f, ok := cacheAxis(sub); ok {
			cats, byCat := sub.GroupBy(simproc.ByField(f))
			best, worst := "", ""
			var bestIPC, worstIPC float64
			for _, cat := range cats {
				var vals []float64
				for _, e := range byCat[cat] {
					v, _ := e.Metric("ipc")
					vals = append(vals, v)
				}
				mean := Summarize(vals).Mean
				if best == "" || mean > bestIPC {
					best, bestIPC = cat, mean
				}
				if worst == "" || mean < worstIPC {
					worst, worstIPC = cat, mean
				}
			}
			a.BestCache, a.WorstCache = best, worst
		}
		out = append(out, a)
	}
	return out
}

// FormatAnalysis appends a text rendering of the overview to buf.
func FormatAnalysis(buf *bytes.Buffer, analyses []AppAnalysis) {
	fmt.Fprintf(buf, "Analysis summary\n")
	for _, a := range analyses {
		fmt.Fprintf(buf, "\n%s (%d runs)\n", a.Application, a.Runs)
		if a.Runs < 2 {
			fmt.Fprintf(buf, "  not enough data points for analysis\n")
			continue
		}
		fmt.Fprintf(buf, "  IPC range: %.4f to %.4f\n", a.MinIPC, a.MaxIPC)
		if a.ImprovementPct > 0 {
			fmt.Fprintf(buf, "  max improvement: %.1f%%\n", a.ImprovementPct)
		}
		if a.BestCache != "" {
			fmt.Fprintf(buf, "  best cache size: %s, worst: %s\n", a.BestCache, a.WorstCache)
		}
	}
}
