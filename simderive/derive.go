// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simderive computes performance metrics that are not logged
// directly, from the raw counters of a single statistics dump.
//
// Every derivation is a pure function of one simfmt.Record with a
// zero fallback when its source counters are missing; nothing here
// depends on cross-run state, so derivations can be re-run in any
// order without side effects.
package simderive

import "github.com/gem5-tools/simstat/simfmt"

// TickSeconds is the assumed duration of one simulator tick
// (0.5 ns, one cycle at a nominal 2 GHz). It is used to estimate
// execution time when a dump carries no simSeconds counter; runs
// simulated at a different clock make the estimate proportionally
// off, so treat tick-derived times as labeled estimates, not
// measurements.
const TickSeconds = 0.5e-9

// A Derivation computes one metric from a Record.
type Derivation struct {
	Name string
	// Estimate marks metrics whose value rests on an assumed
	// constant rather than logged counters alone.
	Estimate bool
	Compute  func(simfmt.Record) float64
}

// gem5 has used two spellings for several counters across releases
// ("simInsts" vs "sim_insts", "overallMisses" vs "overall_misses");
// lookups probe both.
func first(rec simfmt.Record, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := rec.Lookup(k); ok {
			return v, true
		}
	}
	return 0, false
}

// ratio returns num/den, or 0 when den is not positive.
func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// ipc derives instructions per cycle. A true cycle counter is
// preferred; without one the tick count stands in, which makes the
// value an IPC proxy rather than a literal IPC.
func ipc(rec simfmt.Record) float64 {
	insts, ok := first(rec, "simInsts", "sim_insts")
	if !ok {
		return 0
	}
	den, ok := first(rec, "system.cpu.numCycles")
	if !ok {
		den, ok = first(rec, "simTicks", "sim_ticks")
	}
	if !ok {
		return 0
	}
	return ratio(insts, den)
}

// missRate builds the per-level miss-rate derivation for the cache
// statistics under prefix (e.g. "system.cpu.dcache"). When both hit
// and miss counts are present the rate is recomputed from them and
// overrides any overallMissRate counter in the dump, which may be
// stale; the raw counter is used only when a count is missing.
func missRate(prefix string) func(simfmt.Record) float64 {
	return func(rec simfmt.Record) float64 {
		hits, okH := first(rec, prefix+".overallHits::total", prefix+".overall_hits::total")
		misses, okM := first(rec, prefix+".overallMisses::total", prefix+".overall_misses::total")
		if okH && okM {
			return ratio(misses, hits+misses)
		}
		if raw, ok := first(rec, prefix+".overallMissRate::total", prefix+".overall_miss_rate::total"); ok {
			return raw
		}
		return 0
	}
}

func branchAccuracy(rec simfmt.Record) float64 {
	good, okG := first(rec, "system.cpu.branchPred.condPredicted")
	bad, okB := first(rec, "system.cpu.branchPred.condIncorrect")
	if !okG || !okB {
		return 0
	}
	return ratio(good, good+bad)
}

// executionTime prefers the simulated wall time; otherwise it
// estimates from the tick count via TickSeconds.
func executionTime(rec simfmt.Record) float64 {
	if secs, ok := first(rec, "simSeconds", "sim_seconds"); ok {
		return secs
	}
	ticks, ok := first(rec, "simTicks", "sim_ticks")
	if !ok {
		return 0
	}
	return ticks * TickSeconds
}

// passthrough lifts a raw counter into the derived namespace so that
// it is addressable under a stable name regardless of stat spelling.
func passthrough(keys ...string) func(simfmt.Record) float64 {
	return func(rec simfmt.Record) float64 {
		v, _ := first(rec, keys...)
		return v
	}
}

// derivations is the fixed table of derived metrics.
var derivations = []Derivation{
	{Name: "ipc", Compute: ipc},
	{Name: "l1d_miss_rate", Compute: missRate("system.cpu.dcache")},
	{Name: "l1i_miss_rate", Compute: missRate("system.cpu.icache")},
	{Name: "l2_miss_rate", Compute: missRate("system.l2cache")},
	{Name: "l3_miss_rate", Compute: missRate("system.l3cache")},
	{Name: "branch_accuracy", Compute: branchAccuracy},
	{Name: "execution_time", Estimate: true, Compute: executionTime},
	{Name: "cpi", Compute: passthrough("system.cpu.cpi")},
	{Name: "mem_bandwidth", Compute: passthrough("system.mem_ctrl.dram.avgBW::total")},
	{Name: "mem_reads", Compute: passthrough("system.mem_ctrl.dram.readReqs")},
	{Name: "mem_writes", Compute: passthrough("system.mem_ctrl.dram.writeReqs")},
}

// Names returns the derived metric names in table order.
func Names() []string {
	names := make([]string, len(derivations))
	for i, d := range derivations {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the derivation for name.
func Lookup(name string) (Derivation, bool) {
	for _, d := range derivations {
		if d.Name == name {
			return d, true
		}
	}
	return Derivation{}, false
}

// Compute evaluates every derivation against rec.
func Compute(rec simfmt.Record) map[string]float64 {
	out := make(map[string]float64, len(derivations))
	for _, d := range derivations {
		out[d.Name] = d.Compute(rec)
	}
	return out
}
