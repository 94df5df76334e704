// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simproc

import (
	"reflect"
	"testing"

	"github.com/gem5-tools/simstat/simcfg"
	"github.com/gem5-tools/simstat/simfmt"
)

func entry(path string, metrics simfmt.Record) *Entry {
	return &Entry{Path: path, Metrics: metrics, Config: simcfg.ExtractPath(path)}
}

func TestGroupByPartition(t *testing.T) {
	set := &Set{Entries: []*Entry{
		entry("results/matrix_mult/cache_8kB/stats.txt", simfmt.Record{}),
		entry("results/image_blur/cache_8kB/stats.txt", simfmt.Record{}),
		entry("results/matrix_mult/cache_64kB/stats.txt", simfmt.Record{}),
		entry("results/image_blur/cache_64kB/stats.txt", simfmt.Record{}),
	}}

	order, groups := set.GroupBy(ByApplication())
	if want := []string{"matrix_mult", "image_blur"}; !reflect.DeepEqual(order, want) {
		t.Errorf("got key order %v, want %v", order, want)
	}

	// The groups are a disjoint partition of the set.
	seen := make(map[*Entry]int)
	total := 0
	for _, k := range order {
		for _, e := range groups[k] {
			seen[e]++
			total++
		}
	}
	if total != len(set.Entries) {
		t.Errorf("groups hold %d entries, set has %d", total, len(set.Entries))
	}
	for e, n := range seen {
		if n != 1 {
			t.Errorf("entry %s appears in %d groups", e.Path, n)
		}
	}

	// Discovery order is preserved within a group.
	mm := groups["matrix_mult"]
	if len(mm) != 2 || mm[0].Path >= mm[1].Path {
		t.Errorf("matrix_mult group out of discovery order: %v", mm)
	}
}

func TestGroupByUnknown(t *testing.T) {
	set := &Set{Entries: []*Entry{entry("results/run0/stats.txt", simfmt.Record{})}}
	order, groups := set.GroupBy(ByApplication())
	if want := []string{UnknownCategory}; !reflect.DeepEqual(order, want) {
		t.Errorf("got %v, want %v", order, want)
	}
	if len(groups[UnknownCategory]) != 1 {
		t.Errorf("unknown bucket lost the entry")
	}
}

func TestEntryMetric(t *testing.T) {
	e := entry("results/matrix_mult/cache_8kB/stats.txt", simfmt.Record{
		"simInsts": simfmt.Num(1000),
		"simTicks": simfmt.Num(2000),
	})

	// Derived name.
	if got, ok := e.Metric("ipc"); !ok || got != 0.5 {
		t.Errorf("Metric(ipc) = %v, %v", got, ok)
	}
	// Exact raw key.
	if got, ok := e.Metric("simInsts"); !ok || got != 1000 {
		t.Errorf("Metric(simInsts) = %v, %v", got, ok)
	}
	// Unknown name.
	if _, ok := e.Metric("no.such.stat"); ok {
		t.Errorf("Metric accepted an unknown name")
	}
}

func TestEntryAxisValue(t *testing.T) {
	e := entry("results/matrix_mult/cache_64kB_assoc2/stats.txt", simfmt.Record{
		"simInsts": simfmt.Num(100),
		"simTicks": simfmt.Num(1000),
	})

	if got, ok := e.AxisValue("cache_size"); !ok || got != 64 {
		t.Errorf("AxisValue(cache_size) = %v, %v, want 64", got, ok)
	}
	if got, ok := e.AxisValue("associativity"); !ok || got != 2 {
		t.Errorf("AxisValue(associativity) = %v, %v, want 2", got, ok)
	}
	if got, ok := e.AxisValue("ipc"); !ok || got != 0.1 {
		t.Errorf("AxisValue(ipc) = %v, %v, want 0.1", got, ok)
	}
	// A config axis this entry doesn't carry.
	if _, ok := e.AxisValue("l3_size"); ok {
		t.Errorf("AxisValue reported a value for an absent field")
	}
}

func TestParams(t *testing.T) {
	set := &Set{Entries: []*Entry{
		entry("results/matrix_mult/cache_8kB/stats.txt", simfmt.Record{
			"simTicks": simfmt.Num(1),
		}),
	}}

	params := set.Params()
	for _, want := range []string{"application", "cache_size", "ipc", "execution_time", "simTicks"} {
		if !set.HasParam(want) {
			t.Errorf("Params() = %v, missing %q", params, want)
		}
	}
	// Fields no entry carries are not advertised.
	if set.HasParam("branch_predictor") {
		t.Errorf("Params advertised an absent config field")
	}
	if set.HasParam("bogus") {
		t.Errorf("HasParam accepted an unknown name")
	}
}

func TestSortCategories(t *testing.T) {
	check := func(in, want []string) {
		t.Helper()
		SortCategories(in)
		if !reflect.DeepEqual(in, want) {
			t.Errorf("got %v, want %v", in, want)
		}
	}

	// Capacities sort by normalized value, not lexically.
	check(
		[]string{"2kB", "64kB", "128kB", "16kB"},
		[]string{"2kB", "16kB", "64kB", "128kB"},
	)
	// Plain numerics.
	check([]string{"8", "2", "4"}, []string{"2", "4", "8"})
	// Numerics first, then alpha, unknown last.
	check(
		[]string{UnknownCategory, "TimingCPU", "2kB", "AtomicCPU"},
		[]string{"2kB", "AtomicCPU", "TimingCPU", UnknownCategory},
	)
}
