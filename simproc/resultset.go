// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simproc collects parsed simulation runs into an in-memory
// result set and provides the grouping and ordering operations that
// reports are built from.
//
// A Set is constructed once per analysis invocation by re-reading the
// result tree; it is read-only afterward. Grouping and parameter
// enumeration are pure traversals and never mutate entries.
package simproc

import (
	"sort"
	"strconv"

	"github.com/gem5-tools/simstat/simcfg"
	"github.com/gem5-tools/simstat/simderive"
	"github.com/gem5-tools/simstat/simfmt"
	"github.com/gem5-tools/simstat/simunit"
)

// UnknownCategory labels entries whose configuration does not carry
// the grouping axis. Keeping them in a named bucket rather than
// dropping them preserves the partition property of GroupBy.
const UnknownCategory = "unknown"

// An Entry is one simulation run: its source log, the raw metrics
// parsed from it and the configuration recovered from its path.
// Entries are never mutated after construction; derived metrics are
// computed on demand from Metrics.
type Entry struct {
	Path    string
	Metrics simfmt.Record
	Config  simcfg.Config
}

// Metric returns the value of a metric by name: a derived metric if
// name is in the derivation table, otherwise the raw statistic with
// that exact key. The second result reports whether the name is
// known at all for this entry.
func (e *Entry) Metric(name string) (float64, bool) {
	if d, ok := simderive.Lookup(name); ok {
		return d.Compute(e.Metrics), true
	}
	if v, ok := e.Metrics.Lookup(name); ok {
		return v, true
	}
	return 0, false
}

// Category returns the display label of a configuration axis for
// this entry, or UnknownCategory if the axis is absent.
func (e *Entry) Category(f simcfg.Field) string {
	if v, ok := e.Config.Get(f); ok {
		return v
	}
	return UnknownCategory
}

// AxisValue returns the numeric value of an axis for plotting:
// configuration fields normalize by their kind (capacities to KiB,
// clocks to GHz), metric names evaluate via Metric.
func (e *Entry) AxisValue(axis string) (float64, bool) {
	if f, ok := simcfg.FieldByName(axis); ok {
		v, present := e.Config.Get(f)
		if !present {
			return 0, false
		}
		return normalize(f.Kind(), v), true
	}
	return e.Metric(axis)
}

func normalize(k simcfg.Kind, v string) float64 {
	switch k {
	case simcfg.KindCapacity:
		return simunit.CapacityKiB(v)
	case simcfg.KindClock:
		return simunit.ClockGHz(v)
	case simcfg.KindBool:
		if v == "true" {
			return 1
		}
		return 0
	default:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
}

// A Set is the ordered collection of entries discovered by one
// Collect call, one entry per log file.
type Set struct {
	Entries []*Entry

	// Warnings records per-file problems that were recovered
	// during collection (unreadable logs and the like). They are
	// reported, never escalated.
	Warnings []string
}

// GroupBy partitions the entries by the given key function. It
// returns the keys in first-appearance order and the entries of each
// group in discovery order. Every entry lands in exactly one group.
func (s *Set) GroupBy(key func(*Entry) string) ([]string, map[string][]*Entry) {
	var order []string
	groups := make(map[string][]*Entry)
	for _, e := range s.Entries {
		k := key(e)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e)
	}
	return order, groups
}

// ByField returns a GroupBy key function over one configuration axis.
func ByField(f simcfg.Field) func(*Entry) string {
	return func(e *Entry) string { return e.Category(f) }
}

// ByApplication groups by kernel name.
func ByApplication() func(*Entry) string {
	return ByField(simcfg.Application)
}

// Params enumerates every axis and metric name observed across the
// set: configuration fields present in at least one entry, all
// derived metric names, and every raw statistic key. It is a pure
// fold over the set, recomputed on demand.
func (s *Set) Params() []string {
	var params []string
	for _, f := range simcfg.Fields() {
		for _, e := range s.Entries {
			if e.Config.Has(f) {
				params = append(params, f.String())
				break
			}
		}
	}
	params = append(params, simderive.Names()...)
	seen := make(map[string]bool)
	for _, e := range s.Entries {
		for k := range e.Metrics {
			seen[k] = true
		}
	}
	raw := make([]string, 0, len(seen))
	for k := range seen {
		raw = append(raw, k)
	}
	sort.Strings(raw)
	return append(params, raw...)
}

// HasParam reports whether name is a recognized axis or metric for
// this set.
func (s *Set) HasParam(name string) bool {
	for _, p := range s.Params() {
		if p == name {
			return true
		}
	}
	return false
}
