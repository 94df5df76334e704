// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simfmt reads gem5 statistics dumps.
//
// A statistics dump is a flat UTF-8 text file with one statistic per
// line: a metric key, a value, and an optional trailing description.
// Keys are hierarchical dot-separated strings such as
// "system.cpu.dcache.overallMisses::total". Consumers match keys by
// exact string, never by hierarchy traversal.
package simfmt

import "strconv"

// A Value is a single statistic value. Most statistics are numeric;
// values that fail numeric parsing are retained as raw strings
// rather than dropped.
type Value struct {
	num     float64
	str     string
	numeric bool
}

// Num returns a numeric Value.
func Num(f float64) Value {
	return Value{num: f, numeric: true}
}

// Str returns a string Value.
func Str(s string) Value {
	return Value{str: s}
}

// parseValue converts a raw field into a Value, attempting a numeric
// parse first.
func parseValue(s string) Value {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Num(f)
	}
	return Str(s)
}

// Float64 returns the numeric value and whether the Value is numeric.
func (v Value) Float64() (float64, bool) {
	return v.num, v.numeric
}

// String returns the string form of the Value.
func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.str
}

// A Record is the full set of statistics parsed from one dump,
// keyed by exact metric name. A Record is never mutated once its
// file has been read.
type Record map[string]Value

// Has reports whether key is present in the record.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Float returns the numeric value of key, or 0 if the key is absent
// or non-numeric.
func (r Record) Float(key string) float64 {
	f, _ := r[key].Float64()
	return f
}

// Lookup returns the numeric value of key and whether key is present
// with a numeric value.
func (r Record) Lookup(key string) (float64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	return v.Float64()
}
