// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simcfg recovers sweep configuration from the file and
// directory names written by the gem5 experiment harness.
//
// The harness encodes cache geometry, CPU model, clock, memory type,
// branch predictor, kernel name and optimization variant as tokens in
// names like "stats_mmm_opt_L1D64kBA4_L2256kB_Timing_2G_DDR3_1600_8x8".
// Extraction recognizes a closed set of configuration fields; a field
// is present only when some token matched it, and absence is a valid
// state rather than an error.
package simcfg

import "strconv"

// A Field identifies one configuration key. The set is closed so
// that present-vs-missing is explicit and callers can enumerate
// every axis.
type Field int

const (
	Application Field = iota
	Optimized
	CPUType
	ClockGHz
	MemType
	BranchPredictor
	CacheSize
	Associativity
	L1ISize
	L1IAssoc
	L1DSize
	L1DAssoc
	L2Size
	L2Assoc
	L3Size
	L3Assoc
	numFields
)

var fieldNames = [numFields]string{
	Application:     "application",
	Optimized:       "optimized",
	CPUType:         "cpu_type",
	ClockGHz:        "clock_ghz",
	MemType:         "mem_type",
	BranchPredictor: "branch_predictor",
	CacheSize:       "cache_size",
	Associativity:   "associativity",
	L1ISize:         "l1i_size",
	L1IAssoc:        "l1i_assoc",
	L1DSize:         "l1d_size",
	L1DAssoc:        "l1d_assoc",
	L2Size:          "l2_size",
	L2Assoc:         "l2_assoc",
	L3Size:          "l3_size",
	L3Assoc:         "l3_assoc",
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// FieldByName maps an axis name such as "l1d_size" to its Field.
func FieldByName(name string) (Field, bool) {
	for f, n := range fieldNames {
		if n == name {
			return Field(f), true
		}
	}
	return 0, false
}

// Fields returns every configuration field in declaration order.
func Fields() []Field {
	fs := make([]Field, numFields)
	for i := range fs {
		fs[i] = Field(i)
	}
	return fs
}

// A Kind describes the value semantics of a Field, which determines
// how its categories normalize and sort.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindCapacity // sorts by kibibytes
	KindClock    // sorts by gigahertz
	KindCount    // plain numeric
)

// Kind returns the value semantics of f.
func (f Field) Kind() Kind {
	switch f {
	case Optimized:
		return KindBool
	case CacheSize, L1ISize, L1DSize, L2Size, L3Size:
		return KindCapacity
	case ClockGHz:
		return KindClock
	case Associativity, L1IAssoc, L1DAssoc, L2Assoc, L3Assoc:
		return KindCount
	}
	return KindString
}

// A Config is the set of configuration values recovered from one
// run's naming. Fields hold their display form; presence is tracked
// per field.
type Config struct {
	vals [numFields]string
	set  uint32
}

// Has reports whether f was matched.
func (c Config) Has(f Field) bool {
	return c.set&(1<<uint(f)) != 0
}

// Get returns the display value of f and whether it is present.
func (c Config) Get(f Field) (string, bool) {
	return c.vals[f], c.Has(f)
}

// Bool returns the boolean value of a KindBool field, false when
// absent.
func (c Config) Bool(f Field) bool {
	return c.vals[f] == "true"
}

// setIfUnset records a value for f unless an earlier rule already
// set it. Rule-table order therefore resolves pattern overlap.
func (c *Config) setIfUnset(f Field, v string) {
	if c.Has(f) {
		return
	}
	c.vals[f] = v
	c.set |= 1 << uint(f)
}
