// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simcfg

import (
	"regexp"
	"strconv"
)

// A Rule maps one recognized naming pattern to the fields it sets.
// Rules are evaluated independently; a name may match zero, one or
// several rules. When two rules could bind the same field, the one
// earlier in the table wins, so precedence is plain data: reordering
// the slice changes the policy without touching any control flow.
type Rule struct {
	re    *regexp.Regexp
	apply func(c *Config, m []string)
}

// NewRule constructs a Rule from a pattern and a field setter. The
// setter receives the submatches of the pattern.
func NewRule(pattern string, apply func(c *Config, m []string)) Rule {
	return Rule{re: regexp.MustCompile(pattern), apply: apply}
}

// NoL2Default is the capacity substituted when a name carries the
// "L2None" sentinel. Recording a concrete default keeps capacity
// axes total across runs with and without an L2.
const NoL2Default = "256kB"

// cacheRule recognizes one cache level's size token with an optional
// associativity suffix, e.g. "L1D64kBA4".
func cacheRule(prefix string, size, assoc Field) Rule {
	return NewRule(prefix+`((?:\d+[kKmMgG][bB]?)|None)(?:A(\d+))?`, func(c *Config, m []string) {
		v := m[1]
		if v == "None" {
			v = NoL2Default
		}
		c.setIfUnset(size, v)
		if m[2] != "" {
			c.setIfUnset(assoc, m[2])
		}
	})
}

// DefaultRules is the recognized pattern table, in precedence order.
// Adding a new configuration token is a data addition here.
func DefaultRules() []Rule {
	return []Rule{
		// Kernel name and optimization variant, e.g. "stats_image_blur_opt".
		NewRule(`stats_(.+?)_(opt|unopt)(?:[_.]|$)`, func(c *Config, m []string) {
			c.setIfUnset(Application, m[1])
			c.setIfUnset(Optimized, strconv.FormatBool(m[2] == "opt"))
		}),
		// Per-level cache geometry. L2 admits the "None" sentinel.
		cacheRule("L1I", L1ISize, L1IAssoc),
		cacheRule("L1D", L1DSize, L1DAssoc),
		cacheRule("L2", L2Size, L2Assoc),
		cacheRule("L3", L3Size, L3Assoc),
		// CPU model, e.g. "_Timing_".
		NewRule(`_(Timing|Atomic|O3)_`, func(c *Config, m []string) {
			c.setIfUnset(CPUType, m[1]+"CPU")
		}),
		// Clock, e.g. "_2G_" or "_500M_".
		NewRule(`_(\d+(?:\.\d+)?)([GM])_`, func(c *Config, m []string) {
			v, _ := strconv.ParseFloat(m[1], 64)
			if m[2] == "M" {
				v /= 1000
			}
			c.setIfUnset(ClockGHz, strconv.FormatFloat(v, 'g', -1, 64))
		}),
		// Memory technology, e.g. "_DDR3_1600_8x8".
		NewRule(`(DDR[34]_\d+_\d+x\d+|LPDDR\d+_[0-9a-zA-Z]+)`, func(c *Config, m []string) {
			c.setIfUnset(MemType, m[1])
		}),
		// Branch predictor family, e.g. "TournamentBP".
		NewRule(`(Local|Tournament|BiMode|TAGE|Multiperspective)BP`, func(c *Config, m []string) {
			c.setIfUnset(BranchPredictor, m[1]+"BP")
		}),
		// Undifferentiated cache size in a run directory name, e.g.
		// "cache_64kB".
		NewRule(`(\d+[kK][bB])`, func(c *Config, m []string) {
			c.setIfUnset(CacheSize, m[1])
		}),
		// Undifferentiated associativity, e.g. "assoc4".
		NewRule(`assoc(\d+)`, func(c *Config, m []string) {
			c.setIfUnset(Associativity, m[1])
		}),
		// Known kernel names appearing as bare path components.
		NewRule(`(matrix_mult|image_blur|hash_ops|stream_bench|mmm|kernel\d+)`, func(c *Config, m []string) {
			c.setIfUnset(Application, m[1])
		}),
	}
}
