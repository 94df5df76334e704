// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simproc

import (
	"sort"

	"github.com/gem5-tools/simstat/simunit"
)

// SortCategories orders category labels for a report axis. Labels
// with numeric semantics (capacities, clocks, counts) sort by their
// normalized numeric value, never lexically: "128kB" belongs after
// "64kB", not before "2kB". Non-numeric labels follow the numeric
// ones alphabetically, and the unknown bucket sorts last.
func SortCategories(cats []string) {
	sort.SliceStable(cats, func(i, j int) bool {
		a, b := cats[i], cats[j]
		if a == UnknownCategory || b == UnknownCategory {
			return b == UnknownCategory && a != UnknownCategory
		}
		av, aerr := simunit.ParseNum(a)
		bv, berr := simunit.ParseNum(b)
		switch {
		case aerr == nil && berr == nil:
			if av != bv {
				return av < bv
			}
			// Numerically equal but textually distinct
			// labels need a stable tiebreak.
			return a < b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		}
		return a < b
	})
}
