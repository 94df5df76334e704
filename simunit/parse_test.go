// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simunit

import (
	"strconv"
	"testing"
)

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func TestCapacityKiB(t *testing.T) {
	test := func(in string, want float64) {
		t.Helper()
		if got := CapacityKiB(in); got != want {
			t.Errorf("CapacityKiB(%q) = %v, want %v", in, got, want)
		}
	}

	test("128kB", 128)
	test("2MB", 2048)
	test("1GB", 1024*1024)
	test("1TB", 1024*1024*1024)
	// Unit letters are case-insensitive and the B is optional.
	test("64KB", 64)
	test("64k", 64)
	test("16K", 16)
	test("2m", 2048)
	// A bare number is raw bytes.
	test("2048", 2)
	test("4096B", 4)
	// Unparseable input is 0, never an error.
	test("", 0)
	test("None", 0)
	test("big", 0)
}

func TestClockGHz(t *testing.T) {
	test := func(in string, want float64) {
		t.Helper()
		if got := ClockGHz(in); got != want {
			t.Errorf("ClockGHz(%q) = %v, want %v", in, got, want)
		}
	}

	test("2GHz", 2)
	test("1000MHz", 1)
	test("500MHz", 0.5)
	test("3.5GHz", 3.5)
	// Bare numbers are already gigahertz.
	test("2", 2)
	test("0.5", 0.5)
	test("", 0)
	test("fast", 0)
}

// Normalizing an already-canonical value must return it unchanged.
func TestIdempotence(t *testing.T) {
	for _, s := range []string{"2GHz", "1000MHz", "3.5GHz"} {
		once := ClockGHz(s)
		if twice := ClockGHz(formatNum(once)); twice != once {
			t.Errorf("ClockGHz not idempotent for %q: %v then %v", s, once, twice)
		}
	}
	// A capacity re-expressed in its canonical kB form round-trips.
	for _, s := range []string{"2kB", "128kB", "2MB"} {
		once := CapacityKiB(s)
		if twice := CapacityKiB(formatNum(once) + "kB"); twice != once {
			t.Errorf("CapacityKiB not idempotent for %q: %v then %v", s, once, twice)
		}
	}
}

func TestParseNum(t *testing.T) {
	test := func(in string, want float64) {
		t.Helper()
		got, err := ParseNum(in)
		if err != nil {
			t.Fatalf("ParseNum(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseNum(%q) = %v, want %v", in, got, want)
		}
	}

	test("4", 4)
	test("64kB", 64)
	test("2MB", 2048)
	test("1000MHz", 1)

	if _, err := ParseNum("TimingSimpleCPU"); err == nil {
		t.Errorf("ParseNum accepted a non-numeric label")
	}
}
