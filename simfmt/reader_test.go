// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simfmt

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	check := func(input string, want Record) {
		t.Helper()
		got, err := NewReader(strings.NewReader(input), "test").ReadAll()
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	check(`
---------- Begin Simulation Statistics ----------
simSeconds                                   0.002682 # Number of seconds simulated (Second)
simTicks                                   2682479000 # Number of ticks simulated (Tick)
# a full-line comment
system.cpu.dcache.overallMisses::total           1367 # number of overall misses (Count)
---------- End Simulation Statistics   ----------
`, Record{
		"simSeconds": Num(0.002682),
		"simTicks":   Num(2682479000),
		"system.cpu.dcache.overallMisses::total": Num(1367),
	})

	// Non-numeric values fall back to the raw string.
	check("host_mem_usage  1234567\nconfig.name  two_level\n", Record{
		"host_mem_usage": Num(1234567),
		"config.name":    Str("two_level"),
	})

	// Duplicate keys: last occurrence wins.
	check("simInsts 10\nsimInsts 20\n", Record{"simInsts": Num(20)})

	// Empty input.
	check("", Record{})
}

func TestReaderSkipsMalformed(t *testing.T) {
	input := "justakey\nsimInsts 42 # ok\n   \n# comment\n"
	r := NewReader(strings.NewReader(input), "test")
	rec, err := r.ReadAll()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if want := (Record{"simInsts": Num(42)}); !reflect.DeepEqual(rec, want) {
		t.Errorf("got %v, want %v", rec, want)
	}
	if r.Skipped() != 1 {
		t.Errorf("got %d skipped lines, want 1", r.Skipped())
	}
}

func TestValue(t *testing.T) {
	if f, ok := Num(1.5).Float64(); !ok || f != 1.5 {
		t.Errorf("Num(1.5).Float64() = %v, %v", f, ok)
	}
	if _, ok := Str("x").Float64(); ok {
		t.Errorf("Str(x) reported numeric")
	}
	if got := Str("TimingSimpleCPU").String(); got != "TimingSimpleCPU" {
		t.Errorf("got %q", got)
	}
}

func TestRecordAccessors(t *testing.T) {
	rec := Record{"a": Num(2), "b": Str("x")}
	if got := rec.Float("a"); got != 2 {
		t.Errorf("Float(a) = %v, want 2", got)
	}
	if got := rec.Float("missing"); got != 0 {
		t.Errorf("Float(missing) = %v, want 0", got)
	}
	if _, ok := rec.Lookup("b"); ok {
		t.Errorf("Lookup(b) reported numeric")
	}
	if !rec.Has("b") || rec.Has("c") {
		t.Errorf("Has misreported presence")
	}
}

func TestParseFileMissing(t *testing.T) {
	rec, err := ParseFile(filepath.Join(t.TempDir(), "nope", "stats.txt"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if len(rec) != 0 {
		t.Errorf("got %v, want empty record", rec)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.txt")
	if err := os.WriteFile(path, []byte("simTicks 100\n"), 0666); err != nil {
		t.Fatal(err)
	}
	rec, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := rec.Float("simTicks"); got != 100 {
		t.Errorf("simTicks = %v, want 100", got)
	}
}
