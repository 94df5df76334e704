// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simunit converts the size and frequency encodings found in
// gem5 configuration tokens into canonical numeric units.
//
// Capacities canonicalize to kibibytes and clocks to gigahertz so
// that sweep axes compare numerically across runs. Both conversions
// are total: unparseable input yields 0 rather than an error, and a
// value that is already canonical passes through unchanged.
package simunit

import (
	"regexp"
	"strconv"
	"strings"
)

// Note that gem5 writes cache sizes with SI-looking suffixes ("64kB")
// but means binary factors; the conversions here follow that
// convention rather than strict SI.

var (
	capacityRe = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([kKmMgGtT]?)[bB]?$`)
	clockRe    = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([mMgG]?)(?:[hH][zZ])?$`)
)

// CapacityKiB converts a capacity token such as "64kB", "2MB" or
// "1GB" into kibibytes. The unit letter is case-insensitive and the
// trailing "B" is optional. A bare number is taken to be raw bytes
// and divided by 1024. Unparseable input yields 0.
func CapacityKiB(s string) float64 {
	m := capacityRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	switch m[2] {
	case "k", "K":
		return v
	case "m", "M":
		return v * 1024
	case "g", "G":
		return v * 1024 * 1024
	case "t", "T":
		return v * 1024 * 1024 * 1024
	}
	return v / 1024
}

// ClockGHz converts a clock token such as "2GHz", "1000MHz" or "3.5"
// into gigahertz. A bare number is already in gigahertz and passes
// through unchanged, which makes the conversion idempotent.
// Unparseable input yields 0.
func ClockGHz(s string) float64 {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	if m[2] == "m" || m[2] == "M" {
		return v / 1000
	}
	return v
}

// ParseNum is a fuzzy numeric parse for sorting category labels with
// numeric semantics. It accepts plain numbers, capacity tokens
// (compared in kibibytes) and clock tokens (compared in gigahertz).
func ParseNum(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	if capacityRe.MatchString(s) {
		return CapacityKiB(s), nil
	}
	if clockRe.MatchString(s) {
		return ClockGHz(s), nil
	}
	return 0, strconv.ErrSyntax
}
