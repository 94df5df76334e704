// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simcfg

import (
	"path/filepath"
	"strings"
)

// An Extractor applies a rule table to names. The zero value is not
// usable; construct one with NewExtractor or use the package-level
// Extract functions, which use DefaultRules.
type Extractor struct {
	rules []Rule
}

// NewExtractor returns an Extractor using the given rule table. Pass
// a reordered or extended copy of DefaultRules to override the
// default precedence.
func NewExtractor(rules []Rule) *Extractor {
	return &Extractor{rules: rules}
}

// Extract recovers configuration from a single file or directory
// name. Every rule is probed; unmatched rules simply leave their
// fields absent.
func (e *Extractor) Extract(name string) Config {
	var c Config
	e.extractInto(&c, name)
	return c
}

// ExtractPath recovers configuration from a result path, probing the
// deepest component first so that the run directory's own tokens take
// precedence over those inherited from parent directories.
func (e *Extractor) ExtractPath(path string) Config {
	var c Config
	parts := strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		e.extractInto(&c, parts[i])
	}
	return c
}

func (e *Extractor) extractInto(c *Config, name string) {
	for _, r := range e.rules {
		if m := r.re.FindStringSubmatch(name); m != nil {
			r.apply(c, m)
		}
	}
}

var defaultExtractor = NewExtractor(DefaultRules())

// Extract applies the default rule table to a single name.
func Extract(name string) Config {
	return defaultExtractor.Extract(name)
}

// ExtractPath applies the default rule table to a result path.
func ExtractPath(path string) Config {
	return defaultExtractor.ExtractPath(path)
}
