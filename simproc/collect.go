// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simproc

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gem5-tools/simstat/simcfg"
	"github.com/gem5-tools/simstat/simfmt"
)

// isLogName reports whether a file name is a recognized statistics
// dump: the per-run "stats.txt" the simulator writes, or the
// "stats_<config>.txt" files the sweep harness renames them to.
func isLogName(name string) bool {
	if name == "stats.txt" {
		return true
	}
	return strings.HasPrefix(name, "stats_") && strings.HasSuffix(name, ".txt")
}

// Collect walks the result tree rooted at root and builds one Entry
// per recognized log file. Directories without logs contribute
// nothing. Unreadable files are recorded as warnings on the Set and
// skipped; only a missing or unwalkable root is an error.
//
// Each parse owns its file handle for the duration of one call and
// produces an independent Entry, so collection could fan out across
// files; the walk here is deliberately sequential and deterministic
// (lexical WalkDir order).
func Collect(root string) (*Set, error) {
	set := new(Set)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			set.Warnings = append(set.Warnings, err.Error())
			return nil
		}
		if d.IsDir() || !isLogName(d.Name()) {
			return nil
		}
		rec, err := simfmt.ParseFile(path)
		if err != nil {
			set.Warnings = append(set.Warnings, fmt.Sprintf("skipping %s: %v", path, err))
			return nil
		}
		set.Entries = append(set.Entries, &Entry{
			Path:    path,
			Metrics: rec,
			Config:  simcfg.ExtractPath(path),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("results directory %s: %w", root, err)
	}
	return set, nil
}
