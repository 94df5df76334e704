// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Reader reads statistics from a gem5 dump.
//
// Its API is modeled on bufio.Scanner: call Scan to advance to the
// next statistic and Stat to retrieve it. Malformed lines never stop
// the Reader; they are counted and skipped so that one bad line
// cannot poison a whole run.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int

	key string
	val Value

	skipped int
	err     error
}

// NewReader constructs a Reader for a statistics dump.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{s: bufio.NewScanner(r), fileName: fileName}
}

// Scan advances the Reader to the next statistic and reports whether
// one was read. Blank lines, comment lines beginning with "#", the
// "---------- Begin/End Simulation Statistics ----------" delimiters
// that gem5 writes, and lines with fewer than two fields are skipped.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		line := strings.TrimSpace(r.s.Text())
		if line == "" || line[0] == '#' || line[0] == '-' {
			continue
		}
		key, rest := splitField(line)
		val, _ := splitField(rest)
		if val == "" {
			// A key with no value carries no statistic.
			r.skipped++
			continue
		}
		r.key = key
		r.val = parseValue(val)
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// Stat returns the statistic read by the last call to Scan.
// Any trailing annotation after the value field has been discarded.
func (r *Reader) Stat() (key string, val Value) {
	return r.key, r.val
}

// Skipped returns the number of lines skipped because they did not
// tokenize into a key and a value.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Err returns the first I/O error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll consumes the rest of the input and collects it into a
// Record. Duplicate keys keep the last occurrence, matching how gem5
// appends successive statistics dumps to one file.
func (r *Reader) ReadAll() (Record, error) {
	rec := make(Record)
	for r.Scan() {
		key, val := r.Stat()
		rec[key] = val
	}
	return rec, r.Err()
}

// ParseFile reads the statistics dump at path. The file handle is
// acquired and released within the call.
//
// A missing or unreadable file yields an empty Record and a non-nil
// error for the caller to report as a warning; it is never fatal and
// the Record is always usable.
func ParseFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return make(Record), err
	}
	defer f.Close()
	return NewReader(f, path).ReadAll()
}

// splitField consumes and returns the leading non-whitespace of x,
// then the remainder with leading whitespace stripped.
func splitField(x string) (field, rest string) {
	end := len(x)
	for i, r := range x {
		if unicode.IsSpace(r) {
			end = i
			break
		}
	}
	field, rest = x[:end], x[end:]
	for len(rest) > 0 {
		r, n := utf8.DecodeRuneInString(rest)
		if !unicode.IsSpace(r) {
			break
		}
		rest = rest[n:]
	}
	return field, rest
}
