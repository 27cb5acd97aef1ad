// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Format selects how input lines are interpreted.
type Format int

const (
	// FormatDelimited lines look like P8_3,38.
	FormatDelimited Format = iota
	// FormatOrdinal lines hold a single GPIO number; the line position is
	// the pin index.
	FormatOrdinal
)

var formatNames = map[Format]string{
	FormatDelimited: "delimited",
	FormatOrdinal:   "ordinal",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat resolves a format name as accepted on the command line.
func ParseFormat(s string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(s, n) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown input format %q", s)
}

// PinRecord is one parsed line of the delimited format.
type PinRecord struct {
	Line   int
	Header string
	Pin    int
	GPIO   int
}

// OrdinalRecord is one parsed line of the ordinal format.
type OrdinalRecord struct {
	Line int
	GPIO int
}

var delimitedRe = regexp.MustCompile(`^P(\d+)_(\d+),(\d+)$`)

// ParseDelimited reads P<header>_<pin>,<gpio> records, one per line.
// The first line that does not match aborts parsing.
func ParseDelimited(r io.Reader) ([]PinRecord, error) {
	var recs []PinRecord
	err := scanLines(r, func(n int, line string) error {
		m := delimitedRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return &MalformedRecordError{Line: n, Text: line}
		}
		header, err1 := strconv.Atoi(m[1])
		pin, err2 := strconv.Atoi(m[2])
		gpio, err3 := strconv.Atoi(m[3])
		if err1 != nil || err2 != nil || err3 != nil {
			// Only reachable when a digit run overflows int.
			return &MalformedRecordError{Line: n, Text: line}
		}
		recs = append(recs, PinRecord{
			Line:   n,
			Header: strconv.Itoa(header),
			Pin:    pin,
			GPIO:   gpio,
		})
		return nil
	})
	return recs, err
}

// ParseOrdinal reads one decimal GPIO number per line.
func ParseOrdinal(r io.Reader) ([]OrdinalRecord, error) {
	var recs []OrdinalRecord
	err := scanLines(r, func(n int, line string) error {
		s := strings.TrimSpace(line)
		gpio, err := strconv.Atoi(s)
		if err != nil || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
			return &MalformedRecordError{Line: n, Text: line}
		}
		recs = append(recs, OrdinalRecord{Line: n, GPIO: gpio})
		return nil
	})
	return recs, err
}

func scanLines(r io.Reader, fn func(n int, line string) error) error {
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		if err := fn(n, s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}
