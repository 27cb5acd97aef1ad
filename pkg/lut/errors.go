// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"fmt"
)

// Stage names a step of the generation pipeline.
type Stage string

const (
	StageRead      Stage = "read"
	StageParse     Stage = "parse"
	StageNormalize Stage = "normalize"
	StageCheck     Stage = "check"
	StageFormat    Stage = "format"
	StageWrite     Stage = "write"
)

// StageError reports which stage failed and, when known, on which file.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// MalformedRecordError is returned for an input line that does not have
// the shape the selected format expects.
type MalformedRecordError struct {
	Line int
	Text string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: malformed record %q", e.Line, e.Text)
}

// UnknownHeaderError is returned for a header label with no configured slot.
type UnknownHeaderError struct {
	Line   int
	Header string
}

func (e *UnknownHeaderError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("unknown header %q", e.Header)
	}
	return fmt.Sprintf("line %d: unknown header %q", e.Line, e.Header)
}

// RangeError is returned when a value falls outside [Min, Max].
type RangeError struct {
	Line  int
	What  string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("line %d: %s %d outside [%d, %d]", e.Line, e.What, e.Value, e.Min, e.Max)
}

// SentinelError is returned when a mapped value equals the sentinel of the
// table it would be stored in, which would make it indistinguishable from
// an unmapped slot.
type SentinelError struct {
	Line     int
	Table    string
	Value    int
	Sentinel int
}

func (e *SentinelError) Error() string {
	return fmt.Sprintf("line %d: value %d in table %s collides with sentinel %d", e.Line, e.Value, e.Table, e.Sentinel)
}

// DuplicateMappingError is returned in strict mode when a record assigns a
// different value to a pin index or GPIO that an earlier record already
// mapped.
type DuplicateMappingError struct {
	Duplicate
}

func (e *DuplicateMappingError) Error() string {
	return fmt.Sprintf("line %d: %s %d already mapped on line %d", e.Line, e.Key, e.Value, e.PrevLine)
}
