// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Emit selects which tables Render produces.
type Emit int

const (
	EmitBoth Emit = iota
	EmitForward
	EmitReverse
)

var emitNames = map[Emit]string{
	EmitBoth:    "both",
	EmitForward: "forward",
	EmitReverse: "reverse",
}

func (e Emit) String() string {
	if s, ok := emitNames[e]; ok {
		return s
	}
	return fmt.Sprintf("Emit(%d)", int(e))
}

// ParseEmit resolves "forward", "reverse" or "both".
func ParseEmit(s string) (Emit, error) {
	for e, n := range emitNames {
		if strings.EqualFold(s, n) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown table selection %q", s)
}

// Generator runs parse, normalize, check and build over one input.
type Generator struct {
	Format     Format
	Normalizer Normalizer
	Forward    TableSpec
	Reverse    TableSpec
	Strict     bool
	Style      Style

	// Log receives duplicate warnings. Nil discards them.
	Log *zap.SugaredLogger
}

// TableStats counts slots of one generated table.
type TableStats struct {
	Name     string
	Size     int
	Mapped   int
	Unmapped int
}

// Stats summarizes one generation run.
type Stats struct {
	Records    int
	Duplicates int
	Forward    TableStats
	Reverse    TableStats
}

// Result is the outcome of a successful run.
type Result struct {
	Mappings   []Mapping
	Duplicates []Duplicate
	Tables     *Tables
	Stats      Stats

	forward TableSpec
	reverse TableSpec
	style   Style
}

func (g *Generator) log() *zap.SugaredLogger {
	if g.Log == nil {
		return zap.NewNop().Sugar()
	}
	return g.Log
}

// Generate reads all of r and builds both tables. path is only used to
// annotate errors and log lines.
func (g *Generator) Generate(r io.Reader, path string) (*Result, error) {
	log := g.log()

	ms, n, err := g.mappings(r, path)
	if err != nil {
		return nil, err
	}
	log.Debugf("Parsed %d %s records from %s", n, g.Format, path)

	eff, dups, err := Check(ms, g.Forward, g.Reverse, g.Strict)
	if err != nil {
		return nil, &StageError{Stage: StageCheck, Path: path, Err: err}
	}
	for _, d := range dups {
		log.Warnw("Duplicate mapping, last record wins",
			"path", path,
			"line", d.Line,
			"previous_line", d.PrevLine,
			"key", d.Key,
			"value", d.Value)
	}

	t := Build(eff, g.Forward, g.Reverse)
	return &Result{
		Mappings:   eff,
		Duplicates: dups,
		Tables:     t,
		Stats: Stats{
			Records:    n,
			Duplicates: len(dups),
			Forward:    tableStats(g.Forward, len(eff)),
			Reverse:    tableStats(g.Reverse, len(eff)),
		},
		forward: g.Forward,
		reverse: g.Reverse,
		style:   g.Style,
	}, nil
}

func (g *Generator) mappings(r io.Reader, path string) ([]Mapping, int, error) {
	switch g.Format {
	case FormatDelimited:
		recs, err := ParseDelimited(r)
		if err != nil {
			return nil, 0, &StageError{Stage: StageParse, Path: path, Err: err}
		}
		ms, err := g.Normalizer.Normalize(recs)
		if err != nil {
			return nil, 0, &StageError{Stage: StageNormalize, Path: path, Err: err}
		}
		return ms, len(recs), nil
	case FormatOrdinal:
		recs, err := ParseOrdinal(r)
		if err != nil {
			return nil, 0, &StageError{Stage: StageParse, Path: path, Err: err}
		}
		return OrdinalMappings(recs), len(recs), nil
	}
	return nil, 0, &StageError{Stage: StageParse, Path: path, Err: fmt.Errorf("unsupported format %v", g.Format)}
}

func tableStats(spec TableSpec, mapped int) TableStats {
	return TableStats{
		Name:     spec.Name,
		Size:     spec.Size,
		Mapped:   mapped,
		Unmapped: spec.Size - mapped,
	}
}

// Render formats the selected tables, separated by a blank line.
func (r *Result) Render(e Emit) []byte {
	var b bytes.Buffer
	if e == EmitBoth || e == EmitForward {
		b.Write(FormatTable(r.forward.Name, r.Tables.Forward, r.style))
	}
	if e == EmitBoth {
		b.WriteByte('\n')
	}
	if e == EmitBoth || e == EmitReverse {
		b.Write(FormatTable(r.reverse.Name, r.Tables.Reverse, r.style))
	}
	return b.Bytes()
}
