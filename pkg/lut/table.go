// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

// MaxValue is the largest value a table element can hold.
const MaxValue = 255

// Keys a duplicate can collide on.
const (
	KeyIndex = "pin index"
	KeyGPIO  = "gpio"
)

// TableSpec describes one generated array.
type TableSpec struct {
	Name     string
	Size     int
	Sentinel int
}

// Tables holds the forward (pin index -> GPIO) and reverse
// (GPIO -> pin index) arrays.
type Tables struct {
	Forward []int
	Reverse []int
}

// Duplicate records an earlier mapping evicted by a later one.
type Duplicate struct {
	Line     int
	PrevLine int
	Key      string
	Value    int
}

// Check rejects mappings that do not fit the tables and resolves
// duplicates. A later mapping evicts every earlier one sharing its pin
// index or its GPIO, so the surviving set is injective both ways.
// Repeating a mapping verbatim is not reported. With strict set the first
// conflicting duplicate is returned as a *DuplicateMappingError.
func Check(ms []Mapping, fwd, rev TableSpec, strict bool) ([]Mapping, []Duplicate, error) {
	for _, m := range ms {
		if hi := upper(fwd.Size); m.Index < 0 || m.Index > hi {
			return nil, nil, &RangeError{Line: m.Line, What: KeyIndex, Value: m.Index, Min: 0, Max: hi}
		}
		if hi := upper(rev.Size); m.GPIO < 0 || m.GPIO > hi {
			return nil, nil, &RangeError{Line: m.Line, What: KeyGPIO, Value: m.GPIO, Min: 0, Max: hi}
		}
		if m.GPIO == fwd.Sentinel {
			return nil, nil, &SentinelError{Line: m.Line, Table: fwd.Name, Value: m.GPIO, Sentinel: fwd.Sentinel}
		}
		if m.Index == rev.Sentinel {
			return nil, nil, &SentinelError{Line: m.Line, Table: rev.Name, Value: m.Index, Sentinel: rev.Sentinel}
		}
	}
	return resolve(ms, strict)
}

func upper(size int) int {
	if size-1 > MaxValue {
		return MaxValue
	}
	return size - 1
}

func resolve(ms []Mapping, strict bool) ([]Mapping, []Duplicate, error) {
	alive := make([]bool, len(ms))
	byIndex := make(map[int]int)
	byGPIO := make(map[int]int)
	var dups []Duplicate

	evict := func(j int) {
		alive[j] = false
		delete(byIndex, ms[j].Index)
		delete(byGPIO, ms[j].GPIO)
	}

	for i, m := range ms {
		if j, ok := byIndex[m.Index]; ok {
			if ms[j].GPIO != m.GPIO {
				d := Duplicate{Line: m.Line, PrevLine: ms[j].Line, Key: KeyIndex, Value: m.Index}
				if strict {
					return nil, nil, &DuplicateMappingError{d}
				}
				dups = append(dups, d)
			}
			evict(j)
		}
		if j, ok := byGPIO[m.GPIO]; ok {
			d := Duplicate{Line: m.Line, PrevLine: ms[j].Line, Key: KeyGPIO, Value: m.GPIO}
			if strict {
				return nil, nil, &DuplicateMappingError{d}
			}
			dups = append(dups, d)
			evict(j)
		}
		alive[i] = true
		byIndex[m.Index] = i
		byGPIO[m.GPIO] = i
	}

	out := make([]Mapping, 0, len(byIndex))
	for i, m := range ms {
		if alive[i] {
			out = append(out, m)
		}
	}
	return out, dups, nil
}

// Build fills both tables from mappings that passed Check. Every slot
// not covered by a mapping holds the table's sentinel.
func Build(ms []Mapping, fwd, rev TableSpec) *Tables {
	t := &Tables{
		Forward: filled(fwd.Size, fwd.Sentinel),
		Reverse: filled(rev.Size, rev.Sentinel),
	}
	for _, m := range ms {
		t.Forward[m.Index] = m.GPIO
		t.Reverse[m.GPIO] = m.Index
	}
	return t
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}
