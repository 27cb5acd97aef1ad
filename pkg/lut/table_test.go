// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	fwd93  = TableSpec{Name: "g_pin_real_to_gpio", Size: 93, Sentinel: 0}
	rev128 = TableSpec{Name: "g_gpio_to_pin_real", Size: 128, Sentinel: 0}
)

func TestBuildSizes(t *testing.T) {
	for _, ms := range [][]Mapping{
		nil,
		{{Line: 1, Index: 3, GPIO: 38}},
		{{Line: 1, Index: 3, GPIO: 38}, {Line: 2, Index: 67, GPIO: 3}, {Line: 3, Index: 92, GPIO: 127}},
	} {
		tb := Build(ms, fwd93, rev128)
		if len(tb.Forward) != 93 || len(tb.Reverse) != 128 {
			t.Errorf("%d mappings: got sizes %d/%d, want 93/128", len(ms), len(tb.Forward), len(tb.Reverse))
		}
	}
}

func TestBuildRoundTrip(t *testing.T) {
	ms := []Mapping{{1, 3, 38}, {2, 67, 3}, {3, 92, 127}, {4, 47, 1}}
	tb := Build(ms, fwd93, rev128)
	mappedIdx := map[int]bool{}
	mappedGPIO := map[int]bool{}
	for _, m := range ms {
		if tb.Forward[m.Index] != m.GPIO {
			t.Errorf("Forward[%d] = %d, want %d", m.Index, tb.Forward[m.Index], m.GPIO)
		}
		if tb.Reverse[m.GPIO] != m.Index {
			t.Errorf("Reverse[%d] = %d, want %d", m.GPIO, tb.Reverse[m.GPIO], m.Index)
		}
		mappedIdx[m.Index] = true
		mappedGPIO[m.GPIO] = true
	}
	for i, v := range tb.Forward {
		if !mappedIdx[i] && v != fwd93.Sentinel {
			t.Errorf("unmapped Forward[%d] = %d, want sentinel", i, v)
		}
	}
	for i, v := range tb.Reverse {
		if !mappedGPIO[i] && v != rev128.Sentinel {
			t.Errorf("unmapped Reverse[%d] = %d, want sentinel", i, v)
		}
	}
}

func TestCheckLastWins(t *testing.T) {
	ms := []Mapping{{1, 3, 38}, {2, 3, 40}}
	eff, dups, err := Check(ms, fwd93, rev128, false)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if diff := cmp.Diff([]Mapping{{2, 3, 40}}, eff); diff != "" {
		t.Errorf("effective mappings (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Duplicate{{Line: 2, PrevLine: 1, Key: KeyIndex, Value: 3}}, dups); diff != "" {
		t.Errorf("duplicates (-want +got):\n%s", diff)
	}

	tb := Build(eff, fwd93, rev128)
	if tb.Forward[3] != 40 {
		t.Errorf("Forward[3] = %d, want 40", tb.Forward[3])
	}
	if tb.Reverse[40] != 3 {
		t.Errorf("Reverse[40] = %d, want 3", tb.Reverse[40])
	}
	if tb.Reverse[38] != rev128.Sentinel {
		t.Errorf("Reverse[38] = %d, want sentinel after eviction", tb.Reverse[38])
	}
}

func TestCheckGPIODuplicate(t *testing.T) {
	ms := []Mapping{{1, 3, 38}, {2, 4, 38}, {3, 5, 39}}
	eff, dups, err := Check(ms, fwd93, rev128, false)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if diff := cmp.Diff([]Mapping{{2, 4, 38}, {3, 5, 39}}, eff); diff != "" {
		t.Errorf("effective mappings (-want +got):\n%s", diff)
	}
	if len(dups) != 1 || dups[0].Key != KeyGPIO || dups[0].PrevLine != 1 {
		t.Errorf("duplicates = %+v", dups)
	}
}

func TestCheckIdenticalRepeat(t *testing.T) {
	eff, dups, err := Check([]Mapping{{1, 3, 38}, {2, 3, 38}}, fwd93, rev128, true)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(dups) != 0 || len(eff) != 1 || eff[0].Line != 2 {
		t.Errorf("identical repeat: eff=%+v dups=%+v", eff, dups)
	}
}

func TestCheckStrict(t *testing.T) {
	_, _, err := Check([]Mapping{{1, 3, 38}, {2, 3, 40}}, fwd93, rev128, true)
	var de *DuplicateMappingError
	if !errors.As(err, &de) {
		t.Fatalf("got %v, want DuplicateMappingError", err)
	}
	if de.Line != 2 || de.PrevLine != 1 || de.Key != KeyIndex {
		t.Errorf("DuplicateMappingError = %+v", de)
	}
}

func TestCheckRange(t *testing.T) {
	for _, tc := range []struct {
		m    Mapping
		what string
	}{
		{Mapping{1, 93, 5}, KeyIndex},
		{Mapping{1, -1, 5}, KeyIndex},
		{Mapping{1, 5, 128}, KeyGPIO},
	} {
		_, _, err := Check([]Mapping{tc.m}, fwd93, rev128, false)
		var re *RangeError
		if !errors.As(err, &re) || re.What != tc.what {
			t.Errorf("%+v: got %v, want %s RangeError", tc.m, err, tc.what)
		}
	}

	// Element values are capped at MaxValue even for larger tables.
	big := TableSpec{Name: "big", Size: 1024, Sentinel: 0}
	_, _, err := Check([]Mapping{{1, 1, 300}}, fwd93, big, false)
	var re *RangeError
	if !errors.As(err, &re) || re.Max != MaxValue {
		t.Errorf("gpio 300: got %v, want RangeError capped at %d", err, MaxValue)
	}
}

func TestCheckSentinel(t *testing.T) {
	_, _, err := Check([]Mapping{{7, 3, 0}}, fwd93, rev128, false)
	var se *SentinelError
	if !errors.As(err, &se) || se.Table != fwd93.Name || se.Line != 7 {
		t.Errorf("gpio 0 with sentinel 0: got %v", err)
	}

	rev := TableSpec{Name: "idx", Size: 118, Sentinel: 128}
	fwd := TableSpec{Name: "ord", Size: 130, Sentinel: 255}
	_, _, err = Check([]Mapping{{129, 128, 5}}, fwd, rev, false)
	if !errors.As(err, &se) || se.Table != "idx" {
		t.Errorf("index 128 with sentinel 128: got %v", err)
	}
}
