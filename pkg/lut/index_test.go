// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var bbb = Normalizer{PinsPerHeader: 46, Headers: HeaderMap{"8": 0, "9": 1}}

func TestIndex(t *testing.T) {
	for _, tc := range []struct {
		header string
		pin    int
		want   int
	}{
		{"8", 3, 3},
		{"8", 46, 46},
		{"9", 1, 47},
		{"9", 21, 67},
		{"9", 46, 92},
	} {
		got, err := bbb.Index(tc.header, tc.pin)
		if err != nil {
			t.Fatalf("Index(%s, %d): %v", tc.header, tc.pin, err)
		}
		if got != tc.want {
			t.Errorf("P%s_%d did not resolve to %d, got %d", tc.header, tc.pin, tc.want, got)
		}
		again, _ := bbb.Index(tc.header, tc.pin)
		if again != got {
			t.Errorf("Index(%s, %d) is not stable: %d then %d", tc.header, tc.pin, got, again)
		}
	}
}

func TestIndexUnknownHeader(t *testing.T) {
	_, err := bbb.Index("7", 1)
	var he *UnknownHeaderError
	if !errors.As(err, &he) || he.Header != "7" {
		t.Errorf("Index(7, 1) = %v, want UnknownHeaderError", err)
	}
}

func TestNormalize(t *testing.T) {
	got, err := bbb.Normalize([]PinRecord{
		{Line: 1, Header: "8", Pin: 3, GPIO: 38},
		{Line: 2, Header: "9", Pin: 21, GPIO: 3},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := []Mapping{{Line: 1, Index: 3, GPIO: 38}, {Line: 2, Index: 67, GPIO: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeErrors(t *testing.T) {
	_, err := bbb.Normalize([]PinRecord{{Line: 4, Header: "10", Pin: 1, GPIO: 1}})
	var he *UnknownHeaderError
	if !errors.As(err, &he) || he.Line != 4 {
		t.Errorf("unknown header: got %v", err)
	}

	for _, pin := range []int{0, 47} {
		_, err := bbb.Normalize([]PinRecord{{Line: 5, Header: "8", Pin: pin, GPIO: 1}})
		var re *RangeError
		if !errors.As(err, &re) || re.Line != 5 || re.What != "pin" {
			t.Errorf("pin %d: got %v, want pin RangeError", pin, err)
		}
	}
}

func TestOrdinalMappings(t *testing.T) {
	got := OrdinalMappings([]OrdinalRecord{{1, 30}, {2, 31}, {3, 128}})
	want := []Mapping{{1, 0, 30}, {2, 1, 31}, {3, 2, 128}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OrdinalMappings mismatch (-want +got):\n%s", diff)
	}
}

func TestHeaderLabels(t *testing.T) {
	got := HeaderMap{"9": 1, "8": 0, "P1": 2}.Labels()
	if diff := cmp.Diff([]string{"8", "9", "P1"}, got); diff != "" {
		t.Errorf("Labels mismatch (-want +got):\n%s", diff)
	}
}
