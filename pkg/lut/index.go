// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"sort"
)

// HeaderMap assigns each physical header label a 0-based slot.
type HeaderMap map[string]int

// Labels returns the configured header labels ordered by slot.
func (h HeaderMap) Labels() []string {
	l := make([]string, 0, len(h))
	for k := range h {
		l = append(l, k)
	}
	sort.Slice(l, func(i, j int) bool {
		if h[l[i]] != h[l[j]] {
			return h[l[i]] < h[l[j]]
		}
		return l[i] < l[j]
	})
	return l
}

// Mapping ties a pin index to a GPIO number. Line is the input line the
// mapping came from.
type Mapping struct {
	Line  int
	Index int
	GPIO  int
}

// Normalizer flattens (header, pin) pairs into a single pin index space.
type Normalizer struct {
	PinsPerHeader int
	Headers       HeaderMap
}

// Index returns slot(header)*PinsPerHeader + pin.
func (n Normalizer) Index(header string, pin int) (int, error) {
	slot, ok := n.Headers[header]
	if !ok {
		return 0, &UnknownHeaderError{Header: header}
	}
	return slot*n.PinsPerHeader + pin, nil
}

// Normalize converts delimited records into mappings. Pins must be in
// 1..PinsPerHeader. Pin 0 would alias the last pin of the previous header.
func (n Normalizer) Normalize(recs []PinRecord) ([]Mapping, error) {
	ms := make([]Mapping, 0, len(recs))
	for _, r := range recs {
		idx, err := n.Index(r.Header, r.Pin)
		if err != nil {
			return nil, &UnknownHeaderError{Line: r.Line, Header: r.Header}
		}
		if r.Pin < 1 || r.Pin > n.PinsPerHeader {
			return nil, &RangeError{Line: r.Line, What: "pin", Value: r.Pin, Min: 1, Max: n.PinsPerHeader}
		}
		ms = append(ms, Mapping{Line: r.Line, Index: idx, GPIO: r.GPIO})
	}
	return ms, nil
}

// OrdinalMappings assigns each record its zero-based position as pin index.
func OrdinalMappings(recs []OrdinalRecord) []Mapping {
	ms := make([]Mapping, len(recs))
	for i, r := range recs {
		ms[i] = Mapping{Line: r.Line, Index: i, GPIO: r.GPIO}
	}
	return ms
}
