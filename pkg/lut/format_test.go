// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatTable(t *testing.T) {
	got := string(FormatTable("g_test", []int{0, 38, 128, 5, 7}, Style{RowWidth: 2}))
	want := "const unsigned char g_test[5] = {\n" +
		"\t  0,  38,\n" +
		"\t128,   5,\n" +
		"\t  7\n" +
		"}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FormatTable mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatTableEmpty(t *testing.T) {
	got := string(FormatTable("g_empty", nil, Style{}))
	want := "const unsigned char g_empty[0] = {\n}\n"
	if got != want {
		t.Errorf("FormatTable(nil) = %q, want %q", got, want)
	}
}

func TestFormatTableElementType(t *testing.T) {
	got := string(FormatTable("lut", []int{1}, Style{ElementType: "static const uint8_t"}))
	if !strings.HasPrefix(got, "static const uint8_t lut[1] = {\n") {
		t.Errorf("unexpected declaration: %q", got)
	}
}

func TestFormatTableShape(t *testing.T) {
	for _, l := range []int{1, 13, 14, 15, 28, 93, 118, 128} {
		for _, r := range []int{1, 5, 14, 200} {
			values := make([]int, l)
			for i := range values {
				values[i] = i % 256
			}
			out := string(FormatTable("x", values, Style{RowWidth: r}))
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			rows := lines[1 : len(lines)-1]

			if want := (l + r - 1) / r; len(rows) != want {
				t.Errorf("L=%d R=%d: %d rows, want %d", l, r, len(rows), want)
			}
			commas := 0
			for i, row := range rows {
				if !strings.HasPrefix(row, "\t") {
					t.Errorf("L=%d R=%d: row %d not tab indented", l, r, i)
				}
				fields := strings.Split(strings.TrimSuffix(row[1:], ","), ", ")
				if len(fields) > r {
					t.Errorf("L=%d R=%d: row %d has %d fields", l, r, i, len(fields))
				}
				for _, f := range fields {
					if len(f) != 3 {
						t.Errorf("L=%d R=%d: field %q is not 3 wide", l, r, f)
					}
				}
				commas += strings.Count(row, ",")
			}
			if commas != l-1 {
				t.Errorf("L=%d R=%d: %d commas, want %d", l, r, commas, l-1)
			}
			if strings.HasSuffix(rows[len(rows)-1], ",") {
				t.Errorf("L=%d R=%d: trailing comma", l, r)
			}
			if lines[len(lines)-1] != "}" {
				t.Errorf("L=%d R=%d: last line %q", l, r, lines[len(lines)-1])
			}
		}
	}
}

func TestFormatTableDeterministic(t *testing.T) {
	values := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 255, 128, 64, 32, 16}
	a := FormatTable("same", values, Style{})
	b := FormatTable("same", values, Style{})
	if !bytes.Equal(a, b) {
		t.Errorf("output differs between runs:\n%s\n%s", a, b)
	}
}
