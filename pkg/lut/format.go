// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"bytes"
	"fmt"
	"io"
)

const (
	DefaultRowWidth    = 14
	DefaultElementType = "const unsigned char"
)

// Style controls how a table is rendered.
type Style struct {
	RowWidth    int
	ElementType string
}

func (s Style) withDefaults() Style {
	if s.RowWidth <= 0 {
		s.RowWidth = DefaultRowWidth
	}
	if s.ElementType == "" {
		s.ElementType = DefaultElementType
	}
	return s
}

// WriteTable renders values as a C array declaration:
//
//	const unsigned char name[3] = {
//		  1,   2,   3
//	}
func WriteTable(w io.Writer, name string, values []int, st Style) error {
	st = st.withDefaults()
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s[%d] = {\n", st.ElementType, name, len(values))
	for low := 0; low < len(values); low += st.RowWidth {
		high := low + st.RowWidth
		if high > len(values) {
			high = len(values)
		}
		b.WriteByte('\t')
		for i, v := range values[low:high] {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%3d", v)
		}
		if high < len(values) {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

// FormatTable is WriteTable into a fresh buffer.
func FormatTable(name string, values []int, st Style) []byte {
	var b bytes.Buffer
	// bytes.Buffer writes do not fail.
	_ = WriteTable(&b, name, values, st)
	return b.Bytes()
}
