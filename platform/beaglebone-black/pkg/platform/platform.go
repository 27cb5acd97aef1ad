// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform holds the lookup table variants used by the BeagleBone
// Black firmware.
package platform

import (
	"sort"

	"github.com/u-root/pinlut/config"
	"github.com/u-root/pinlut/pkg/lut"
)

const (
	// P8 and P9 both have 46 pins.
	PinsPerHeader = 46

	// AM335x GPIOs above 117 are not bonded out.
	MaxSafeGpio = 117
)

var headers = map[string]int{
	"8": 0,
	"9": 1,
}

var output = config.Output{
	RowWidth:    lut.DefaultRowWidth,
	ElementType: lut.DefaultElementType,
	Emit:        "both",
}

var presets = map[string]*config.Config{
	// Header pin to GPIO number, input is P<header>_<pin>,<gpio>. Slot 0
	// of each header block is padding for 1-based pin numbers. GPIO 0 is
	// not routed to either header, so 0 is safe as the unmapped marker in
	// both directions.
	"bbb-header-gpio": {
		Format:        "delimited",
		PinsPerHeader: PinsPerHeader,
		Headers:       headers,
		Forward:       config.Table{Name: "g_pin_real_to_gpio", Size: 2*PinsPerHeader + 1, Sentinel: 0},
		Reverse:       config.Table{Name: "g_gpio_to_pin_real", Size: 128, Sentinel: 0},
		Output:        output,
	},
	// Dense GPIO index, input is one GPIO per line in index order.
	"bbb-gpio-index": {
		Format:  "ordinal",
		Forward: config.Table{Name: "g_gpio_lut", Size: 43, Sentinel: 255},
		Reverse: config.Table{Name: "g_pin_gpio_to_index", Size: MaxSafeGpio + 1, Sentinel: 128},
		Output:  output,
	},
	// Older revision of bbb-gpio-index covering the full 128 GPIO range.
	"bbb-gpio-index-128": {
		Format:  "ordinal",
		Forward: config.Table{Name: "g_gpio_lut", Size: 43, Sentinel: 255},
		Reverse: config.Table{Name: "g_pin_gpio_to_index", Size: 128, Sentinel: 128},
		Output:  output,
	},
}

// Preset returns a copy of the named preset.
func Preset(name string) (*config.Config, bool) {
	c, ok := presets[name]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// Presets lists the preset names in sorted order.
func Presets() []string {
	n := make([]string, 0, len(presets))
	for k := range presets {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
