// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/u-root/pinlut/pkg/lut"
)

type Table struct {
	Name     string `yaml:"name"`
	Size     int    `yaml:"size"`
	Sentinel int    `yaml:"sentinel"`
}

type Output struct {
	RowWidth    int    `yaml:"row_width"`
	ElementType string `yaml:"element_type"`
	Emit        string `yaml:"emit"`
}

type Config struct {
	Format        string         `yaml:"format"`
	PinsPerHeader int            `yaml:"pins_per_header"`
	Headers       map[string]int `yaml:"headers"`
	Forward       Table          `yaml:"forward"`
	Reverse       Table          `yaml:"reverse"`
	Strict        bool           `yaml:"strict"`
	Output        Output         `yaml:"output"`
}

var DefaultConfig = &Config{
	Format: "delimited",

	// Two headers is what every board this has been used on has. Boards
	// with other labels supply their own map through a preset or a config
	// file.
	PinsPerHeader: 46,
	Headers:       map[string]int{"8": 0, "9": 1},

	// Forward tables are indexed by pin index and hold GPIO numbers,
	// reverse tables the other way around. The sentinel marks an unmapped
	// slot; a mapping whose value equals the sentinel is rejected.
	Forward: Table{Name: "g_pin_to_gpio", Size: 93, Sentinel: 0},
	Reverse: Table{Name: "g_gpio_to_pin", Size: 128, Sentinel: 0},

	Output: Output{
		RowWidth:    lut.DefaultRowWidth,
		ElementType: lut.DefaultElementType,
		Emit:        "both",
	},
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	n := *c
	n.Headers = make(map[string]int, len(c.Headers))
	for k, v := range c.Headers {
		n.Headers[k] = v
	}
	return &n
}

// Validate reports every problem with c at once.
func (c *Config) Validate() error {
	var errs *multierror.Error

	f, err := lut.ParseFormat(c.Format)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	if f == lut.FormatDelimited {
		if c.PinsPerHeader < 1 {
			errs = multierror.Append(errs, fmt.Errorf("pins_per_header must be positive, got %d", c.PinsPerHeader))
		}
		if len(c.Headers) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("headers must map at least one header label"))
		}
		seen := make(map[int]string)
		for _, h := range lut.HeaderMap(c.Headers).Labels() {
			// Record headers are compared in canonical decimal form.
			if n, err := strconv.Atoi(h); err != nil || n < 0 {
				errs = multierror.Append(errs, fmt.Errorf("header label %q is not a decimal header number", h))
			} else if s := strconv.Itoa(n); s != h {
				errs = multierror.Append(errs, fmt.Errorf("header label %q must be written as %q", h, s))
			}
			slot := c.Headers[h]
			if slot < 0 {
				errs = multierror.Append(errs, fmt.Errorf("header %q has negative slot %d", h, slot))
			}
			if prev, ok := seen[slot]; ok {
				errs = multierror.Append(errs, fmt.Errorf("headers %q and %q share slot %d", prev, h, slot))
			}
			seen[slot] = h
		}
	}
	if f == lut.FormatOrdinal && err == nil && c.Reverse.Sentinel < c.Forward.Size {
		// Ordinal pin indexes run 0..Forward.Size-1.
		errs = multierror.Append(errs, fmt.Errorf("reverse table sentinel %d is a valid pin index below forward size %d", c.Reverse.Sentinel, c.Forward.Size))
	}

	for _, t := range []struct {
		which string
		t     Table
	}{{"forward", c.Forward}, {"reverse", c.Reverse}} {
		if t.t.Name == "" {
			errs = multierror.Append(errs, fmt.Errorf("%s table needs a name", t.which))
		}
		if t.t.Size < 1 {
			errs = multierror.Append(errs, fmt.Errorf("%s table size must be positive, got %d", t.which, t.t.Size))
		}
		if t.t.Sentinel < 0 || t.t.Sentinel > lut.MaxValue {
			errs = multierror.Append(errs, fmt.Errorf("%s table sentinel %d outside [0, %d]", t.which, t.t.Sentinel, lut.MaxValue))
		}
	}

	if c.Output.RowWidth < 1 {
		errs = multierror.Append(errs, fmt.Errorf("row_width must be positive, got %d", c.Output.RowWidth))
	}
	if c.Output.ElementType == "" {
		errs = multierror.Append(errs, fmt.Errorf("element_type must not be empty"))
	}
	if _, err := lut.ParseEmit(c.Output.Emit); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}

// Generator validates c and returns the pipeline it describes.
func (c *Config) Generator(log *zap.SugaredLogger) (*lut.Generator, lut.Emit, error) {
	if err := c.Validate(); err != nil {
		return nil, 0, err
	}
	f, _ := lut.ParseFormat(c.Format)
	e, _ := lut.ParseEmit(c.Output.Emit)
	return &lut.Generator{
		Format: f,
		Normalizer: lut.Normalizer{
			PinsPerHeader: c.PinsPerHeader,
			Headers:       lut.HeaderMap(c.Clone().Headers),
		},
		Forward: lut.TableSpec(c.Forward),
		Reverse: lut.TableSpec(c.Reverse),
		Strict:  c.Strict,
		Style: lut.Style{
			RowWidth:    c.Output.RowWidth,
			ElementType: c.Output.ElementType,
		},
		Log: log,
	}, e, nil
}
