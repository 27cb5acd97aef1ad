// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/u-root/pinlut/config"
)

type options struct {
	preset      string
	configFile  string
	in          string
	out         string
	metricsFile string
	logFile     string
	verbose     bool
	listPresets bool

	// Overrides, only applied when set on the command line.
	format          string
	pinsPerHeader   int
	headers         headerFlag
	forwardName     string
	forwardSize     int
	forwardSentinel int
	reverseName     string
	reverseSize     int
	reverseSentinel int
	rowWidth        int
	elementType     string
	emit            string
	strict          bool

	set map[string]bool
}

// headerFlag parses label=slot pairs, e.g. 8=0,9=1.
type headerFlag map[string]int

func (h *headerFlag) String() string {
	if h == nil || *h == nil {
		return ""
	}
	var p []string
	for k, v := range *h {
		p = append(p, fmt.Sprintf("%s=%d", k, v))
	}
	return strings.Join(p, ",")
}

func (h *headerFlag) Set(s string) error {
	m := make(map[string]int)
	for _, kv := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(kv), "=")
		if !ok || k == "" {
			return fmt.Errorf("want label=slot, got %q", kv)
		}
		slot, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("slot for header %q: %v", k, err)
		}
		m[k] = slot
	}
	*h = m
	return nil
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	f := flag.NewFlagSet("pinlut", flag.ContinueOnError)
	f.SetOutput(stderr)

	f.StringVar(&o.preset, "preset", "", "Named table variant to start from, see -list-presets")
	f.StringVar(&o.configFile, "config", "", "YAML file applied on top of the preset")
	f.StringVar(&o.in, "in", "", "Pin mapping input file (default stdin)")
	f.StringVar(&o.out, "o", "", "Write tables to this file instead of stdout")
	f.StringVar(&o.metricsFile, "metrics-textfile", "", "Write generation metrics to this node exporter textfile")
	f.StringVar(&o.logFile, "log-file", "", "Also write JSON logs to this file")
	f.BoolVar(&o.verbose, "v", false, "Log debug messages")
	f.BoolVar(&o.listPresets, "list-presets", false, "List preset names and exit")

	f.StringVar(&o.format, "format", "", "Input format: delimited or ordinal")
	f.IntVar(&o.pinsPerHeader, "pins-per-header", 0, "Pins on each header")
	f.Var(&o.headers, "headers", "Header label to slot map, e.g. 8=0,9=1")
	f.StringVar(&o.forwardName, "forward-name", "", "Identifier of the pin index to GPIO table")
	f.IntVar(&o.forwardSize, "forward-size", 0, "Length of the pin index to GPIO table")
	f.IntVar(&o.forwardSentinel, "forward-sentinel", 0, "Unmapped marker in the pin index to GPIO table")
	f.StringVar(&o.reverseName, "reverse-name", "", "Identifier of the GPIO to pin index table")
	f.IntVar(&o.reverseSize, "reverse-size", 0, "Length of the GPIO to pin index table")
	f.IntVar(&o.reverseSentinel, "reverse-sentinel", 0, "Unmapped marker in the GPIO to pin index table")
	f.IntVar(&o.rowWidth, "row-width", 0, "Elements per output row")
	f.StringVar(&o.elementType, "element-type", "", "C type of the table elements")
	f.StringVar(&o.emit, "emit", "", "Tables to write: forward, reverse or both")
	f.BoolVar(&o.strict, "strict", false, "Fail on conflicting duplicate mappings instead of keeping the last")

	if err := f.Parse(args); err != nil {
		return nil, err
	}
	if f.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", f.Args())
	}
	o.set = make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { o.set[fl.Name] = true })
	return o, nil
}

// apply copies every explicitly set override into c.
func (o *options) apply(c *config.Config) {
	overrides := []struct {
		flag string
		fn   func()
	}{
		{"format", func() { c.Format = o.format }},
		{"pins-per-header", func() { c.PinsPerHeader = o.pinsPerHeader }},
		{"headers", func() { c.Headers = o.headers }},
		{"forward-name", func() { c.Forward.Name = o.forwardName }},
		{"forward-size", func() { c.Forward.Size = o.forwardSize }},
		{"forward-sentinel", func() { c.Forward.Sentinel = o.forwardSentinel }},
		{"reverse-name", func() { c.Reverse.Name = o.reverseName }},
		{"reverse-size", func() { c.Reverse.Size = o.reverseSize }},
		{"reverse-sentinel", func() { c.Reverse.Sentinel = o.reverseSentinel }},
		{"row-width", func() { c.Output.RowWidth = o.rowWidth }},
		{"element-type", func() { c.Output.ElementType = o.elementType }},
		{"emit", func() { c.Output.Emit = o.emit }},
		{"strict", func() { c.Strict = o.strict }},
	}
	for _, ov := range overrides {
		if o.set[ov.flag] {
			ov.fn()
		}
	}
}
