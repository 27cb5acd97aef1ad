// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pinlut turns a board pin mapping into C lookup tables for firmware.
//
//	pinlut -preset bbb-header-gpio -in pins.csv -o bbb_pin_lut.h
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/u-root/pinlut/config"
	"github.com/u-root/pinlut/pkg/atomicfile"
	"github.com/u-root/pinlut/pkg/logger"
	"github.com/u-root/pinlut/pkg/lut"
	"github.com/u-root/pinlut/pkg/metric"
	"github.com/u-root/pinlut/platform/beaglebone-black/pkg/platform"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	o, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if o.listPresets {
		for _, n := range platform.Presets() {
			fmt.Println(n)
		}
		return 0
	}

	fs := afero.NewOsFs()
	logger.LogContainer.Configure(logger.Options{File: o.logFile, Fs: fs, Debug: o.verbose})
	log := logger.LogContainer.GetSimpleLogger()
	defer logger.LogContainer.Close()

	if err := run(o, fs, os.Stdin, os.Stdout, log); err != nil {
		log.Errorf("%v", err)
		return 1
	}
	return 0
}

// resolveConfig layers DefaultConfig, the preset, the config file and the
// command line overrides, in that order.
func resolveConfig(o *options, fs afero.Fs) (*config.Config, error) {
	c := config.DefaultConfig.Clone()
	if o.preset != "" {
		p, ok := platform.Preset(o.preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q, have %v", o.preset, platform.Presets())
		}
		c = p
	}
	if o.configFile != "" {
		var err error
		if c, err = config.Load(fs, o.configFile, c); err != nil {
			return nil, err
		}
	}
	o.apply(c)
	return c, nil
}

func run(o *options, fs afero.Fs, stdin io.Reader, stdout io.Writer, log *zap.SugaredLogger) error {
	var gen *metric.Generation
	reg := metric.NewRegistry()
	if o.metricsFile != "" {
		gen = metric.NewGeneration(reg)
	}

	out, err := generate(o, fs, stdin, log, gen)
	if err != nil {
		var se *lut.StageError
		if gen != nil && errors.As(err, &se) {
			gen.Failed(se.Stage)
		}
	} else if o.out == "" {
		if _, werr := stdout.Write(out); werr != nil {
			err = &lut.StageError{Stage: lut.StageWrite, Path: "stdout", Err: werr}
		}
	} else if werr := atomicfile.Write(fs, o.out, out, 0644); werr != nil {
		err = &lut.StageError{Stage: lut.StageWrite, Path: o.out, Err: werr}
	} else {
		log.Infof("Wrote %s", o.out)
	}

	if gen != nil {
		if merr := reg.WriteTextfile(fs, o.metricsFile); merr != nil {
			log.Errorf("Failed to write metrics to %s: %v", o.metricsFile, merr)
		}
	}
	return err
}

// generate returns the rendered tables. Nothing is written until every
// stage has succeeded.
func generate(o *options, fs afero.Fs, stdin io.Reader, log *zap.SugaredLogger, gen *metric.Generation) ([]byte, error) {
	c, err := resolveConfig(o, fs)
	if err != nil {
		return nil, err
	}
	g, emit, err := c.Generator(log)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	in, path := stdin, "stdin"
	if o.in != "" {
		f, err := fs.Open(o.in)
		if err != nil {
			return nil, &lut.StageError{Stage: lut.StageRead, Path: o.in, Err: err}
		}
		defer f.Close()
		in, path = f, o.in
	}

	res, err := g.Generate(in, path)
	if err != nil {
		return nil, err
	}
	log.Infow("Generated tables",
		"input", path,
		"format", g.Format.String(),
		"records", res.Stats.Records,
		"duplicates", res.Stats.Duplicates,
		"mapped", len(res.Mappings))
	if gen != nil {
		gen.Observe(g.Format, res.Stats)
	}
	return res.Render(emit), nil
}
