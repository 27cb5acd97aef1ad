// Copyright 2021 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"bytes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/afero"

	"github.com/u-root/pinlut/pkg/atomicfile"
)

// MetricOpts contains naming pieces of the exposed metric
type MetricOpts struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string
}

// Registry is a private prometheus registry. A generator run is a short
// lived process, so metrics are written out as a textfile for the node
// exporter instead of being scraped.
type Registry struct {
	reg *prometheus.Registry
}

func NewRegistry() *Registry {
	return &Registry{reg: prometheus.NewRegistry()}
}

// Counter creates, registers and returns a prometheus.CounterVec
func (r *Registry) Counter(opts MetricOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      opts.Name,
		Help:      help(opts),
	}, labels)
	r.reg.MustRegister(c)
	return c
}

// Gauge creates, registers and returns a prometheus.GaugeVec
func (r *Registry) Gauge(opts MetricOpts, labels []string) *prometheus.GaugeVec {
	g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      opts.Name,
		Help:      help(opts),
	}, labels)
	r.reg.MustRegister(g)
	return g
}

func help(opts MetricOpts) string {
	if opts.Help != "" {
		return opts.Help
	}
	return opts.Name
}

// WriteText encodes every registered metric in the text exposition format.
func (r *Registry) WriteText() ([]byte, error) {
	mfs, err := r.reg.Gather()
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(&b, mf); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}

// WriteTextfile writes the metrics to path. The file is replaced
// atomically so a collector never reads a half written file.
func (r *Registry) WriteTextfile(fs afero.Fs, path string) error {
	b, err := r.WriteText()
	if err != nil {
		return err
	}
	return atomicfile.Write(fs, path, b, 0644)
}
