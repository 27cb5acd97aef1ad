// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/u-root/pinlut/pkg/lut"
)

const namespace = "pinlut"

// Generation tracks the outcome of table generation runs.
type Generation struct {
	records    *prometheus.CounterVec
	duplicates *prometheus.CounterVec
	failures   *prometheus.CounterVec
	slots      *prometheus.GaugeVec
}

func NewGeneration(r *Registry) *Generation {
	return &Generation{
		records: r.Counter(MetricOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Input records parsed.",
		}, []string{"format"}),
		duplicates: r.Counter(MetricOpts{
			Namespace: namespace,
			Name:      "duplicate_mappings_total",
			Help:      "Records that replaced an earlier mapping.",
		}, []string{"format"}),
		failures: r.Counter(MetricOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Runs aborted, by pipeline stage.",
		}, []string{"stage"}),
		slots: r.Gauge(MetricOpts{
			Namespace: namespace,
			Subsystem: "table",
			Name:      "slots",
			Help:      "Table slots by state.",
		}, []string{"table", "state"}),
	}
}

// Observe records the statistics of a successful run.
func (g *Generation) Observe(f lut.Format, s lut.Stats) {
	g.records.WithLabelValues(f.String()).Add(float64(s.Records))
	g.duplicates.WithLabelValues(f.String()).Add(float64(s.Duplicates))
	for _, t := range []lut.TableStats{s.Forward, s.Reverse} {
		g.slots.WithLabelValues(t.Name, "mapped").Set(float64(t.Mapped))
		g.slots.WithLabelValues(t.Name, "unmapped").Set(float64(t.Unmapped))
	}
}

// Failed counts a run aborted in stage.
func (g *Generation) Failed(stage lut.Stage) {
	g.failures.WithLabelValues(string(stage)).Inc()
}
