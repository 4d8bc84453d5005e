/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package monitoring exposes the state of a running emulator as Prometheus
// metrics.
package monitoring

import (
	"errors"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wte"

var (
	scrapeDurationDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "scrape", "collector_duration_seconds"),
		"Seconds a collector took to report its metrics.",
		[]string{"collector"},
		nil,
	)
	scrapeSuccessDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "scrape", "collector_success"),
		"Whether a collector reported metrics on the last scrape.",
		[]string{"collector"},
		nil,
	)
)

// gaugeDesc pairs a descriptor with the value type of the metrics built
// from it.
type gaugeDesc struct {
	desc      *prometheus.Desc
	valueType prometheus.ValueType
}

func newGaugeDesc(subsystem, name, help string, labels ...string) gaugeDesc {
	return gaugeDesc{
		desc:      prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, name), help, labels, nil),
		valueType: prometheus.GaugeValue,
	}
}

func (d gaugeDesc) metric(value float64, labels ...string) prometheus.Metric {
	return prometheus.MustNewConstMetric(d.desc, d.valueType, value, labels...)
}

// Collector reports one group of emulator metrics. Update returns ErrNoData
// when there is nothing to report yet.
type Collector interface {
	Update(ch chan<- prometheus.Metric) error
}

// ErrNoData indicates the collector found no data to collect, but had no other error.
var ErrNoData = errors.New("collector returned no data")

func IsNoDataError(err error) bool {
	return errors.Is(err, ErrNoData)
}

// EmulatorCollector runs all emulator collectors on every scrape and reports
// their duration and outcome.
type EmulatorCollector struct {
	Collectors map[string]Collector
	logger     logr.Logger
}

// NewEmulatorCollector creates the collectors reading from source.
func NewEmulatorCollector(source StatsSource, logger logr.Logger) *EmulatorCollector {
	return &EmulatorCollector{
		Collectors: map[string]Collector{
			poolCollectorName:     newPoolCollector(source),
			topologyCollectorName: newTopologyCollector(source),
		},
		logger: logger.WithName("collector"),
	}
}

func (*EmulatorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- scrapeDurationDesc
	ch <- scrapeSuccessDesc
}

func (ec *EmulatorCollector) Collect(ch chan<- prometheus.Metric) {
	var wg sync.WaitGroup
	for name, c := range ec.Collectors {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ec.scrape(name, c, ch)
		}()
	}
	wg.Wait()
}

func (ec *EmulatorCollector) scrape(name string, c Collector, ch chan<- prometheus.Metric) {
	start := time.Now()
	err := c.Update(ch)
	elapsed := time.Since(start).Seconds()

	success := 1.0
	switch {
	case err == nil:
	case IsNoDataError(err):
		success = 0
		ec.logger.V(1).Info("nothing to collect", "collector", name, "seconds", elapsed)
	default:
		success = 0
		ec.logger.Error(err, "error collecting metrics", "collector", name, "seconds", elapsed)
	}
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, elapsed, name)
	ch <- prometheus.MustNewConstMetric(scrapeSuccessDesc, prometheus.GaugeValue, success, name)
}
