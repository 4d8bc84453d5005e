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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	poolCollectorName     = "pools"
	topologyCollectorName = "topology"
)

// PoolStats describes the usage of one address pool.
type PoolStats struct {
	Name      string
	Allocated int
	Free      uint64
}

// Stats is a snapshot of the emulator.
type Stats struct {
	// Phase is empty before the first build step.
	Phase             string
	NetworkElements   int
	TerminationPoints map[string]int
	CrossConnects     int
	// Links maps topology names to their realized link count.
	Links map[string]int
	Pools []PoolStats
}

// StatsSource provides snapshots to the collectors.
type StatsSource interface {
	Stats() Stats
}

type poolCollector struct {
	allocated gaugeDesc
	free      gaugeDesc
	source    StatsSource
}

func newPoolCollector(source StatsSource) *poolCollector {
	return &poolCollector{
		allocated: newGaugeDesc(poolCollectorName, "allocated", "The number of entries allocated from an address pool.", "pool"),
		free:      newGaugeDesc(poolCollectorName, "free", "The number of entries still available in an address pool.", "pool"),
		source:    source,
	}
}

func (c *poolCollector) Update(ch chan<- prometheus.Metric) error {
	stats := c.source.Stats()
	if len(stats.Pools) == 0 {
		return ErrNoData
	}
	for _, pool := range stats.Pools {
		ch <- c.allocated.metric(float64(pool.Allocated), pool.Name)
		ch <- c.free.metric(float64(pool.Free), pool.Name)
	}
	return nil
}

type topologyCollector struct {
	networkElements   gaugeDesc
	terminationPoints gaugeDesc
	crossConnects     gaugeDesc
	links             gaugeDesc
	phase             gaugeDesc
	source            StatsSource
}

func newTopologyCollector(source StatsSource) *topologyCollector {
	gauge := func(name, help string, labels ...string) gaugeDesc {
		return newGaugeDesc(topologyCollectorName, name, help, labels...)
	}
	return &topologyCollector{
		networkElements:   gauge("network_elements", "The number of emulated network elements."),
		terminationPoints: gauge("termination_points", "The number of termination points per layer.", "layer"),
		crossConnects:     gauge("cross_connects", "The number of Ethernet cross connects."),
		links:             gauge("links", "The number of realized links per topology.", "topology"),
		phase:             gauge("phase", "The build phase the emulator reached.", "phase"),
		source:            source,
	}
}

func (c *topologyCollector) Update(ch chan<- prometheus.Metric) error {
	stats := c.source.Stats()
	if stats.Phase == "" {
		return ErrNoData
	}
	ch <- c.phase.metric(1, stats.Phase)
	ch <- c.networkElements.metric(float64(stats.NetworkElements))
	ch <- c.crossConnects.metric(float64(stats.CrossConnects))
	for layer, count := range stats.TerminationPoints {
		ch <- c.terminationPoints.metric(float64(count), layer)
	}
	for topology, count := range stats.Links {
		ch <- c.links.metric(float64(count), topology)
	}
	return nil
}
