package monitoring

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
)

func TestMonitoring(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t,
		"Monitoring Suite")
}

type fakeSource struct {
	stats Stats
}

func (f *fakeSource) Stats() Stats {
	return f.stats
}

func collect(c prometheus.Collector) []prometheus.Metric {
	ch := make(chan prometheus.Metric, 64)
	c.Collect(ch)
	close(ch)
	result := []prometheus.Metric{}
	for m := range ch {
		result = append(result, m)
	}
	return result
}

var running = Stats{
	Phase:             "ResourcesRealized",
	NetworkElements:   2,
	TerminationPoints: map[string]int{"MWPS": 2, "ETH": 3},
	CrossConnects:     1,
	Links:             map[string]int{"mwps": 1, "eth": 1},
	Pools: []PoolStats{
		{Name: "management", Allocated: 2, Free: 16382},
		{Name: "interface", Allocated: 1, Free: 16383},
	},
}

var _ = Describe("EmulatorCollector", func() {
	It("exports pool and topology metrics", func() {
		collector := NewEmulatorCollector(&fakeSource{stats: running}, logr.Discard())
		// 4 pool + 1 phase + 2 counts + 2 layers + 2 topologies + 2x2 scrape metrics
		Expect(collect(collector)).To(HaveLen(15))
	})

	It("reports no data before the first build step", func() {
		collector := NewEmulatorCollector(&fakeSource{}, logr.Discard())
		metrics := collect(collector)
		Expect(metrics).To(HaveLen(4))
		for _, m := range metrics {
			Expect([]*prometheus.Desc{scrapeDurationDesc, scrapeSuccessDesc}).To(ContainElement(m.Desc()))
		}
	})

	It("serves the registry over http", func() {
		reg := NewRegistry(NewEmulatorCollector(&fakeSource{stats: running}, logr.Discard()))
		server := httptest.NewServer(NewMux(reg))
		defer server.Close()

		resp, err := http.Get(server.URL + "/metrics")
		Expect(err).ToNot(HaveOccurred())
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(body)).To(ContainSubstring(`wte_pools_allocated{pool="management"} 2`))
		Expect(string(body)).To(ContainSubstring(`wte_topology_links{topology="mwps"} 1`))
		Expect(string(body)).To(ContainSubstring(`wte_topology_phase{phase="ResourcesRealized"} 1`))
	})
})
