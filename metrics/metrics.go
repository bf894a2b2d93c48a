// Package metrics exports selector cache counters to the host's
// observability stack: a process-local expvar snapshot for deployments
// without external dependencies, and a prometheus.Collector for those with
// a scrape pipeline. Registration and serving stay the host's business;
// this package only shapes the numbers.
package metrics

import (
	"expvar"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/on-the-ground/select_ive_go/selectors"
)

// Source is a named selector cache whose counters get exported. Every
// selector instance in the views catalog satisfies it.
type Source interface {
	Name() string
	Stats() selectors.Stats
}

// SourcesOf widens a slice of concrete caches to []Source.
func SourcesOf[T Source](caches []T) []Source {
	out := make([]Source, len(caches))
	for i, c := range caches {
		out[i] = c
	}
	return out
}

// Snapshot is the read-only view the expvar publisher renders. Unnamed
// sources are skipped; names collide last-writer-wins.
type Snapshot struct {
	Caches     map[string]selectors.Stats `json:"caches"`
	RecordedAt time.Time                  `json:"recorded_at"`
}

func snapshot(sources func() []Source) Snapshot {
	srcs := sources()
	caches := make(map[string]selectors.Stats, len(srcs))
	for _, src := range srcs {
		if src.Name() == "" {
			continue
		}
		caches[src.Name()] = src.Stats()
	}
	return Snapshot{Caches: caches, RecordedAt: time.Now().UTC()}
}

var expvarSeq uint64

// PublishExpvar publishes a live snapshot of the sources under the given
// expvar name and returns the name. When name is empty, a unique one is
// generated. Publishing the same name twice panics, per expvar.
func PublishExpvar(name string, sources func() []Source) string {
	if sources == nil {
		panic("metrics: sources should not be nil")
	}
	if name == "" {
		name = fmt.Sprintf("selector_cache_metrics_%d", atomic.AddUint64(&expvarSeq, 1))
	}
	expvar.Publish(name, expvar.Func(func() any {
		return snapshot(sources)
	}))
	return name
}

// Collector emits one counter family per cache activity kind, labeled by
// selector name. Counters are read fresh on every scrape; nothing is
// accumulated here.
type Collector struct {
	sources   func() []Source
	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector builds a Collector under the given metric namespace.
func NewCollector(namespace string, sources func() []Source) *Collector {
	if sources == nil {
		panic("metrics: sources should not be nil")
	}
	labels := []string{"selector"}
	return &Collector{
		sources: sources,
		hits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "selector_cache", "hits_total"),
			"Evaluations answered from cache without running the selector function.",
			labels, nil,
		),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "selector_cache", "misses_total"),
			"Evaluations that ran the selector function.",
			labels, nil,
		),
		evictions: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "selector_cache", "evictions_total"),
			"Entries dropped from bounded selector tables to make room.",
			labels, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, src := range c.sources() {
		name := src.Name()
		if name == "" {
			continue
		}
		stats := src.Stats()
		ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits), name)
		ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses), name)
		ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(stats.Evictions), name)
	}
}
