package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docnav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry        *prom.Registry
	stageDuration   *prom.HistogramVec
	runDuration     prom.Histogram
	stageResults    *prom.CounterVec
	runOutcome      *prom.CounterVec
	filesScanned    prom.Gauge
	navItems        prom.Gauge
	sidebarSections prom.Gauge
	extractions     *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the collectors. A nil
// registry gets a fresh private one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "stage_duration_seconds",
		Help:      "Duration of individual generation stages",
		Buckets:   prom.DefBuckets,
	}, []string{"stage"})
	pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Total generation run duration",
		Buckets:   prom.DefBuckets,
	})
	pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "stage_results_total",
		Help:      "Stage result counts by outcome",
	}, []string{"stage", "result"})
	pr.runOutcome = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "run_outcomes_total",
		Help:      "Generation runs by final status",
	}, []string{"outcome"})
	pr.filesScanned = prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "files_scanned",
		Help:      "Documentation files found by the last scan",
	})
	pr.navItems = prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "nav_items",
		Help:      "Items (groups and links) in the last generated nav",
	})
	pr.sidebarSections = prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "sidebar_sections",
		Help:      "Sections in the last generated sidebar",
	})
	pr.extractions = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "metadata_extractions_total",
		Help:      "Metadata extractions by source",
	}, []string{"source"})
	reg.MustRegister(pr.stageDuration, pr.runDuration, pr.stageResults, pr.runOutcome,
		pr.filesScanned, pr.navItems, pr.sidebarSections, pr.extractions)
	return pr
}

// Registry returns the registry the collectors are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.registry
}

// WriteTextfile writes all gathered metrics to path in the text exposition
// format, replacing the file atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncRunOutcome(result ResultLabel) {
	if p == nil || p.runOutcome == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) SetFilesScanned(n int) {
	if p == nil || p.filesScanned == nil {
		return
	}
	p.filesScanned.Set(float64(n))
}

func (p *PrometheusRecorder) SetNavItems(n int) {
	if p == nil || p.navItems == nil {
		return
	}
	p.navItems.Set(float64(n))
}

func (p *PrometheusRecorder) SetSidebarSections(n int) {
	if p == nil || p.sidebarSections == nil {
		return
	}
	p.sidebarSections.Set(float64(n))
}

func (p *PrometheusRecorder) AddExtractions(extracted, cacheHits, failures int) {
	if p == nil || p.extractions == nil {
		return
	}
	p.extractions.WithLabelValues("parsed").Add(float64(extracted))
	p.extractions.WithLabelValues("cache").Add(float64(cacheHits))
	p.extractions.WithLabelValues("failed").Add(float64(failures))
}
