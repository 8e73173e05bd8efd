// Package metrics provides run metrics for docnav.
//
// Components receive a Recorder and default to NoopRecorder, so metrics
// collection needs no nil checks at call sites:
//
//	gen := generator.New(cfg, generator.WithRecorder(metrics.NewPrometheusRecorder(nil)))
//
// PrometheusRecorder registers its collectors on a private registry. A
// one-shot CLI has nothing to scrape it, so the registry is exported with
// WriteTextfile in the node exporter textfile collector format.
package metrics
