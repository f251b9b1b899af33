//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

// Package monitoring exposes prometheus metrics for the long-running
// parts of the toolkit: corpus processing and dataset downloads. A nil
// *PrometheusMetrics disables collection, so callers never need to
// guard their instrumentation sites.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusMetrics struct {
	DocsProcessed      *prometheus.CounterVec
	ProcessingDuration *prometheus.HistogramVec

	DownloadsStarted   *prometheus.CounterVec
	DownloadsCompleted *prometheus.CounterVec
	DownloadsFailed    *prometheus.CounterVec
	DownloadedBytes    *prometheus.CounterVec
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	pm := &PrometheusMetrics{
		DocsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textkit_docs_processed_total",
			Help: "Number of docs processed into a corpus",
		}, []string{"lang"}),
		ProcessingDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "textkit_doc_processing_duration_seconds",
			Help:    "Time to annotate a single doc",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"lang"}),
		DownloadsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textkit_downloads_started_total",
			Help: "Dataset/model downloads started",
		}, []string{"name"}),
		DownloadsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textkit_downloads_completed_total",
			Help: "Dataset/model downloads completed successfully",
		}, []string{"name"}),
		DownloadsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textkit_downloads_failed_total",
			Help: "Dataset/model downloads that ended in an error",
		}, []string{"name"}),
		DownloadedBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textkit_downloaded_bytes_total",
			Help: "Bytes fetched by dataset/model downloads",
		}, []string{"name"}),
	}

	registerer.MustRegister(
		pm.DocsProcessed,
		pm.ProcessingDuration,
		pm.DownloadsStarted,
		pm.DownloadsCompleted,
		pm.DownloadsFailed,
		pm.DownloadedBytes,
	)
	return pm
}

func (pm *PrometheusMetrics) ObserveDocProcessed(lang string, took time.Duration) {
	if pm == nil {
		return
	}
	pm.DocsProcessed.WithLabelValues(lang).Inc()
	pm.ProcessingDuration.WithLabelValues(lang).Observe(took.Seconds())
}

func (pm *PrometheusMetrics) StartDownload(name string) {
	if pm == nil {
		return
	}
	pm.DownloadsStarted.WithLabelValues(name).Inc()
}

func (pm *PrometheusMetrics) FinishDownload(name string, bytes int64) {
	if pm == nil {
		return
	}
	pm.DownloadsCompleted.WithLabelValues(name).Inc()
	pm.DownloadedBytes.WithLabelValues(name).Add(float64(bytes))
}

func (pm *PrometheusMetrics) FailDownload(name string) {
	if pm == nil {
		return
	}
	pm.DownloadsFailed.WithLabelValues(name).Inc()
}
