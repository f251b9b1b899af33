//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetricsObservations(t *testing.T) {
	registry := prometheus.NewRegistry()
	pm := NewPrometheusMetrics(registry)

	pm.ObserveDocProcessed("en", 5*time.Millisecond)
	pm.ObserveDocProcessed("en", 3*time.Millisecond)
	pm.ObserveDocProcessed("de", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(pm.DocsProcessed.WithLabelValues("en")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.DocsProcessed.WithLabelValues("de")))
	assert.Equal(t, 2, testutil.CollectAndCount(pm.ProcessingDuration))
}

func TestPrometheusMetricsDownloadLifecycle(t *testing.T) {
	registry := prometheus.NewRegistry()
	pm := NewPrometheusMetrics(registry)

	pm.StartDownload("capitol_words")
	pm.StartDownload("capitol_words")
	pm.FinishDownload("capitol_words", 1024)
	pm.FailDownload("capitol_words")

	assert.Equal(t, 2.0, testutil.ToFloat64(pm.DownloadsStarted.WithLabelValues("capitol_words")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.DownloadsCompleted.WithLabelValues("capitol_words")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.DownloadsFailed.WithLabelValues("capitol_words")))
	assert.Equal(t, 1024.0, testutil.ToFloat64(pm.DownloadedBytes.WithLabelValues("capitol_words")))
}

func TestPrometheusMetricsNilReceiver(t *testing.T) {
	var pm *PrometheusMetrics

	require.NotPanics(t, func() {
		pm.ObserveDocProcessed("en", time.Millisecond)
		pm.StartDownload("x")
		pm.FinishDownload("x", 1)
		pm.FailDownload("x")
	})
}
