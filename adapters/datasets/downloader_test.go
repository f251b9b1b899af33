//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package datasets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textkit/textkit/usecases/monitoring"
)

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestFetchWritesFile(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "sub", "artifact.bin")
	dl := NewDownloader(WithLogger(quietLogger()))

	require.NoError(t, dl.Fetch(context.Background(), srv.URL, dest, false))

	raw, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(raw))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	// second fetch is a no-op
	require.NoError(t, dl.Fetch(context.Background(), srv.URL, dest, false))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	// unless forced
	require.NoError(t, dl.Fetch(context.Background(), srv.URL, dest, true))
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "artifact.bin")
	dl := NewDownloader(WithLogger(quietLogger()))

	err := dl.Fetch(context.Background(), srv.URL, dest, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no partial file must remain")
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("eventually"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "artifact.bin")
	dl := NewDownloader(WithLogger(quietLogger()))

	require.NoError(t, dl.Fetch(context.Background(), srv.URL, dest, false))

	raw, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "eventually", string(raw))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&hits), int32(2))
}

func TestFetchObservesMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	registry := prometheus.NewRegistry()
	pm := monitoring.NewPrometheusMetrics(registry)
	dl := NewDownloader(WithLogger(quietLogger()), WithMetrics(pm))

	dir := t.TempDir()
	require.NoError(t, dl.Fetch(context.Background(), srv.URL, filepath.Join(dir, "ok.bin"), false))
	require.Error(t, dl.Fetch(context.Background(), srv.URL+"/missing", filepath.Join(dir, "missing.bin"), false))

	assert.Equal(t, 1.0, testutil.ToFloat64(pm.DownloadsStarted.WithLabelValues("ok.bin")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.DownloadsCompleted.WithLabelValues("ok.bin")))
	assert.Equal(t, 7.0, testutil.ToFloat64(pm.DownloadedBytes.WithLabelValues("ok.bin")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.DownloadsFailed.WithLabelValues("missing.bin")))
}

func TestExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodHead, r.Method)
		if r.URL.Path == "/there" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dl := NewDownloader(WithLogger(quietLogger()))

	ok, err := dl.Exists(context.Background(), srv.URL+"/there")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dl.Exists(context.Background(), srv.URL+"/missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
