//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package datasets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/textkit/textkit/usecases/monitoring"
)

// Downloader fetches dataset artifacts over HTTP. Downloads are
// written to a temp file first and renamed into place, so a partial
// download never shadows a complete one.
type Downloader struct {
	client  *http.Client
	logger  logrus.FieldLogger
	metrics *monitoring.PrometheusMetrics
}

type DownloaderOption func(*Downloader)

func WithHTTPClient(client *http.Client) DownloaderOption {
	return func(d *Downloader) { d.client = client }
}

func WithLogger(logger logrus.FieldLogger) DownloaderOption {
	return func(d *Downloader) { d.logger = logger }
}

func WithMetrics(metrics *monitoring.PrometheusMetrics) DownloaderOption {
	return func(d *Downloader) { d.metrics = metrics }
}

func NewDownloader(opts ...DownloaderOption) *Downloader {
	d := &Downloader{
		client: &http.Client{Timeout: 30 * time.Minute},
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Exists issues a HEAD request and reports whether the URL resolves.
func (d *Downloader) Exists(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, errors.Wrap(err, "build HEAD request")
	}
	res, err := d.client.Do(req)
	if err != nil {
		return false, errors.Wrapf(err, "HEAD %s", url)
	}
	defer res.Body.Close()
	return res.StatusCode == http.StatusOK, nil
}

// Fetch downloads url to dest. An existing file is left alone unless
// force is set. Transient failures are retried with exponential
// backoff; 4xx responses are not retried.
func (d *Downloader) Fetch(ctx context.Context, url, dest string, force bool) error {
	name := filepath.Base(dest)

	if !force {
		if fi, err := os.Stat(dest); err == nil {
			d.logger.WithFields(logrus.Fields{
				"file": dest,
				"size": humanize.Bytes(uint64(fi.Size())),
			}).Info("file already downloaded, skipping")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %q", dest)
	}

	d.metrics.StartDownload(name)
	d.logger.WithFields(logrus.Fields{"url": url, "file": dest}).
		Info("starting download")

	var written int64
	operation := func() error {
		var err error
		written, err = d.fetchOnce(ctx, url, dest)
		return err
	}
	policy := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		d.metrics.FailDownload(name)
		return errors.Wrapf(err, "download %s", url)
	}

	d.metrics.FinishDownload(name, written)
	d.logger.WithFields(logrus.Fields{
		"file": dest,
		"size": humanize.Bytes(uint64(written)),
	}).Info("download complete")
	return nil
}

func (d *Downloader) fetchOnce(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, backoff.Permanent(errors.Wrap(err, "build GET request"))
	}

	res, err := d.client.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "GET %s", url)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusOK:
	case res.StatusCode >= 400 && res.StatusCode < 500:
		return 0, backoff.Permanent(errors.Errorf("GET %s: status %d", url, res.StatusCode))
	default:
		return 0, errors.Errorf("GET %s: status %d", url, res.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), fmt.Sprintf(".%s-*.partial", filepath.Base(dest)))
	if err != nil {
		return 0, backoff.Permanent(errors.Wrap(err, "create temp file"))
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, res.Body)
	if err != nil {
		tmp.Close()
		return 0, errors.Wrap(err, "write download to temp file")
	}
	if err := tmp.Close(); err != nil {
		return 0, errors.Wrap(err, "close temp file")
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return 0, backoff.Permanent(errors.Wrapf(err, "rename temp file to %q", dest))
	}
	return written, nil
}
