//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/textkit/textkit/adapters/datasets"
)

func newDownloadCmd(a *app) *cobra.Command {
	var (
		lang    string
		version string
		dataDir string
		force   bool
	)

	cmd := &cobra.Command{
		Use:       "download <dataset>",
		Short:     "Download a dataset or model artifact to the local data dir",
		Long:      "Download a dataset or model artifact to the local data dir.\n\nDatasets: capitol_words, wikipedia, wikinews, lang_identifier",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"capitol_words", "wikipedia", "wikinews", "lang_identifier"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.DataDir
			if dataDir != "" {
				dir = dataDir
			}
			if lang == "" {
				lang = a.cfg.DefaultLang
			}

			dl := datasets.NewDownloader(
				datasets.WithLogger(a.logger),
				datasets.WithMetrics(a.metrics),
			)

			var ds datasets.Dataset
			switch args[0] {
			case "capitol_words":
				ds = datasets.NewCapitolWords(dir, a.cfg.Download.ReleasesRoot, version, dl)
			case "wikipedia":
				ds = datasets.Wikipedia(dir, a.cfg.Download.WikimediaRoot, lang, orCurrent(version), dl)
			case "wikinews":
				ds = datasets.Wikinews(dir, a.cfg.Download.WikimediaRoot, lang, orCurrent(version), dl)
			case "lang_identifier":
				ds = datasets.NewLangModel(dir, a.cfg.Download.ReleasesRoot, version, dl)
			default:
				return errors.Errorf("unknown dataset %q", args[0])
			}

			if err := ds.Download(cmd.Context(), force); err != nil {
				logDownloadMetrics(a)
				return err
			}
			logDownloadMetrics(a)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "dataset language (wikipedia, wikinews)")
	cmd.Flags().StringVar(&version, "version", "", "dataset version; defaults to the latest")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "override the configured data dir")
	cmd.Flags().BoolVar(&force, "force", false, "re-download even if the artifact exists")

	return cmd
}

// logDownloadMetrics reports the collected download counters at debug
// level, keyed by metric name and label set.
func logDownloadMetrics(a *app) {
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.WithError(err).Debug("failed to gather metrics")
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if metric.GetCounter() == nil || metric.GetCounter().GetValue() == 0 {
				continue
			}
			fields := logrus.Fields{"metric": family.GetName(), "value": metric.GetCounter().GetValue()}
			for _, label := range metric.GetLabel() {
				fields[label.GetName()] = label.GetValue()
			}
			a.logger.WithFields(fields).Debug("download metric")
		}
	}
}

func orCurrent(version string) string {
	if version == "" {
		return datasets.VersionCurrent
	}
	return version
}
