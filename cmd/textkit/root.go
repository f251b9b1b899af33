//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/textkit/textkit/usecases/build"
	"github.com/textkit/textkit/usecases/config"
	"github.com/textkit/textkit/usecases/logging"
	"github.com/textkit/textkit/usecases/monitoring"
)

// state shared by all subcommands, populated in PersistentPreRunE
type app struct {
	cfg      config.Config
	logger   *logrus.Logger
	registry *prometheus.Registry
	metrics  *monitoring.PrometheusMetrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		configFile string
		logLevel   string
		logFormat  string
	)

	root := &cobra.Command{
		Use:           "textkit",
		Short:         "Higher-level text analysis: statistics, keyterms, similarity, datasets",
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}

			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger
			a.registry = prometheus.NewRegistry()
			a.metrics = monitoring.NewPrometheusMetrics(a.registry)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "",
		"path to a YAML or JSON config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: trace, debug, info, warn, error, fatal, panic")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text or json")

	root.AddCommand(
		newDownloadCmd(a),
		newInfoCmd(a),
		newStatsCmd(a),
		newKeytermsCmd(a),
		newLangCmd(a),
	)
	return root
}

// readInput returns the text of the file named by args[0], or stdin
// when no argument (or "-") is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return "", errors.Wrapf(err, "read input file %q", args[0])
		}
		return string(raw), nil
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "read stdin")
	}
	return string(raw), nil
}
