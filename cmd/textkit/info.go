//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textkit/textkit/adapters/datasets"
	"github.com/textkit/textkit/usecases/build"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show version, configuration and dataset status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "textkit %s (commit %s, %s)\n\n", build.Version, build.Revision, build.GoVersion)
			fmt.Fprintf(out, "data dir:      %s\n", a.cfg.DataDir)
			fmt.Fprintf(out, "default lang:  %s\n", a.cfg.DefaultLang)
			fmt.Fprintf(out, "\ndatasets:\n")

			dl := datasets.NewDownloader(
				datasets.WithLogger(a.logger),
				datasets.WithMetrics(a.metrics),
			)
			all := []datasets.Dataset{
				datasets.NewCapitolWords(a.cfg.DataDir, a.cfg.Download.ReleasesRoot, "", dl),
				datasets.Wikipedia(a.cfg.DataDir, a.cfg.Download.WikimediaRoot, a.cfg.DefaultLang, datasets.VersionCurrent, dl),
				datasets.Wikinews(a.cfg.DataDir, a.cfg.Download.WikimediaRoot, a.cfg.DefaultLang, datasets.VersionCurrent, dl),
				datasets.NewLangModel(a.cfg.DataDir, a.cfg.Download.ReleasesRoot, "", dl),
			}
			for _, ds := range all {
				status := "not downloaded"
				if path := ds.Filepath(); path != "" {
					status = path
				}
				fmt.Fprintf(out, "  %-16s %s\n", ds.Info().Name, status)
			}
			return nil
		},
	}
}
