//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textkit/textkit/adapters/datasets"
	"github.com/textkit/textkit/usecases/langid"
)

func newLangCmd(a *app) *cobra.Command {
	var (
		topN   int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "lang [file]",
		Short: "Identify the language of a text",
		Long:  "Identify the language of a text read from a file or stdin.\n\nUses the downloaded lang_identifier model when present, otherwise the built-in one.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			identifier := loadIdentifier(a)

			preds, err := identifier.IdentifyTopN(text, topN)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(preds)
			}
			for _, pred := range preds {
				fmt.Fprintf(w, "%s\t%.4f\n", pred.Lang, pred.Confidence)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&topN, "topn", 1, "number of candidate languages to report")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")

	return cmd
}

func loadIdentifier(a *app) *langid.Identifier {
	dl := datasets.NewDownloader(
		datasets.WithLogger(a.logger),
		datasets.WithMetrics(a.metrics),
	)
	model := datasets.NewLangModel(a.cfg.DataDir, a.cfg.Download.ReleasesRoot, "", dl)
	if model.Filepath() != "" {
		identifier, err := model.Load()
		if err == nil {
			return identifier
		}
		a.logger.WithError(err).Warn("failed to load downloaded language model, using built-in")
	}
	return langid.New()
}
