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

	"github.com/textkit/textkit/usecases/langid"
	"github.com/textkit/textkit/usecases/pipeline"
	"github.com/textkit/textkit/usecases/textstats"
)

type statsOutput struct {
	Lang        string                `json:"lang"`
	Counts      textstats.Counts      `json:"counts"`
	Readability textstats.Readability `json:"readability"`
	Diversity   map[string]float64    `json:"diversity"`
}

func newStatsCmd(a *app) *cobra.Command {
	var (
		lang   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Compute counts, readability and lexical diversity for a text",
		Long:  "Compute counts, readability and lexical diversity for a text read from a file or stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			resolved, err := resolveLang(lang, a, text)
			if err != nil {
				return err
			}

			pipe, err := pipeline.New(resolved, pipeline.WithLogger(a.logger))
			if err != nil {
				return err
			}
			doc := pipe.Process(text)

			analyzer, err := textstats.NewAnalyzer(resolved)
			if err != nil {
				return err
			}
			counts, err := analyzer.Counts(doc)
			if err != nil {
				return err
			}
			readability, err := analyzer.Readability(doc)
			if err != nil {
				return err
			}

			words := doc.TokenStrings(false)
			diversity := map[string]float64{}
			if ttr, err := textstats.TypeTokenRatio(words); err == nil {
				diversity["ttr"] = ttr
			}
			if mtld, err := textstats.MeasureOfTextualLexicalDiversity(words); err == nil {
				diversity["mtld"] = mtld
			}

			out := statsOutput{
				Lang:        resolved,
				Counts:      counts,
				Readability: readability,
				Diversity:   diversity,
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			fmt.Fprintf(w, "lang: %s\n\n", out.Lang)
			fmt.Fprintf(w, "words:      %d (unique %d, long %d)\n", counts.Words, counts.UniqueWords, counts.LongWords)
			fmt.Fprintf(w, "sentences:  %d\n", counts.Sentences)
			fmt.Fprintf(w, "syllables:  %d\n\n", counts.Syllables)
			fmt.Fprintf(w, "flesch reading ease:        %.2f\n", readability.FleschReadingEase)
			fmt.Fprintf(w, "flesch-kincaid grade:       %.2f\n", readability.FleschKincaidGradeLevel)
			fmt.Fprintf(w, "automated readability idx:  %.2f\n", readability.AutomatedReadabilityIndex)
			fmt.Fprintf(w, "coleman-liau idx:           %.2f\n", readability.ColemanLiauIndex)
			fmt.Fprintf(w, "gunning fog idx:            %.2f\n", readability.GunningFogIndex)
			fmt.Fprintf(w, "lix:                        %.2f\n", readability.LixIndex)
			fmt.Fprintf(w, "smog idx:                   %.2f\n\n", readability.SmogIndex)
			for _, name := range []string{"ttr", "mtld"} {
				if val, ok := out.Diversity[name]; ok {
					fmt.Fprintf(w, "%s: %.4f\n", name, val)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "text language; auto-detected when empty")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")

	return cmd
}

// resolveLang picks the flag value, else auto-detects, else falls back
// to the configured default.
func resolveLang(flag string, a *app, text string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	pred, err := langid.New().Identify(text)
	if err != nil {
		a.logger.WithError(err).Debug("language detection failed, using default")
		return a.cfg.DefaultLang, nil
	}
	a.logger.WithFields(map[string]interface{}{
		"lang":       pred.Lang,
		"confidence": pred.Confidence,
	}).Debug("language detected")
	return pred.Lang, nil
}
