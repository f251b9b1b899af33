//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/textkit/textkit/usecases/keyterms"
	"github.com/textkit/textkit/usecases/pipeline"
)

func newKeytermsCmd(a *app) *cobra.Command {
	var (
		lang      string
		algorithm string
		topN      int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "keyterms [file]",
		Short: "Extract the most important terms from a text",
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

			var terms []keyterms.Keyterm
			switch algorithm {
			case "textrank":
				terms, err = keyterms.TextRank(doc, keyterms.WithTopN(topN))
			case "yake":
				terms, err = keyterms.YAKE(doc, keyterms.WithYAKETopN(topN))
			default:
				return errors.Errorf("algorithm must be \"textrank\" or \"yake\", got: %q", algorithm)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(terms)
			}
			for _, term := range terms {
				fmt.Fprintf(w, "%.4f\t%s\n", term.Score, term.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "text language; auto-detected when empty")
	cmd.Flags().StringVar(&algorithm, "algorithm", "textrank", "ranking algorithm: textrank or yake")
	cmd.Flags().IntVar(&topN, "topn", 10, "number of keyterms to extract")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")

	return cmd
}
