//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

// Package keyterms extracts the most informative terms and phrases
// from an annotated doc, either by graph ranking (TextRank) or by
// statistical features (YAKE).
package keyterms

import (
	"sort"

	"github.com/textkit/textkit/entities/document"
)

// Keyterm is an extracted term or phrase with its score. Scores are
// only comparable within one extraction run.
type Keyterm struct {
	Text  string
	Score float64
}

// sortKeyterms orders by score descending, ties broken by term so that
// equal inputs always produce equal outputs.
func sortKeyterms(terms []Keyterm) {
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Score != terms[j].Score {
			return terms[i].Score > terms[j].Score
		}
		return terms[i].Text < terms[j].Text
	})
}

// candidates are the lowercased alphabetic non-stopword tokens, with
// their original token positions preserved.
type candidate struct {
	term     string
	position int
	sentence int
}

func extractCandidates(doc *document.Doc) []candidate {
	sentenceOf := make([]int, len(doc.Tokens))
	for si, sent := range doc.Sentences {
		for i := sent.Start; i < sent.End; i++ {
			sentenceOf[i] = si
		}
	}

	var out []candidate
	for i, tok := range doc.Tokens {
		if !tok.IsAlpha || tok.IsStopword {
			continue
		}
		out = append(out, candidate{
			term:     tok.Lower,
			position: i,
			sentence: sentenceOf[i],
		})
	}
	return out
}
