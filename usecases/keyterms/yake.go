//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package keyterms

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/textkit/textkit/entities/document"
	"github.com/textkit/textkit/usecases/similarity"
)

const (
	defaultMaxNgramSize = 3
	// phrases more similar than this to an already accepted one are
	// considered duplicates
	yakeDedupThreshold = 0.8
)

type YAKEOptions struct {
	TopN         int
	MaxNgramSize int
}

type YAKEOption func(*YAKEOptions)

func WithYAKETopN(n int) YAKEOption {
	return func(o *YAKEOptions) { o.TopN = n }
}

func WithMaxNgramSize(n int) YAKEOption {
	return func(o *YAKEOptions) { o.MaxNgramSize = n }
}

// YAKE scores candidate phrases from purely statistical word features:
// casing, position, frequency, relatedness to context, and sentence
// dispersion. Higher returned scores are better; internally YAKE
// produces a "badness" S and we report 1/(1+S).
func YAKE(doc *document.Doc, opts ...YAKEOption) ([]Keyterm, error) {
	options := YAKEOptions{TopN: defaultTopN, MaxNgramSize: defaultMaxNgramSize}
	for _, opt := range opts {
		opt(&options)
	}
	if options.TopN < 1 {
		return nil, errors.Errorf("topN must be at least 1, got: %d", options.TopN)
	}
	if options.MaxNgramSize < 1 {
		return nil, errors.Errorf("max ngram size must be at least 1, got: %d",
			options.MaxNgramSize)
	}

	cands := extractCandidates(doc)
	if len(cands) == 0 {
		return nil, errors.New("doc has no keyterm candidates")
	}

	features := collectWordFeatures(doc, cands)
	badness := scoreWords(features, len(doc.Sentences))

	phrases := scorePhrases(doc, badness, options.MaxNgramSize)

	// best (lowest S) first, then dedup near-identical phrases
	sort.Slice(phrases, func(i, j int) bool {
		if phrases[i].Score != phrases[j].Score {
			return phrases[i].Score < phrases[j].Score
		}
		return phrases[i].Text < phrases[j].Text
	})

	var out []Keyterm
	for _, cand := range phrases {
		dup := false
		for _, kept := range out {
			if similarity.Levenshtein(cand.Text, kept.Text) >= yakeDedupThreshold {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		out = append(out, Keyterm{Text: cand.Text, Score: 1 / (1 + cand.Score)})
		if len(out) == options.TopN {
			break
		}
	}
	return out, nil
}

type wordFeatures struct {
	tf         float64
	tfUpper    float64
	positions  []float64
	sentences  map[int]struct{}
	coocurring map[string]struct{}
}

func collectWordFeatures(doc *document.Doc, cands []candidate) map[string]*wordFeatures {
	features := map[string]*wordFeatures{}
	for i, cand := range cands {
		f, ok := features[cand.term]
		if !ok {
			f = &wordFeatures{
				sentences:  map[int]struct{}{},
				coocurring: map[string]struct{}{},
			}
			features[cand.term] = f
		}
		f.tf++
		f.positions = append(f.positions, float64(cand.sentence))
		f.sentences[cand.sentence] = struct{}{}

		surface := doc.Tokens[cand.position].Surface
		if isUpperOrProper(surface, cand.position, doc) {
			f.tfUpper++
		}

		for j := i - 2; j <= i+2; j++ {
			if j < 0 || j >= len(cands) || j == i {
				continue
			}
			f.coocurring[cands[j].term] = struct{}{}
		}
	}
	return features
}

// isUpperOrProper flags acronyms and capitalized words that do not
// open a sentence.
func isUpperOrProper(surface string, position int, doc *document.Doc) bool {
	if strings.ToUpper(surface) == surface && len(surface) > 1 {
		return true
	}
	r := []rune(surface)[0]
	if !unicode.IsUpper(r) {
		return false
	}
	for _, sent := range doc.Sentences {
		if sent.Start == position {
			return false
		}
	}
	return true
}

// scoreWords computes the per-word YAKE badness S(w): low for words
// that look like keyword material.
func scoreWords(features map[string]*wordFeatures, nSents int) map[string]float64 {
	tfs := make([]float64, 0, len(features))
	var maxTF float64
	for _, f := range features {
		tfs = append(tfs, f.tf)
		if f.tf > maxTF {
			maxTF = f.tf
		}
	}
	meanTF := stat.Mean(tfs, nil)
	stdTF := stat.StdDev(tfs, nil)
	if math.IsNaN(stdTF) {
		stdTF = 0
	}

	out := make(map[string]float64, len(features))
	for term, f := range features {
		casing := f.tfUpper / (1 + math.Log(f.tf))
		position := math.Log(3 + median(f.positions))
		frequency := f.tf / (meanTF + stdTF + 1e-9)
		relatedness := 1 + float64(len(f.coocurring))*f.tf/maxTF/10
		dispersion := float64(len(f.sentences)) / float64(max(nSents, 1))

		out[term] = (relatedness * position) /
			(casing + frequency/relatedness + dispersion/relatedness + 1e-9)
	}
	return out
}

// scorePhrases aggregates word badness over candidate n-grams:
// S(kw) = prod(S(w)) / (tf(kw) * (1 + sum(S(w)))).
func scorePhrases(doc *document.Doc, badness map[string]float64, maxN int) []Keyterm {
	type phraseStats struct {
		prod float64
		sum  float64
		tf   float64
	}
	phrases := map[string]*phraseStats{}

	tokens := doc.Tokens
	for i := range tokens {
		if !validPhraseToken(tokens[i]) || tokens[i].IsStopword {
			continue
		}
		prod, sum := 1.0, 0.0
		var parts []string
		for j := i; j < len(tokens) && len(parts) < maxN; j++ {
			tok := tokens[j]
			if !validPhraseToken(tok) {
				break
			}
			if tok.IsStopword {
				// stopwords may sit inside a phrase but not end one
				if len(parts) == 0 {
					break
				}
				parts = append(parts, tok.Lower)
				continue
			}
			s, ok := badness[tok.Lower]
			if !ok {
				break
			}
			parts = append(parts, tok.Lower)
			prod *= s
			sum += s
			phrase := strings.Join(parts, " ")
			st, ok := phrases[phrase]
			if !ok {
				st = &phraseStats{prod: prod, sum: sum}
				phrases[phrase] = st
			}
			st.tf++
		}
	}

	out := make([]Keyterm, 0, len(phrases))
	for phrase, st := range phrases {
		score := st.prod / (st.tf * (1 + st.sum))
		out = append(out, Keyterm{Text: phrase, Score: score})
	}
	return out
}

func validPhraseToken(tok document.Token) bool {
	return tok.IsAlpha && !tok.IsPunct
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
