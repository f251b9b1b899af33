//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package document

// Doc is an analyzed text: the original string plus the token and
// sentence annotations produced by a pipeline.
type Doc struct {
	// Text is the exact input string the annotations index into.
	Text string

	// Lang is the two-letter language code the doc was processed with.
	Lang string

	Tokens    []Token
	Sentences []Sentence

	// Meta carries source metadata for docs built from dataset records.
	Meta map[string]interface{}
}

// Token is a single unit of text with its position and classification.
type Token struct {
	// Surface is the token exactly as it appears in Doc.Text.
	Surface string
	// Lower is the lowercased surface form.
	Lower string

	// Start and End are byte offsets such that Doc.Text[Start:End] == Surface.
	Start int
	End   int

	IsAlpha    bool
	IsDigit    bool
	IsPunct    bool
	IsSpace    bool
	IsStopword bool
	LikeURL    bool
	LikeEmail  bool
	LikeNumber bool
}

// Sentence is a half-open range [Start, End) into Doc.Tokens.
type Sentence struct {
	Start int
	End   int
}

// Words returns the non-punct, non-space tokens of the doc. When
// filterStops is true, stopwords are excluded as well.
func (d *Doc) Words(filterStops bool) []Token {
	out := make([]Token, 0, len(d.Tokens))
	for _, tok := range d.Tokens {
		if tok.IsPunct || tok.IsSpace {
			continue
		}
		if filterStops && tok.IsStopword {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// SentenceTokens returns the tokens belonging to sentence i.
func (d *Doc) SentenceTokens(i int) []Token {
	if i < 0 || i >= len(d.Sentences) {
		return nil
	}
	sent := d.Sentences[i]
	return d.Tokens[sent.Start:sent.End]
}

// TokenStrings returns the lowercased forms of all word tokens, the shape
// most downstream consumers (vectorizers, keyterm extractors) work on.
func (d *Doc) TokenStrings(filterStops bool) []string {
	words := d.Words(filterStops)
	out := make([]string, len(words))
	for i, tok := range words {
		out[i] = tok.Lower
	}
	return out
}
