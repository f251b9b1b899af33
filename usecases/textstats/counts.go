//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

// Package textstats computes surface counts, readability scores, and
// lexical diversity measures for annotated docs.
package textstats

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/textkit/textkit/entities/document"
)

// words longer than this many letters count as "long" (LIX, Wiener)
const longWordLetters = 6

// Counts are the surface statistics every readability formula is
// derived from.
type Counts struct {
	Chars             int
	Letters           int
	Words             int
	UniqueWords       int
	LongWords         int
	MonosyllableWords int
	PolysyllableWords int
	Sentences         int
	Syllables         int
}

// Analyzer computes stats for one language. Construct once, use for
// many docs; the embedded syllable cache is shared across calls.
type Analyzer struct {
	lang      string
	syllables *SyllableCounter
}

func NewAnalyzer(lang string) (*Analyzer, error) {
	sc, err := NewSyllableCounter(lang)
	if err != nil {
		return nil, err
	}
	return &Analyzer{lang: lang, syllables: sc}, nil
}

// Counts tallies the doc's surface statistics. Punctuation and
// whitespace tokens are not words; stopwords are.
func (a *Analyzer) Counts(doc *document.Doc) (Counts, error) {
	words := doc.Words(false)
	if len(words) == 0 {
		return Counts{}, errors.New("doc has no words to analyze")
	}

	var c Counts
	c.Words = len(words)
	c.Sentences = len(doc.Sentences)

	unique := map[string]struct{}{}
	for _, tok := range words {
		unique[tok.Lower] = struct{}{}

		letters := 0
		for _, r := range tok.Surface {
			if unicode.IsLetter(r) {
				letters++
			}
		}
		chars := utf8.RuneCountInString(tok.Surface)
		c.Chars += chars
		c.Letters += letters
		if letters > longWordLetters {
			c.LongWords++
		}

		syll := a.syllables.Count(tok.Lower)
		c.Syllables += syll
		switch {
		case syll == 1:
			c.MonosyllableWords++
		case syll >= 3:
			c.PolysyllableWords++
		}
	}
	c.UniqueWords = len(unique)
	return c, nil
}
