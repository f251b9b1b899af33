//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/textkit/textkit/entities/document"
)

// abbreviations that end with a period without ending a sentence
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "rev": {},
	"sr": {}, "jr": {}, "st": {}, "no": {}, "vs": {}, "etc": {},
	"e.g": {}, "i.e": {}, "cf": {}, "al": {}, "inc": {}, "ltd": {},
	"co": {}, "corp": {}, "dept": {}, "fig": {}, "gen": {}, "gov": {},
	"sen": {}, "rep": {}, "jan": {}, "feb": {}, "mar": {}, "apr": {},
	"jun": {}, "jul": {}, "aug": {}, "sep": {}, "sept": {}, "oct": {},
	"nov": {}, "dec": {},
}

type segmenter struct{}

func newSegmenter() *segmenter {
	return &segmenter{}
}

// segment assigns every token to exactly one sentence, in order.
func (s *segmenter) segment(tokens []document.Token) []document.Sentence {
	if len(tokens) == 0 {
		return nil
	}

	var sentences []document.Sentence
	start := 0
	for i := 0; i < len(tokens); i++ {
		if !s.endsSentence(tokens, i) {
			continue
		}
		// absorb trailing closers: quotes, brackets, repeated terminals
		end := i + 1
		for end < len(tokens) && isCloser(tokens[end]) {
			end++
		}
		sentences = append(sentences, document.Sentence{Start: start, End: end})
		start = end
		i = end - 1
	}
	if start < len(tokens) {
		sentences = append(sentences, document.Sentence{Start: start, End: len(tokens)})
	}
	return sentences
}

func (s *segmenter) endsSentence(tokens []document.Token, i int) bool {
	tok := tokens[i]
	if !tok.IsPunct || !isTerminal(tok.Surface) {
		return false
	}

	if tok.Surface == "." {
		if i > 0 && isAbbreviation(tokens[i-1]) {
			return false
		}
		// single capital letter followed by a period is an initial
		if i > 0 && isInitial(tokens[i-1]) {
			return false
		}
		// a lowercase continuation after the period suggests no boundary
		if next, ok := nextWord(tokens, i); ok && startsLower(next) {
			return false
		}
	}
	return true
}

func isTerminal(surface string) bool {
	switch surface {
	case ".", "!", "?", "…":
		return true
	default:
		return false
	}
}

func isCloser(tok document.Token) bool {
	if !tok.IsPunct {
		return false
	}
	switch tok.Surface {
	case ")", "]", "}", "\"", "'", "”", "’", "»", ".", "!", "?", "…":
		return true
	default:
		return false
	}
}

func isAbbreviation(tok document.Token) bool {
	if !tok.IsAlpha {
		return false
	}
	_, ok := abbreviations[strings.TrimSuffix(tok.Lower, ".")]
	return ok
}

func isInitial(tok document.Token) bool {
	if utf8.RuneCountInString(tok.Surface) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(tok.Surface)
	return unicode.IsUpper(r)
}

func nextWord(tokens []document.Token, i int) (document.Token, bool) {
	for j := i + 1; j < len(tokens); j++ {
		if tokens[j].IsPunct {
			continue
		}
		return tokens[j], true
	}
	return document.Token{}, false
}

func startsLower(tok document.Token) bool {
	r, _ := utf8.DecodeRuneInString(tok.Surface)
	return unicode.IsLower(r)
}
