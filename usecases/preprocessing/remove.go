//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package preprocessing

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	curlyBracketsRe  = regexp.MustCompile(`\{[^{}]*\}`)
	squareBracketsRe = regexp.MustCompile(`\[[^\[\]]*\]`)
	roundBracketsRe  = regexp.MustCompile(`\([^()]*\)`)

	htmlTagRe    = regexp.MustCompile(`<[^<>]+>`)
	htmlEntityRe = regexp.MustCompile(`&(?:[a-z]{2,8}|#[0-9]{1,6}|#x[0-9a-fA-F]{1,5});`)
)

var accentStripper = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// RemoveAccents strips accents and other combining marks from their base
// characters, e.g. "résumé" => "resume".
func RemoveAccents(text string) string {
	out, _, err := transform.String(accentStripper, text)
	if err != nil {
		return text
	}
	return out
}

// RemoveBrackets drops bracketed spans, contents included. Nested
// brackets of the same type survive one pass with their outer pair
// intact, matching single-pass regex semantics.
func RemoveBrackets(text string) string {
	text = curlyBracketsRe.ReplaceAllString(text, "")
	text = squareBracketsRe.ReplaceAllString(text, "")
	return roundBracketsRe.ReplaceAllString(text, "")
}

// RemoveHTMLTags drops HTML/XML tags and character entities.
func RemoveHTMLTags(text string) string {
	text = htmlTagRe.ReplaceAllString(text, "")
	return htmlEntityRe.ReplaceAllString(text, " ")
}

// RemovePunctuation replaces punctuation with single spaces, so that
// token boundaries survive the removal.
func RemovePunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return ' '
		}
		return r
	}, text)
}
