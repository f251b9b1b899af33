//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package preprocessing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

var (
	bulletPointRe = regexp.MustCompile(`(?m)^\s*[\x{2022}\x{2023}\x{2043}\x{204C}\x{204D}\x{2219}\x{25AA}\x{25AB}\x{25CF}\x{25E6}\x{00B7}\*\x{2212}]\s*`)

	hyphenatedWordRe = regexp.MustCompile(`(\pL+)[\-\x{2010}]\s*\n\s*(\pL+)`)

	singleQuoteRe = regexp.MustCompile("[‘’‚‛‹›ʼ]")
	doubleQuoteRe = regexp.MustCompile("[“”„‟«»]")

	linebreakRe = regexp.MustCompile("(\r\n|[\n\v\f  ])+")
	nonbreakRe  = regexp.MustCompile(`[^\S\n]+`)
	zeroWidthRe = regexp.MustCompile("[​‌‍\uFEFF]")
)

// NormalizeBulletPoints replaces the zoo of bullet point characters at
// the start of a line with a single "- ".
func NormalizeBulletPoints(text string) string {
	return bulletPointRe.ReplaceAllString(text, "- ")
}

// NormalizeHyphenatedWords rejoins words split across a line break by a
// hyphen, e.g. "hyphen-\nated" => "hyphenated".
func NormalizeHyphenatedWords(text string) string {
	return hyphenatedWordRe.ReplaceAllString(text, "$1$2")
}

// NormalizeQuotationMarks replaces curly and angled quotation marks with
// their plain ASCII equivalents.
func NormalizeQuotationMarks(text string) string {
	text = singleQuoteRe.ReplaceAllString(text, "'")
	return doubleQuoteRe.ReplaceAllString(text, `"`)
}

// NormalizeRepeatingChars truncates runs of the given substring longer
// than maxN repetitions down to exactly maxN.
func NormalizeRepeatingChars(chars string, maxN int) (Transform, error) {
	if maxN < 1 {
		return nil, errors.Errorf("maxN must be at least 1, got: %d", maxN)
	}
	re, err := regexp.Compile(fmt.Sprintf(`(?:%s){%d,}`, regexp.QuoteMeta(chars), maxN+1))
	if err != nil {
		return nil, errors.Wrap(err, "compile repeating chars pattern")
	}
	repl := strings.Repeat(chars, maxN)
	return func(text string) string {
		return re.ReplaceAllString(text, repl)
	}, nil
}

// NormalizeUnicode transforms text into the given unicode normal form,
// one of "NFC", "NFD", "NFKC", "NFKD".
func NormalizeUnicode(form string) (Transform, error) {
	var f norm.Form
	switch form {
	case "NFC":
		f = norm.NFC
	case "NFD":
		f = norm.NFD
	case "NFKC":
		f = norm.NFKC
	case "NFKD":
		f = norm.NFKD
	default:
		return nil, errors.Errorf("unknown unicode normal form %q", form)
	}
	return f.String, nil
}

// NormalizeWhitespace collapses runs of linebreaks to a single newline,
// runs of other whitespace (zero-width characters dropped) to a single
// space, and strips leading/trailing whitespace.
func NormalizeWhitespace(text string) string {
	text = zeroWidthRe.ReplaceAllString(text, "")
	text = linebreakRe.ReplaceAllString(text, "\n")
	text = nonbreakRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
