//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

// Package similarity measures how alike two strings or term sequences
// are. Every function returns a value in [0, 1]: 1 for identical
// inputs, 0 for maximally dissimilar ones.
package similarity

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// jaroWinklerPrefixScale is the standard weighting for shared prefixes.
const jaroWinklerPrefixScale = 0.1

// Hamming compares strings position by position. Only defined for
// equal-length inputs.
func Hamming(a, b string) (float64, error) {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return 0, errors.Errorf("string lengths don't match: %d vs %d",
			len(ra), len(rb))
	}
	if len(ra) == 0 {
		return 1, nil
	}

	same := 0
	for i := range ra {
		if ra[i] == rb[i] {
			same++
		}
	}
	return float64(same) / float64(len(ra)), nil
}

// Levenshtein is 1 - (edit distance / longer length).
func Levenshtein(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1
	}

	dist := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	return 1 - float64(dist)/float64(maxLen)
}

// Jaro similarity: matching characters within half the longer length,
// discounted by transpositions.
func Jaro(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	window := len(ra)
	if len(rb) > window {
		window = len(rb)
	}
	window = window/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, len(ra))
	matchedB := make([]bool, len(rb))
	matches := 0
	for i := range ra {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > len(rb) {
			hi = len(rb)
		}
		for j := lo; j < hi; j++ {
			if matchedB[j] || ra[i] != rb[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	transpositions := 0
	j := 0
	for i := range ra {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	t := float64(transpositions) / 2
	return (m/float64(len(ra)) + m/float64(len(rb)) + (m-t)/m) / 3
}

// JaroWinkler boosts Jaro similarity for strings sharing a prefix of up
// to four characters.
func JaroWinkler(a, b string) float64 {
	sim := Jaro(a, b)

	prefix := 0
	ra, rb := []rune(a), []rune(b)
	for prefix < len(ra) && prefix < len(rb) && prefix < 4 && ra[prefix] == rb[prefix] {
		prefix++
	}
	return sim + float64(prefix)*jaroWinklerPrefixScale*(1-sim)
}

// CharacterNgrams is the Sørensen-Dice similarity of the strings'
// lowercased character n-gram multisets.
func CharacterNgrams(a, b string, n int) (float64, error) {
	if n < 1 {
		return 0, errors.Errorf("n must be at least 1, got: %d", n)
	}

	gramsA := charNgrams(strings.ToLower(a), n)
	gramsB := charNgrams(strings.ToLower(b), n)
	if len(gramsA) == 0 || len(gramsB) == 0 {
		// strings shorter than n carry no grams; only two empty
		// strings count as identical
		if a == "" && b == "" {
			return 1, nil
		}
		return 0, nil
	}

	overlap := 0
	for gram, count := range gramsA {
		if other, ok := gramsB[gram]; ok {
			if other < count {
				count = other
			}
			overlap += count
		}
	}

	total := 0
	for _, count := range gramsA {
		total += count
	}
	for _, count := range gramsB {
		total += count
	}
	return 2 * float64(overlap) / float64(total), nil
}

func charNgrams(s string, n int) map[string]int {
	runes := []rune(s)
	out := map[string]int{}
	for i := 0; i+n <= len(runes); i++ {
		out[string(runes[i:i+n])]++
	}
	return out
}
