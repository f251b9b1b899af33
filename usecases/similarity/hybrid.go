//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package similarity

import (
	"sort"
	"strings"
)

// MongeElkan averages, over the terms of a, each term's best
// Levenshtein similarity against the terms of b. Note the asymmetry:
// swap arguments and average for a symmetric score.
func MongeElkan(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var sum float64
	for _, termA := range a {
		best := 0.0
		for _, termB := range b {
			if sim := Levenshtein(termA, termB); sim > best {
				best = sim
			}
		}
		sum += best
	}
	return sum / float64(len(a))
}

// TokenSortRatio sorts each side's terms before comparing the joined
// strings by Levenshtein, making the score order-insensitive.
func TokenSortRatio(a, b []string) float64 {
	sortedA := append([]string(nil), a...)
	sortedB := append([]string(nil), b...)
	sort.Strings(sortedA)
	sort.Strings(sortedB)
	return Levenshtein(strings.Join(sortedA, " "), strings.Join(sortedB, " "))
}
