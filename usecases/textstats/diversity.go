//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package textstats

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// mtldFactorThreshold is the conventional TTR level at which a factor
// is considered complete.
const mtldFactorThreshold = 0.72

// TypeTokenRatio is unique terms over total terms.
func TypeTokenRatio(terms []string) (float64, error) {
	if len(terms) == 0 {
		return 0, errors.New("no terms given")
	}
	return float64(countTypes(terms)) / float64(len(terms)), nil
}

// LogTypeTokenRatio is log(types)/log(tokens), less sensitive to text
// length than the plain ratio.
func LogTypeTokenRatio(terms []string) (float64, error) {
	if len(terms) < 2 {
		return 0, errors.New("need at least two terms")
	}
	return math.Log(float64(countTypes(terms))) / math.Log(float64(len(terms))), nil
}

// MovingAverageTypeTokenRatio (MATTR) averages the TTR of every
// window-sized span of terms.
func MovingAverageTypeTokenRatio(terms []string, window int) (float64, error) {
	if window < 1 {
		return 0, errors.Errorf("window must be at least 1, got: %d", window)
	}
	if len(terms) < window {
		return 0, errors.Errorf("need at least %d terms, got: %d", window, len(terms))
	}

	ratios := make([]float64, 0, len(terms)-window+1)
	for i := 0; i+window <= len(terms); i++ {
		ratios = append(ratios, float64(countTypes(terms[i:i+window]))/float64(window))
	}
	return stat.Mean(ratios, nil), nil
}

// MeasureOfTextualLexicalDiversity (MTLD) is the mean factor length:
// how many terms it takes, on average, for the running TTR to decay to
// the threshold. Computed forward and backward, then averaged.
func MeasureOfTextualLexicalDiversity(terms []string) (float64, error) {
	if len(terms) < 2 {
		return 0, errors.New("need at least two terms")
	}

	forward := mtldOneDirection(terms)
	reversed := make([]string, len(terms))
	for i, t := range terms {
		reversed[len(terms)-1-i] = t
	}
	backward := mtldOneDirection(reversed)
	return (forward + backward) / 2, nil
}

func mtldOneDirection(terms []string) float64 {
	factors := 0.0
	types := map[string]struct{}{}
	tokens := 0

	for _, term := range terms {
		tokens++
		types[term] = struct{}{}
		ttr := float64(len(types)) / float64(tokens)
		if ttr <= mtldFactorThreshold {
			factors++
			types = map[string]struct{}{}
			tokens = 0
		}
	}

	// partial factor at the end, scaled by how far the TTR decayed
	if tokens > 0 {
		ttr := float64(len(types)) / float64(tokens)
		factors += (1 - ttr) / (1 - mtldFactorThreshold)
	}

	if factors == 0 {
		return float64(len(terms))
	}
	return float64(len(terms)) / factors
}

func countTypes(terms []string) int {
	types := map[string]struct{}{}
	for _, t := range terms {
		types[t] = struct{}{}
	}
	return len(types)
}
