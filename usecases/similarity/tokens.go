//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package similarity

import (
	"math"

	"github.com/pkg/errors"
)

// Jaccard is intersection over union of the term sets.
func Jaccard(a, b []string) float64 {
	setA, setB := toSet(a), toSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}

	inter := intersectionSize(setA, setB)
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

// SorensenDice is twice the intersection over the summed set sizes.
func SorensenDice(a, b []string) float64 {
	setA, setB := toSet(a), toSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inter := intersectionSize(setA, setB)
	return 2 * float64(inter) / float64(len(setA)+len(setB))
}

// Tversky generalizes Jaccard with asymmetric weights for the elements
// unique to either side. alpha weighs a's leftovers, beta weighs b's.
func Tversky(a, b []string, alpha, beta float64) (float64, error) {
	if alpha < 0 || beta < 0 {
		return 0, errors.Errorf("alpha and beta must be non-negative, got: %f, %f",
			alpha, beta)
	}

	setA, setB := toSet(a), toSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1, nil
	}

	inter := intersectionSize(setA, setB)
	onlyA := len(setA) - inter
	onlyB := len(setB) - inter
	denom := float64(inter) + alpha*float64(onlyA) + beta*float64(onlyB)
	if denom == 0 {
		return 0, nil
	}
	return float64(inter) / denom, nil
}

// Cosine is the angular similarity of the term frequency vectors.
func Cosine(a, b []string) float64 {
	countsA, countsB := toCounts(a), toCounts(b)
	if len(countsA) == 0 && len(countsB) == 0 {
		return 1
	}

	var dot, normA, normB float64
	for term, ca := range countsA {
		normA += float64(ca * ca)
		if cb, ok := countsB[term]; ok {
			dot += float64(ca * cb)
		}
	}
	for _, cb := range countsB {
		normB += float64(cb * cb)
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Bag similarity: 1 minus the normalized bag distance, a cheap upper
// bound approximation of edit similarity on term multisets.
func Bag(a, b []string) float64 {
	countsA, countsB := toCounts(a), toCounts(b)
	if len(countsA) == 0 && len(countsB) == 0 {
		return 1
	}

	leftoverA := multisetDiffSize(countsA, countsB)
	leftoverB := multisetDiffSize(countsB, countsA)
	maxLeftover := leftoverA
	if leftoverB > maxLeftover {
		maxLeftover = leftoverB
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(maxLeftover)/float64(maxLen)
}

func toSet(terms []string) map[string]struct{} {
	out := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		out[t] = struct{}{}
	}
	return out
}

func toCounts(terms []string) map[string]int {
	out := make(map[string]int, len(terms))
	for _, t := range terms {
		out[t]++
	}
	return out
}

func intersectionSize(a, b map[string]struct{}) int {
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}

func multisetDiffSize(a, b map[string]int) int {
	n := 0
	for term, count := range a {
		other := b[term]
		if count > other {
			n += count - other
		}
	}
	return n
}
