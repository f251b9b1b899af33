//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHamming(t *testing.T) {
	sim, err := Hamming("karolin", "kathrin")
	require.Nil(t, err)
	assert.InDelta(t, 4.0/7.0, sim, 1e-9)

	_, err = Hamming("short", "longer string")
	assert.NotNil(t, err)

	sim, err = Hamming("", "")
	require.Nil(t, err)
	assert.Equal(t, 1.0, sim)
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 1.0, Levenshtein("same", "same"))
	assert.Equal(t, 1.0, Levenshtein("", ""))
	assert.Equal(t, 0.0, Levenshtein("abc", "xyz"))
	// kitten -> sitting: 3 edits over length 7
	assert.InDelta(t, 1.0-3.0/7.0, Levenshtein("kitten", "sitting"), 1e-9)
}

func TestJaro(t *testing.T) {
	assert.Equal(t, 1.0, Jaro("", ""))
	assert.Equal(t, 0.0, Jaro("abc", ""))
	assert.InDelta(t, 0.9444444, Jaro("martha", "marhta"), 1e-6)
	assert.InDelta(t, 0.7666666, Jaro("dixon", "dicksonx"), 1e-6)
}

func TestJaroWinkler(t *testing.T) {
	// shared prefix pushes the score above plain Jaro
	jaro := Jaro("martha", "marhta")
	jw := JaroWinkler("martha", "marhta")
	assert.Greater(t, jw, jaro)
	assert.InDelta(t, 0.9611111, jw, 1e-6)
}

func TestCharacterNgrams(t *testing.T) {
	sim, err := CharacterNgrams("night", "nacht", 2)
	require.Nil(t, err)
	assert.InDelta(t, 0.25, sim, 1e-9)

	sim, err = CharacterNgrams("same", "same", 2)
	require.Nil(t, err)
	assert.Equal(t, 1.0, sim)

	_, err = CharacterNgrams("a", "b", 0)
	assert.NotNil(t, err)
}

func TestCharacterNgramsShortStrings(t *testing.T) {
	// strings shorter than n have no grams and share nothing
	sim, err := CharacterNgrams("a", "b", 2)
	require.Nil(t, err)
	assert.Equal(t, 0.0, sim)

	sim, err = CharacterNgrams("ab", "x", 2)
	require.Nil(t, err)
	assert.Equal(t, 0.0, sim)

	sim, err = CharacterNgrams("", "", 2)
	require.Nil(t, err)
	assert.Equal(t, 1.0, sim)
}

func TestTokenMetrics(t *testing.T) {
	a := []string{"the", "quick", "brown", "fox"}
	b := []string{"the", "fast", "brown", "dog"}

	t.Run("jaccard", func(t *testing.T) {
		// {the, brown} over {the, quick, brown, fox, fast, dog}
		assert.InDelta(t, 2.0/6.0, Jaccard(a, b), 1e-9)
		assert.Equal(t, 1.0, Jaccard(nil, nil))
	})

	t.Run("sorensen dice", func(t *testing.T) {
		assert.InDelta(t, 2.0*2.0/8.0, SorensenDice(a, b), 1e-9)
	})

	t.Run("tversky", func(t *testing.T) {
		// alpha=beta=0.5 reduces Tversky to Sørensen-Dice
		sim, err := Tversky(a, b, 0.5, 0.5)
		require.Nil(t, err)
		assert.InDelta(t, SorensenDice(a, b), sim, 1e-9)

		_, err = Tversky(a, b, -1, 0.5)
		assert.NotNil(t, err)
	})

	t.Run("cosine", func(t *testing.T) {
		assert.InDelta(t, 0.5, Cosine(a, b), 1e-9)
		assert.Equal(t, 1.0, Cosine(a, a))
		assert.Equal(t, 0.0, Cosine(a, []string{"zebra"}))
	})

	t.Run("bag", func(t *testing.T) {
		assert.Equal(t, 1.0, Bag(a, a))
		assert.InDelta(t, 0.5, Bag(a, b), 1e-9)
	})
}

func TestHybridMetrics(t *testing.T) {
	t.Run("monge elkan", func(t *testing.T) {
		a := []string{"development", "of", "software"}
		b := []string{"software", "development"}
		sim := MongeElkan(a, b)
		assert.Greater(t, sim, 0.5)
		assert.LessOrEqual(t, sim, 1.0)
		assert.Equal(t, 1.0, MongeElkan(nil, nil))
		assert.Equal(t, 0.0, MongeElkan(a, nil))
	})

	t.Run("token sort ratio", func(t *testing.T) {
		a := []string{"new", "york", "mets"}
		b := []string{"mets", "new", "york"}
		assert.Equal(t, 1.0, TokenSortRatio(a, b))
	})
}

func TestSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"martha", "marhta"},
		{"kitten", "sitting"},
		{"", "abc"},
	}
	for _, pair := range pairs {
		assert.Equal(t, Levenshtein(pair[0], pair[1]), Levenshtein(pair[1], pair[0]))
		assert.InDelta(t, Jaro(pair[0], pair[1]), Jaro(pair[1], pair[0]), 1e-9)
	}
}
