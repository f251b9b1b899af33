//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	input := " Hello You*-beautiful_world?!"

	type testCase struct {
		tokenization string
		expected     []string
	}

	testCases := []testCase{
		{
			tokenization: TokenizationField,
			expected:     []string{"Hello You*-beautiful_world?!"},
		},
		{
			tokenization: TokenizationWhitespace,
			expected:     []string{"Hello", "You*-beautiful_world?!"},
		},
		{
			tokenization: TokenizationLowercase,
			expected:     []string{"hello", "you*-beautiful_world?!"},
		},
		{
			tokenization: TokenizationWord,
			expected:     []string{"hello", "you", "beautiful", "world"},
		},
	}

	for _, tc := range testCases {
		terms := Tokenize(tc.tokenization, input)
		assert.ElementsMatch(t, tc.expected, terms)
	}
}

func TestTokenizeTrigram(t *testing.T) {
	terms := Tokenize(TokenizationTrigram, "ab cd")
	assert.Equal(t, []string{"abc", "bcd"}, terms)
}

func TestTokenizeUnknownMode(t *testing.T) {
	assert.Empty(t, Tokenize("bogus", "some text"))
}

func TestTokenizeAndCount(t *testing.T) {
	input := "Hello You Beautiful World! hello you beautiful world!"

	unique, occurrences := TokenizeAndCount(TokenizationWord, input)
	assert.Len(t, unique, 4)

	counts := map[string]int{}
	for i, term := range unique {
		counts[term] = occurrences[i]
	}
	assert.Equal(t, map[string]int{
		"hello": 2, "you": 2, "beautiful": 2, "world": 2,
	}, counts)
}
