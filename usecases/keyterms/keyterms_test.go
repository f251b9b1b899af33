//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package keyterms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textkit/textkit/usecases/pipeline"
)

const sampleText = "Natural language processing is a field of computer science. " +
	"Language processing systems analyze text corpora. " +
	"Computer science methods drive modern language processing research. " +
	"Text analysis depends on robust processing pipelines."

func TestTextRank(t *testing.T) {
	p, err := pipeline.New("en")
	require.Nil(t, err)
	doc := p.Process(sampleText)

	terms, err := TextRank(doc, WithTopN(5))
	require.Nil(t, err)
	require.NotEmpty(t, terms)
	assert.LessOrEqual(t, len(terms), 5)

	// scores sorted descending
	for i := 1; i < len(terms); i++ {
		assert.GreaterOrEqual(t, terms[i-1].Score, terms[i].Score)
	}

	// the dominant collocation should surface
	var joined []string
	for _, kt := range terms {
		joined = append(joined, kt.Text)
	}
	assert.Contains(t, strings.Join(joined, "; "), "processing")
}

func TestTextRankDeterministic(t *testing.T) {
	p, err := pipeline.New("en")
	require.Nil(t, err)
	doc := p.Process(sampleText)

	first, err := TextRank(doc)
	require.Nil(t, err)
	second, err := TextRank(doc)
	require.Nil(t, err)
	assert.Equal(t, first, second)
}

func TestTextRankPositionBias(t *testing.T) {
	p, err := pipeline.New("en")
	require.Nil(t, err)
	doc := p.Process(sampleText)

	terms, err := TextRank(doc, WithPositionBias(), WithTopN(5))
	require.Nil(t, err)
	assert.NotEmpty(t, terms)
}

func TestTextRankValidation(t *testing.T) {
	p, err := pipeline.New("en")
	require.Nil(t, err)
	doc := p.Process(sampleText)

	_, err = TextRank(doc, WithTopN(0))
	assert.NotNil(t, err)

	_, err = TextRank(doc, WithWindowSize(1))
	assert.NotNil(t, err)

	_, err = TextRank(p.Process("... !!! ..."))
	assert.NotNil(t, err)
}

func TestYAKE(t *testing.T) {
	p, err := pipeline.New("en")
	require.Nil(t, err)
	doc := p.Process(sampleText)

	terms, err := YAKE(doc, WithYAKETopN(8))
	require.Nil(t, err)
	require.NotEmpty(t, terms)
	assert.LessOrEqual(t, len(terms), 8)

	for i := 1; i < len(terms); i++ {
		assert.GreaterOrEqual(t, terms[i-1].Score, terms[i].Score)
	}

	// no near-duplicate phrases in the output
	for i := range terms {
		for j := i + 1; j < len(terms); j++ {
			assert.NotEqual(t, terms[i].Text, terms[j].Text)
		}
	}
}

func TestYAKEValidation(t *testing.T) {
	p, err := pipeline.New("en")
	require.Nil(t, err)

	_, err = YAKE(p.Process(sampleText), WithYAKETopN(0))
	assert.NotNil(t, err)

	_, err = YAKE(p.Process(sampleText), WithMaxNgramSize(0))
	assert.NotNil(t, err)

	_, err = YAKE(p.Process(""))
	assert.NotNil(t, err)
}
