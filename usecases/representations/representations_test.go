//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package representations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleDocs = [][]string{
	{"cat", "sat", "mat", "cat"},
	{"dog", "sat", "log"},
	{"cat", "dog", "friend"},
}

func TestVectorizerFitTransform(t *testing.T) {
	v := NewVectorizer()
	m, err := v.FitTransform(sampleDocs)
	require.Nil(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, len(v.Terms()), cols)

	// vocabulary is sorted: cat, dog, friend, log, mat, sat
	assert.Equal(t, []string{"cat", "dog", "friend", "log", "mat", "sat"}, v.Terms())

	// doc 0 has "cat" twice
	assert.Equal(t, 2.0, m.At(0, 0))
	// doc 1 has no "cat"
	assert.Equal(t, 0.0, m.At(1, 0))
}

func TestVectorizerWeightings(t *testing.T) {
	t.Run("binary tf", func(t *testing.T) {
		v := NewVectorizer(WithTf(TfBinary))
		m, err := v.FitTransform(sampleDocs)
		require.Nil(t, err)
		assert.Equal(t, 1.0, m.At(0, 0))
	})

	t.Run("smooth idf downweights common terms", func(t *testing.T) {
		v := NewVectorizer(WithIdf(IdfSmooth))
		m, err := v.FitTransform(sampleDocs)
		require.Nil(t, err)
		// "friend" (df=1) must outweigh "sat" (df=2) at equal tf
		friend := m.At(2, indexOf(t, v.Terms(), "friend"))
		sat := m.At(1, indexOf(t, v.Terms(), "sat"))
		assert.Greater(t, friend, sat)
	})

	t.Run("l2 norm", func(t *testing.T) {
		v := NewVectorizer(WithNorm(NormL2))
		m, err := v.FitTransform(sampleDocs)
		require.Nil(t, err)
		rows, cols := m.Dims()
		for i := 0; i < rows; i++ {
			var norm float64
			for j := 0; j < cols; j++ {
				norm += m.At(i, j) * m.At(i, j)
			}
			assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
		}
	})
}

func TestVectorizerDFFilters(t *testing.T) {
	v := NewVectorizer(WithMinDF(2))
	_, err := v.FitTransform(sampleDocs)
	require.Nil(t, err)
	// only terms in >= 2 docs survive
	assert.Equal(t, []string{"cat", "dog", "sat"}, v.Terms())

	v = NewVectorizer(WithMinDF(100))
	_, err = v.FitTransform(sampleDocs)
	assert.NotNil(t, err)
}

func TestVectorizerTransformUnfitted(t *testing.T) {
	v := NewVectorizer()
	_, err := v.Transform(sampleDocs)
	assert.NotNil(t, err)
}

func TestVectorizerTransformIgnoresUnknown(t *testing.T) {
	v := NewVectorizer()
	_, err := v.FitTransform(sampleDocs)
	require.Nil(t, err)

	m, err := v.Transform([][]string{{"cat", "zeppelin"}})
	require.Nil(t, err)
	_, cols := m.Dims()
	assert.Equal(t, len(v.Terms()), cols)
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestGroupVectorizer(t *testing.T) {
	gv := NewGroupVectorizer()
	m, err := gv.FitTransform(sampleDocs, []string{"a", "b", "a"})
	require.Nil(t, err)

	rows, _ := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, []string{"a", "b"}, gv.Groups())

	// group "a" merges docs 0 and 2: three "cat" occurrences
	assert.Equal(t, 3.0, m.At(0, indexOf(t, gv.Terms(), "cat")))

	_, err = gv.FitTransform(sampleDocs, []string{"a"})
	assert.NotNil(t, err)
}

func TestCooccurrenceNetwork(t *testing.T) {
	net, err := CooccurrenceNetwork([]string{"a", "b", "a", "c"}, 2)
	require.Nil(t, err)

	// adjacent pairs: a-b, b-a, a-c
	assert.Equal(t, 2.0, net.Weight("a", "b"))
	assert.Equal(t, 1.0, net.Weight("a", "c"))
	assert.Equal(t, 0.0, net.Weight("b", "c"))

	_, err = CooccurrenceNetwork(nil, 2)
	assert.NotNil(t, err)
	_, err = CooccurrenceNetwork([]string{"a"}, 1)
	assert.NotNil(t, err)
}

func TestSimilarityNetwork(t *testing.T) {
	docs := [][]string{
		{"cat", "dog"},
		{"cat", "dog"},
		{"fish"},
	}
	net, err := SimilarityNetwork(docs, []string{"d0", "d1", "d2"}, 0.5)
	require.Nil(t, err)

	assert.Equal(t, 1.0, net.Weight("d0", "d1"))
	assert.Equal(t, 0.0, net.Weight("d0", "d2"))

	_, err = SimilarityNetwork(docs, []string{"d0"}, 0.5)
	assert.NotNil(t, err)
	_, err = SimilarityNetwork(docs, []string{"d0", "d1", "d2"}, 0)
	assert.NotNil(t, err)
}

func TestProject(t *testing.T) {
	v := NewVectorizer()
	m, err := v.FitTransform([][]string{
		{"a", "b", "c"},
		{"a", "b", "d"},
		{"x", "y", "z"},
		{"x", "y", "w"},
		{"p", "q", "r"},
	})
	require.Nil(t, err)

	out, err := Project(m, nil)
	require.Nil(t, err)
	rows, cols := out.Dims()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 2, cols)
}

func TestProjectValidation(t *testing.T) {
	_, err := Project(nil, nil)
	assert.NotNil(t, err)

	v := NewVectorizer()
	m, err := v.FitTransform(sampleDocs)
	require.Nil(t, err)

	bad := 100
	_, err = Project(m, &ProjectorParams{Perplexity: &bad})
	assert.NotNil(t, err)
}

func indexOf(t *testing.T, terms []string, term string) int {
	t.Helper()
	for i, candidate := range terms {
		if candidate == term {
			return i
		}
	}
	t.Fatalf("term %q not in vocabulary", term)
	return -1
}
