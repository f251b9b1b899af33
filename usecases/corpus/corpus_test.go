//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package corpus

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textkit/textkit/entities/document"
	"github.com/textkit/textkit/usecases/pipeline"
)

func newTestCorpus(t *testing.T) *Corpus {
	t.Helper()
	p, err := pipeline.New("en")
	require.Nil(t, err)
	c, err := New(p)
	require.Nil(t, err)
	return c
}

func TestCorpusAddText(t *testing.T) {
	c := newTestCorpus(t)

	doc := c.AddText("The cat sat on the mat.")
	assert.NotNil(t, doc)
	assert.Equal(t, 1, c.NDocs())
	assert.Equal(t, 1, c.NSents())
	assert.Equal(t, 7, c.NTokens())
}

func TestCorpusAddTextsPreservesOrder(t *testing.T) {
	c := newTestCorpus(t)

	texts := make([]string, 50)
	for i := range texts {
		texts[i] = fmt.Sprintf("Document number %d has its own text.", i)
	}
	require.Nil(t, c.AddTexts(context.Background(), texts, 8))

	docs := c.Docs()
	require.Len(t, docs, 50)
	for i, doc := range docs {
		assert.Equal(t, texts[i], doc.Text)
	}
}

func TestCorpusAddRecordsKeepsMeta(t *testing.T) {
	c := newTestCorpus(t)

	records := []document.Record{
		{Text: "First text here.", Meta: map[string]interface{}{"title": "one"}},
		{Text: "Second text here.", Meta: map[string]interface{}{"title": "two"}},
	}
	require.Nil(t, c.AddRecords(context.Background(), records, 2))

	docs := c.Docs()
	require.Len(t, docs, 2)
	assert.Equal(t, "one", docs[0].Meta["title"])
	assert.Equal(t, "two", docs[1].Meta["title"])
}

func TestCorpusAddRecordsCancelled(t *testing.T) {
	c := newTestCorpus(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	texts := make([]string, 100)
	for i := range texts {
		texts[i] = "Some text."
	}
	err := c.AddTexts(ctx, texts, 2)
	assert.NotNil(t, err)
}

func TestCorpusTermStatistics(t *testing.T) {
	c := newTestCorpus(t)
	require.Nil(t, c.AddTexts(context.Background(), []string{
		"The cat sat.",
		"The cat ran.",
		"A dog slept.",
	}, 1))

	counts := c.WordCounts(true)
	assert.Equal(t, 2, counts["cat"])
	assert.Equal(t, 1, counts["dog"])

	docCounts := c.WordDocCounts(true)
	assert.Equal(t, 2, docCounts["cat"])
	assert.Equal(t, 1, docCounts["sat"])

	tokenized := c.TokenizedDocs(true)
	require.Len(t, tokenized, 3)
	assert.Equal(t, []string{"cat", "sat"}, tokenized[0])
}

func TestCorpusNilPipeline(t *testing.T) {
	_, err := New(nil)
	assert.NotNil(t, err)
}
