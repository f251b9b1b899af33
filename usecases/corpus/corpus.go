//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

// Package corpus manages an ordered collection of docs processed by a
// single pipeline, with concurrent ingestion and corpus-wide term
// statistics.
package corpus

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/textkit/textkit/entities/document"
	"github.com/textkit/textkit/usecases/monitoring"
	"github.com/textkit/textkit/usecases/pipeline"
)

type Corpus struct {
	pipe    *pipeline.Pipeline
	logger  logrus.FieldLogger
	metrics *monitoring.PrometheusMetrics

	mu   sync.RWMutex
	docs []*document.Doc
}

type Option func(*Corpus)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Corpus) { c.logger = logger }
}

func WithMetrics(metrics *monitoring.PrometheusMetrics) Option {
	return func(c *Corpus) { c.metrics = metrics }
}

func New(pipe *pipeline.Pipeline, opts ...Option) (*Corpus, error) {
	if pipe == nil {
		return nil, errors.New("pipeline must not be nil")
	}
	c := &Corpus{
		pipe:   pipe,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// AddText annotates one text and appends it to the corpus.
func (c *Corpus) AddText(text string) *document.Doc {
	start := time.Now()
	doc := c.pipe.Process(text)
	c.metrics.ObserveDocProcessed(c.pipe.Lang(), time.Since(start))

	c.mu.Lock()
	c.docs = append(c.docs, doc)
	c.mu.Unlock()
	return doc
}

// AddTexts annotates texts concurrently and appends them in input
// order. Concurrency <= 0 means one worker per CPU.
func (c *Corpus) AddTexts(ctx context.Context, texts []string, concurrency int) error {
	records := make([]document.Record, len(texts))
	for i, text := range texts {
		records[i] = document.Record{Text: text}
	}
	return c.AddRecords(ctx, records, concurrency)
}

// AddRecords annotates dataset records concurrently and appends them
// in input order.
func (c *Corpus) AddRecords(ctx context.Context, records []document.Record, concurrency int) error {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	processed := make([]*document.Doc, len(records))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for i := range records {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			processed[i] = c.pipe.ProcessRecord(records[i])
			c.metrics.ObserveDocProcessed(c.pipe.Lang(), time.Since(start))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "process records")
	}

	c.mu.Lock()
	c.docs = append(c.docs, processed...)
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"action": "corpus_add_records",
		"count":  len(records),
		"lang":   c.pipe.Lang(),
	}).Debug("added records to corpus")
	return nil
}

// Docs returns the corpus contents in insertion order.
func (c *Corpus) Docs() []*document.Doc {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*document.Doc, len(c.docs))
	copy(out, c.docs)
	return out
}

func (c *Corpus) NDocs() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

func (c *Corpus) NSents() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, doc := range c.docs {
		n += len(doc.Sentences)
	}
	return n
}

func (c *Corpus) NTokens() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, doc := range c.docs {
		n += len(doc.Tokens)
	}
	return n
}

// WordCounts tallies term occurrences across the whole corpus.
func (c *Corpus) WordCounts(filterStops bool) map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := map[string]int{}
	for _, doc := range c.docs {
		for _, term := range doc.TokenStrings(filterStops) {
			out[term]++
		}
	}
	return out
}

// WordDocCounts tallies, per term, the number of docs it appears in.
func (c *Corpus) WordDocCounts(filterStops bool) map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := map[string]int{}
	for _, doc := range c.docs {
		seen := map[string]struct{}{}
		for _, term := range doc.TokenStrings(filterStops) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			out[term]++
		}
	}
	return out
}

// TokenizedDocs returns the corpus as term slices, the input shape the
// vectorizers consume.
func (c *Corpus) TokenizedDocs(filterStops bool) [][]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([][]string, len(c.docs))
	for i, doc := range c.docs {
		out[i] = doc.TokenStrings(filterStops)
	}
	return out
}
