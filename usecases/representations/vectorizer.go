//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

// Package representations turns tokenized docs into numeric and graph
// structures: weighted doc-term matrices, co-occurrence and similarity
// networks, and low-dimensional projections.
package representations

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

type TfWeighting string

const (
	TfLinear TfWeighting = "linear"
	TfSqrt   TfWeighting = "sqrt"
	TfLog    TfWeighting = "log"
	TfBinary TfWeighting = "binary"
)

type IdfWeighting string

const (
	IdfNone     IdfWeighting = "none"
	IdfStandard IdfWeighting = "standard"
	IdfSmooth   IdfWeighting = "smooth"
)

type NormWeighting string

const (
	NormNone NormWeighting = "none"
	NormL1   NormWeighting = "l1"
	NormL2   NormWeighting = "l2"
)

// Vectorizer fits a vocabulary over tokenized docs and transforms them
// into a weighted doc-term matrix. Fit once, transform any number of
// doc batches; terms unseen at fit time are ignored.
type Vectorizer struct {
	tf   TfWeighting
	idf  IdfWeighting
	norm NormWeighting

	// MinDF drops terms in fewer than this many docs; MaxDFRatio drops
	// terms in more than this fraction of docs.
	minDF      int
	maxDFRatio float64

	vocabulary map[string]int
	terms      []string
	docFreqs   []float64
	nDocs      int
}

type VectorizerOption func(*Vectorizer)

func WithTf(tf TfWeighting) VectorizerOption {
	return func(v *Vectorizer) { v.tf = tf }
}

func WithIdf(idf IdfWeighting) VectorizerOption {
	return func(v *Vectorizer) { v.idf = idf }
}

func WithNorm(norm NormWeighting) VectorizerOption {
	return func(v *Vectorizer) { v.norm = norm }
}

func WithMinDF(minDF int) VectorizerOption {
	return func(v *Vectorizer) { v.minDF = minDF }
}

func WithMaxDFRatio(ratio float64) VectorizerOption {
	return func(v *Vectorizer) { v.maxDFRatio = ratio }
}

func NewVectorizer(opts ...VectorizerOption) *Vectorizer {
	v := &Vectorizer{
		tf:         TfLinear,
		idf:        IdfNone,
		norm:       NormNone,
		minDF:      1,
		maxDFRatio: 1.0,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Fit builds the vocabulary and document frequencies from docs.
func (v *Vectorizer) Fit(docs [][]string) error {
	if len(docs) == 0 {
		return errors.New("no docs to fit on")
	}

	dfs := map[string]int{}
	for _, doc := range docs {
		seen := map[string]struct{}{}
		for _, term := range doc {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			dfs[term]++
		}
	}

	maxDF := int(v.maxDFRatio * float64(len(docs)))
	var kept []string
	for term, df := range dfs {
		if df < v.minDF || df > maxDF {
			continue
		}
		kept = append(kept, term)
	}
	if len(kept) == 0 {
		return errors.New("document frequency filters removed the entire vocabulary")
	}
	sort.Strings(kept)

	v.terms = kept
	v.vocabulary = make(map[string]int, len(kept))
	v.docFreqs = make([]float64, len(kept))
	for i, term := range kept {
		v.vocabulary[term] = i
		v.docFreqs[i] = float64(dfs[term])
	}
	v.nDocs = len(docs)
	return nil
}

// Transform maps docs onto the fitted vocabulary, applying the
// configured tf/idf/norm weightings.
func (v *Vectorizer) Transform(docs [][]string) (*mat.Dense, error) {
	if v.vocabulary == nil {
		return nil, errors.New("vectorizer must be fitted before transforming")
	}
	if len(docs) == 0 {
		return nil, errors.New("no docs to transform")
	}

	m := mat.NewDense(len(docs), len(v.terms), nil)
	for i, doc := range docs {
		for _, term := range doc {
			if j, ok := v.vocabulary[term]; ok {
				m.Set(i, j, m.At(i, j)+1)
			}
		}
	}

	v.applyTf(m)
	v.applyIdf(m)
	v.applyNorm(m)
	return m, nil
}

func (v *Vectorizer) FitTransform(docs [][]string) (*mat.Dense, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	return v.Transform(docs)
}

// Terms returns the fitted vocabulary in column order.
func (v *Vectorizer) Terms() []string {
	return v.terms
}

func (v *Vectorizer) applyTf(m *mat.Dense) {
	if v.tf == TfLinear {
		return
	}
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			val := m.At(i, j)
			if val == 0 {
				continue
			}
			switch v.tf {
			case TfSqrt:
				m.Set(i, j, math.Sqrt(val))
			case TfLog:
				m.Set(i, j, 1+math.Log(val))
			case TfBinary:
				m.Set(i, j, 1)
			}
		}
	}
}

func (v *Vectorizer) applyIdf(m *mat.Dense) {
	if v.idf == IdfNone || v.idf == "" {
		return
	}
	rows, cols := m.Dims()
	n := float64(v.nDocs)
	for j := 0; j < cols; j++ {
		var idf float64
		switch v.idf {
		case IdfStandard:
			idf = math.Log(n/v.docFreqs[j]) + 1
		case IdfSmooth:
			idf = math.Log((1+n)/(1+v.docFreqs[j])) + 1
		}
		for i := 0; i < rows; i++ {
			if val := m.At(i, j); val != 0 {
				m.Set(i, j, val*idf)
			}
		}
	}
}

func (v *Vectorizer) applyNorm(m *mat.Dense) {
	if v.norm == NormNone || v.norm == "" {
		return
	}
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		var norm float64
		for j := 0; j < cols; j++ {
			val := m.At(i, j)
			if v.norm == NormL1 {
				norm += math.Abs(val)
			} else {
				norm += val * val
			}
		}
		if v.norm == NormL2 {
			norm = math.Sqrt(norm)
		}
		if norm == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			m.Set(i, j, m.At(i, j)/norm)
		}
	}
}

// GroupVectorizer aggregates docs sharing a group label into one row
// per group, e.g. one vector per speaker or per category.
type GroupVectorizer struct {
	*Vectorizer
	groups []string
}

func NewGroupVectorizer(opts ...VectorizerOption) *GroupVectorizer {
	return &GroupVectorizer{Vectorizer: NewVectorizer(opts...)}
}

// FitTransform merges each group's docs and returns one matrix row per
// distinct group, ordered by first appearance.
func (gv *GroupVectorizer) FitTransform(docs [][]string, groups []string) (*mat.Dense, error) {
	if len(docs) != len(groups) {
		return nil, errors.Errorf("docs and groups lengths don't match: %d vs %d",
			len(docs), len(groups))
	}

	merged := map[string][]string{}
	var order []string
	for i, doc := range docs {
		if _, ok := merged[groups[i]]; !ok {
			order = append(order, groups[i])
		}
		merged[groups[i]] = append(merged[groups[i]], doc...)
	}

	groupDocs := make([][]string, len(order))
	for i, group := range order {
		groupDocs[i] = merged[group]
	}

	gv.groups = order
	return gv.Vectorizer.FitTransform(groupDocs)
}

// Groups returns the row labels of the last FitTransform, in order.
func (gv *GroupVectorizer) Groups() []string {
	return gv.groups
}
