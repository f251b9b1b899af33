//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package representations

import (
	"github.com/danaugrs/go-tsne/tsne"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ProjectorParams control the t-SNE embedding of doc vectors into a
// low-dimensional space for visualization.
type ProjectorParams struct {
	Dimensions   *int // optional parameter
	Perplexity   *int // optional parameter
	Iterations   *int // optional parameter
	LearningRate *int // optional parameter
}

func (p *ProjectorParams) SetDefaultsAndValidate(inputSize, dims int) error {
	p.setDefaults(inputSize)
	return p.validate(inputSize, dims)
}

func (p *ProjectorParams) setDefaults(inputSize int) {
	perplexity := inputSize - 1
	if perplexity > 5 {
		perplexity = 5
	}
	p.Dimensions = p.optionalInt(p.Dimensions, 2)
	p.Perplexity = p.optionalInt(p.Perplexity, perplexity)
	p.Iterations = p.optionalInt(p.Iterations, 100)
	p.LearningRate = p.optionalInt(p.LearningRate, 25)
}

func (p *ProjectorParams) validate(inputSize, dims int) error {
	if *p.Perplexity >= inputSize {
		return errors.Errorf("perplexity must be smaller than amount of items: %d >= %d",
			*p.Perplexity, inputSize)
	}
	if *p.Iterations < 1 {
		return errors.Errorf("iterations must be at least 1, got: %d", *p.Iterations)
	}
	if *p.LearningRate < 1 {
		return errors.Errorf("learningRate must be at least 1, got: %d", *p.LearningRate)
	}
	if *p.Dimensions < 1 {
		return errors.Errorf("dimensions must be at least 1, got: %d", *p.Dimensions)
	}
	if *p.Dimensions >= dims {
		return errors.Errorf("dimensions must be smaller than source dimensions: %d >= %d",
			*p.Dimensions, dims)
	}
	return nil
}

func (p ProjectorParams) optionalInt(in *int, defaultValue int) *int {
	if in == nil {
		return &defaultValue
	}
	return in
}

// Project embeds the rows of a doc-term (or doc-vector) matrix into
// the target dimensionality with t-SNE.
func Project(m *mat.Dense, params *ProjectorParams) (*mat.Dense, error) {
	if m == nil {
		return nil, errors.New("no matrix provided")
	}
	if params == nil {
		params = &ProjectorParams{}
	}

	rows, dims := m.Dims()
	if rows == 0 {
		return nil, errors.New("matrix has no rows")
	}
	if err := params.SetDefaultsAndValidate(rows, dims); err != nil {
		return nil, errors.Wrap(err, "invalid params")
	}

	t := tsne.NewTSNE(*params.Dimensions, float64(*params.Perplexity),
		float64(*params.LearningRate), *params.Iterations, false)
	t.EmbedData(m, nil)

	outRows, outCols := t.Y.Dims()
	if outRows != rows {
		return nil, errors.Errorf("incorrect matrix dimensions after t-SNE: %d != %d",
			rows, outRows)
	}

	out := mat.NewDense(outRows, outCols, nil)
	out.Copy(t.Y)
	return out, nil
}
