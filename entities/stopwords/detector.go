//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package stopwords

import (
	"strings"

	"github.com/pkg/errors"
)

// Detector answers stopword membership for one language preset, with
// optional user additions and removals layered on top.
type Detector struct {
	words map[string]struct{}
}

func NewDetectorFromPreset(preset string) (*Detector, error) {
	list, ok := Presets[preset]
	if !ok {
		return nil, errors.Errorf("unknown stopword preset %q", preset)
	}

	d := &Detector{words: make(map[string]struct{}, len(list))}
	for _, w := range list {
		d.words[w] = struct{}{}
	}
	return d, nil
}

// Add extends the detector with extra stopwords.
func (d *Detector) Add(words ...string) {
	for _, w := range words {
		d.words[strings.ToLower(w)] = struct{}{}
	}
}

// Remove drops words from the detector, e.g. to keep a preset term
// that matters for a particular corpus.
func (d *Detector) Remove(words ...string) {
	for _, w := range words {
		delete(d.words, strings.ToLower(w))
	}
}

func (d *Detector) IsStopword(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

func (d *Detector) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}
