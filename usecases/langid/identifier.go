//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

// Package langid identifies the language of a text with character
// n-gram profiles and the classic out-of-place rank distance. A small
// built-in model covers common European languages; a larger versioned
// model can be downloaded into the data dir and loaded in its place.
package langid

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	// BuiltinVersion marks the embedded seed-derived model.
	BuiltinVersion = "builtin"

	ngramSize   = 3
	profileSize = 300
)

// Prediction is a language guess with a confidence in (0, 1].
type Prediction struct {
	Lang       string
	Confidence float64
}

// Identifier scores text against per-language n-gram rank profiles.
type Identifier struct {
	version  string
	profiles map[string][]string
	ranks    map[string]map[string]int
}

// New builds an identifier from the embedded seed profiles.
func New() *Identifier {
	profiles := make(map[string][]string, len(seedTexts))
	for lang, seed := range seedTexts {
		profiles[lang] = buildProfile(seed)
	}
	return newFromProfiles(BuiltinVersion, profiles)
}

func newFromProfiles(version string, profiles map[string][]string) *Identifier {
	id := &Identifier{
		version:  version,
		profiles: profiles,
		ranks:    make(map[string]map[string]int, len(profiles)),
	}
	for lang, profile := range profiles {
		ranks := make(map[string]int, len(profile))
		for i, gram := range profile {
			ranks[gram] = i
		}
		id.ranks[lang] = ranks
	}
	return id
}

func (id *Identifier) Version() string {
	return id.version
}

// Langs lists the languages the identifier can distinguish.
func (id *Identifier) Langs() []string {
	langs := make([]string, 0, len(id.profiles))
	for lang := range id.profiles {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Identify returns the most likely language of text.
func (id *Identifier) Identify(text string) (Prediction, error) {
	preds, err := id.IdentifyTopN(text, 1)
	if err != nil {
		return Prediction{}, err
	}
	return preds[0], nil
}

// IdentifyTopN returns up to n language guesses, most likely first.
func (id *Identifier) IdentifyTopN(text string, n int) ([]Prediction, error) {
	if n < 1 {
		return nil, errors.Errorf("n must be at least 1, got: %d", n)
	}

	textProfile := buildProfile(text)
	if len(textProfile) == 0 {
		return nil, errors.New("text has no letters to identify")
	}

	// out-of-place distance: sum of rank displacements, capped at the
	// profile size for unknown n-grams
	type scored struct {
		lang string
		dist float64
	}
	var all []scored
	for lang, ranks := range id.ranks {
		var dist float64
		for i, gram := range textProfile {
			if rank, ok := ranks[gram]; ok {
				d := float64(rank - i)
				if d < 0 {
					d = -d
				}
				dist += d
			} else {
				dist += profileSize
			}
		}
		all = append(all, scored{lang: lang, dist: dist / float64(len(textProfile))})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].dist != all[j].dist {
			return all[i].dist < all[j].dist
		}
		return all[i].lang < all[j].lang
	})

	if n > len(all) {
		n = len(all)
	}
	out := make([]Prediction, n)
	for i := 0; i < n; i++ {
		out[i] = Prediction{
			Lang:       all[i].lang,
			Confidence: 1 - all[i].dist/float64(profileSize),
		}
		if out[i].Confidence < 0 {
			out[i].Confidence = 0
		}
	}
	return out, nil
}

// buildProfile returns the text's n-grams most frequent first, capped
// at profileSize. Letters only; words are padded with spaces so word
// boundaries show up in the grams.
func buildProfile(text string) []string {
	counts := map[string]int{}
	for _, word := range strings.Fields(strings.ToLower(text)) {
		cleaned := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) {
				return r
			}
			return -1
		}, word)
		if cleaned == "" {
			continue
		}
		padded := " " + cleaned + " "
		runes := []rune(padded)
		for i := 0; i+ngramSize <= len(runes); i++ {
			counts[string(runes[i:i+ngramSize])]++
		}
	}

	grams := make([]string, 0, len(counts))
	for gram := range counts {
		grams = append(grams, gram)
	}
	sort.Slice(grams, func(i, j int) bool {
		if counts[grams[i]] != counts[grams[j]] {
			return counts[grams[i]] > counts[grams[j]]
		}
		return grams[i] < grams[j]
	})

	if len(grams) > profileSize {
		grams = grams[:profileSize]
	}
	return grams
}
