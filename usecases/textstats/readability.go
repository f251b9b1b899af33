//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package textstats

import (
	"math"

	"github.com/textkit/textkit/entities/document"
)

// Readability bundles the classic text-complexity formulas. Formulas
// designed for a specific language (Gulpease: it, Mu: es, Wiener: de)
// are still computed for other languages; interpreting them is the
// caller's problem.
type Readability struct {
	AutomatedReadabilityIndex float64
	ColemanLiauIndex          float64
	FleschKincaidGradeLevel   float64
	FleschReadingEase         float64
	GulpeaseIndex             float64
	GunningFogIndex           float64
	LixIndex                  float64
	MuLegibilityIndex         float64
	SmogIndex                 float64
	WienerSachtextformel      float64
}

// Readability computes all formulas in one pass over the doc's counts.
func (a *Analyzer) Readability(doc *document.Doc) (Readability, error) {
	c, err := a.Counts(doc)
	if err != nil {
		return Readability{}, err
	}

	words := float64(c.Words)
	sents := float64(c.Sentences)
	chars := float64(c.Chars)
	letters := float64(c.Letters)
	syll := float64(c.Syllables)
	long := float64(c.LongWords)
	mono := float64(c.MonosyllableWords)
	poly := float64(c.PolysyllableWords)

	r := Readability{
		AutomatedReadabilityIndex: 4.71*(chars/words) + 0.5*(words/sents) - 21.43,
		ColemanLiauIndex:          0.0588*(100*letters/words) - 0.296*(100*sents/words) - 15.8,
		FleschKincaidGradeLevel:   11.8*(syll/words) + 0.39*(words/sents) - 15.59,
		FleschReadingEase:         fleschReadingEase(a.lang, words, sents, syll),
		GulpeaseIndex:             89 + (300*sents-10*letters)/words,
		GunningFogIndex:           0.4 * ((words / sents) + 100*(poly/words)),
		LixIndex:                  (words / sents) + 100*(long/words),
		MuLegibilityIndex:         muLegibility(doc),
		SmogIndex:                 1.0430*math.Sqrt(30*(poly/sents)) + 3.1291,
		WienerSachtextformel: 0.1935*(100*poly/words) + 0.1672*(words/sents) +
			0.1297*(100*long/words) - 0.0327*(100*mono/words) - 0.875,
	}
	return r, nil
}

// fleschReadingEase applies the language-adapted weightings; unknown
// languages fall back to the English coefficients.
func fleschReadingEase(lang string, words, sents, syll float64) float64 {
	wps := words / sents
	spw := syll / words
	switch lang {
	case "de":
		return 180 - wps - 58.5*spw
	case "es":
		return 206.84 - 1.02*wps - 60*spw
	case "fr":
		return 207 - 1.015*wps - 73.6*spw
	case "it":
		return 217 - 1.3*wps - 60*spw
	case "nl":
		return 206.84 - 0.93*wps - 77*spw
	case "pt":
		return 248.835 - 1.015*wps - 84.6*spw
	default:
		return 206.835 - 1.015*wps - 84.6*spw
	}
}

// muLegibility is the Muñoz-Muñoz readability measure for Spanish:
// (n/(n-1)) * (mean/variance) of per-word letter counts, scaled by 100.
func muLegibility(doc *document.Doc) float64 {
	words := doc.Words(false)
	n := float64(len(words))
	if n < 2 {
		return 0
	}

	lengths := make([]float64, len(words))
	var sum float64
	for i, tok := range words {
		l := float64(len([]rune(tok.Surface)))
		lengths[i] = l
		sum += l
	}
	mean := sum / n

	var variance float64
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	variance /= n
	if variance == 0 {
		return 0
	}

	return (n / (n - 1)) * (mean / variance) * 100
}
