//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package textstats

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

const syllableCacheSize = 8192

// SyllableCounter estimates per-word syllable counts with language
// specific vowel-group rules. Counts are memoized in an LRU cache since
// real corpora repeat most of their vocabulary.
type SyllableCounter struct {
	lang  string
	count func(string) int
	cache *lru.Cache[string, int]
}

func NewSyllableCounter(lang string) (*SyllableCounter, error) {
	sc := &SyllableCounter{lang: lang}
	switch lang {
	case "en":
		sc.count = countSyllablesEn
	case "es":
		sc.count = countSyllablesEs
	default:
		// plain vowel-group counting holds up reasonably for most
		// latin-script languages
		sc.count = countVowelGroups
	}

	cache, err := lru.New[string, int](syllableCacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "init syllable cache")
	}
	sc.cache = cache
	return sc, nil
}

func (sc *SyllableCounter) Lang() string {
	return sc.lang
}

// Count returns the estimated number of syllables in word. Words
// without any vowel count as one syllable.
func (sc *SyllableCounter) Count(word string) int {
	word = strings.ToLower(word)
	if n, ok := sc.cache.Get(word); ok {
		return n
	}
	n := sc.count(word)
	sc.cache.Add(word, n)
	return n
}

func isVowel(r rune, vowels string) bool {
	return strings.ContainsRune(vowels, r)
}

func countVowelGroups(word string) int {
	const vowels = "aeiouyàáâäãåèéêëìíîïòóôöõùúûüāēīōū"
	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r, vowels)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if count == 0 {
		count = 1
	}
	return count
}

// countSyllablesEn counts vowel groups, then corrects for silent final
// "e" and for final "-le" after a consonant ("table", "little").
func countSyllablesEn(word string) int {
	const vowels = "aeiouy"
	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r, vowels)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") &&
		!strings.HasSuffix(word, "ee") && count > 1 {
		count--
	}
	if strings.HasSuffix(word, "ed") && count > 1 && len(word) > 3 {
		// "-ed" after most consonants is silent: "jumped", "walked"
		r := rune(word[len(word)-3])
		if r != 't' && r != 'd' && !isVowel(r, vowels) {
			count--
		}
	}

	if count == 0 {
		count = 1
	}
	return count
}

// countSyllablesEs merges strong+weak vowel pairs (diphthongs) into one
// syllable; two strong vowels form a hiatus and stay separate.
func countSyllablesEs(word string) int {
	strong := "aeoáéó"
	weak := "iuüíú"
	all := strong + weak

	count := 0
	var prev rune
	prevVowel := false
	for _, r := range word {
		v := isVowel(r, all)
		if v {
			if !prevVowel {
				count++
			} else if isVowel(prev, strong) && isVowel(r, strong) {
				// hiatus: "le-er", "ca-os"
				count++
			} else if isVowel(prev, "íú") || isVowel(r, "íú") {
				// accented weak vowel breaks the diphthong: "dí-a"
				count++
			}
		}
		prev = r
		prevVowel = v
	}
	if count == 0 {
		count = 1
	}
	return count
}
