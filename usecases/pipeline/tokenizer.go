//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package pipeline

import (
	"log"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/go-ego/gse"
	koDict "github.com/ikawaha/kagome-dict-ko"
	kagomeDict "github.com/ikawaha/kagome-dict/dict"
	ipaDict "github.com/ikawaha/kagome-dict/ipa"
	kagomeTokenizer "github.com/ikawaha/kagome/v2/tokenizer"
)

const (
	TokenizationWord       = "word"
	TokenizationLowercase  = "lowercase"
	TokenizationWhitespace = "whitespace"
	TokenizationField      = "field"
	TokenizationTrigram    = "trigram"
	TokenizationGse        = "gse"
	TokenizationKagomeJa   = "kagome_ja"
	TokenizationKagomeKr   = "kagome_kr"
)

var Tokenizations = []string{
	TokenizationWord,
	TokenizationLowercase,
	TokenizationWhitespace,
	TokenizationField,
	TokenizationTrigram,
	TokenizationGse,
	TokenizationKagomeJa,
	TokenizationKagomeKr,
}

var (
	gseTokenizer     *gse.Segmenter
	gseTokenizerLock = &sync.Mutex{}
	UseGse           = false
)

func init() {
	initGse()
}

func initGse() {
	if os.Getenv("TEXTKIT_USE_GSE") == "true" {
		UseGse = true
	}
	if UseGse {
		loadGse()
	}
}

// loadGse builds the shared gse segmenter on first use and returns
// nil when the dictionaries cannot be loaded.
func loadGse() *gse.Segmenter {
	gseTokenizerLock.Lock()
	defer gseTokenizerLock.Unlock()
	if gseTokenizer == nil {
		seg, err := gse.New("ja")
		if err != nil {
			log.Printf("failed to create the gse tokenizer: %v", err)
			return nil
		}
		gseTokenizer = &seg
	}
	return gseTokenizer
}

// Tokenize splits text into terms according to the given tokenization mode.
func Tokenize(tokenization string, in string) []string {
	switch tokenization {
	case TokenizationWord:
		return tokenizeWord(in)
	case TokenizationLowercase:
		return tokenizeLowercase(in)
	case TokenizationWhitespace:
		return tokenizeWhitespace(in)
	case TokenizationField:
		return tokenizeField(in)
	case TokenizationTrigram:
		return tokenizeTrigram(in)
	case TokenizationGse:
		return tokenizeGSE(in)
	case TokenizationKagomeJa:
		return tokenizeKagomeJa(in)
	case TokenizationKagomeKr:
		return tokenizeKagomeKr(in)
	default:
		return []string{}
	}
}

func removeEmptyStrings(terms []string) []string {
	for i := 0; i < len(terms); i++ {
		if terms[i] == "" || terms[i] == " " {
			terms = append(terms[:i], terms[i+1:]...)
			i--
		}
	}
	return terms
}

// tokenizeField trims white spaces and keeps the input as a single term
func tokenizeField(in string) []string {
	return []string{strings.TrimFunc(in, unicode.IsSpace)}
}

// tokenizeWhitespace splits on white spaces, does not alter casing
func tokenizeWhitespace(in string) []string {
	return strings.FieldsFunc(in, unicode.IsSpace)
}

// tokenizeLowercase splits on white spaces and lowercases the words
func tokenizeLowercase(in string) []string {
	terms := tokenizeWhitespace(in)
	return lowercase(terms)
}

// tokenizeWord splits on any non-alphanumerical and lowercases the words
func tokenizeWord(in string) []string {
	terms := strings.FieldsFunc(in, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return lowercase(terms)
}

// tokenizeTrigram strips whitespace and punctuation, lowercases, then
// groups the remaining runes into overlapping trigrams
func tokenizeTrigram(in string) []string {
	inputString := strings.ToLower(strings.Join(strings.FieldsFunc(in, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}), ""))
	runes := []rune(inputString)
	var trigrams []string
	for i := 0; i < len(runes)-2; i++ {
		trigrams = append(trigrams, string(runes[i:i+3]))
	}
	return trigrams
}

// tokenizeGSE uses the gse tokenizer to tokenize Chinese and Japanese
func tokenizeGSE(in string) []string {
	if !UseGse || loadGse() == nil {
		return []string{}
	}
	gseTokenizerLock.Lock()
	defer gseTokenizerLock.Unlock()
	terms := gseTokenizer.CutAll(in)

	terms = removeEmptyStrings(terms)

	alpha := tokenizeWord(in)
	return append(terms, alpha...)
}

// segmentRun splits a single letter run with the dictionary tokenizer
// the mode names. Sub-surfaces keep input order, so callers can map
// them back to byte offsets. Modes without a dictionary return nil.
func segmentRun(tokenization, in string) []string {
	switch tokenization {
	case TokenizationGse:
		if loadGse() == nil {
			return nil
		}
		gseTokenizerLock.Lock()
		defer gseTokenizerLock.Unlock()
		return removeEmptyStrings(gseTokenizer.Cut(in, true))
	case TokenizationKagomeJa:
		return tokenizeKagomeJa(in)
	case TokenizationKagomeKr:
		return tokenizeKagomeKr(in)
	default:
		return nil
	}
}

type kagomeWrapper struct {
	tokenizer *kagomeTokenizer.Tokenizer
	mutex     sync.RWMutex
}

var (
	japaneseTokenizer kagomeWrapper
	koreanTokenizer   kagomeWrapper
)

func initializeKagomeTokenizer(dictInstance *kagomeDict.Dict, wrapper *kagomeWrapper, language string) error {
	wrapper.mutex.Lock()
	defer wrapper.mutex.Unlock()

	if wrapper.tokenizer != nil {
		return nil
	}

	newTokenizer, err := kagomeTokenizer.New(dictInstance)
	if err != nil {
		log.Printf("failed to create a tokenizer using: %v; error: %v", language, err)
		return err
	}

	wrapper.tokenizer = newTokenizer
	return nil
}

func tokenizeWithKagome(in string, wrapper *kagomeWrapper) []string {
	wrapper.mutex.Lock()
	defer wrapper.mutex.Unlock()

	if wrapper.tokenizer == nil {
		return []string{}
	}

	kagomeTokens := wrapper.tokenizer.Tokenize(in)
	terms := make([]string, 0, len(kagomeTokens))

	for _, token := range kagomeTokens {
		if token.Surface != "EOS" && token.Surface != "BOS" {
			terms = append(terms, token.Surface)
		}
	}

	return removeEmptyStrings(terms)
}

var (
	initJapaneseTokenizerOnce sync.Once
	initKoreanTokenizerOnce   sync.Once
)

func tokenizeKagomeJa(in string) []string {
	var initErr error
	initJapaneseTokenizerOnce.Do(func() {
		initErr = initializeKagomeTokenizer(ipaDict.Dict(), &japaneseTokenizer, "Japanese")
	})
	if initErr != nil {
		log.Printf("Japanese tokenizer not available: %v", initErr)
		return []string{}
	}
	return tokenizeWithKagome(in, &japaneseTokenizer)
}

func tokenizeKagomeKr(in string) []string {
	var initErr error
	initKoreanTokenizerOnce.Do(func() {
		initErr = initializeKagomeTokenizer(koDict.Dict(), &koreanTokenizer, "Korean")
	})
	if initErr != nil {
		log.Printf("Korean tokenizer not available: %v", initErr)
		return []string{}
	}
	return tokenizeWithKagome(in, &koreanTokenizer)
}

func lowercase(terms []string) []string {
	for i := range terms {
		terms[i] = strings.ToLower(terms[i])
	}
	return terms
}

// TokenizeAndCount tokenizes the input and reports each unique term
// with its occurrence count.
func TokenizeAndCount(tokenization string, in string) ([]string, []int) {
	counts := map[string]int{}
	for _, term := range Tokenize(tokenization, in) {
		counts[term]++
	}

	unique := make([]string, len(counts))
	occurrences := make([]int, len(counts))

	i := 0
	for term, n := range counts {
		unique[i] = term
		occurrences[i] = n
		i++
	}

	return unique, occurrences
}
