//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/textkit/textkit/entities/document"
	"github.com/textkit/textkit/entities/stopwords"
)

var (
	urlRe   = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s<>"]+`)
	emailRe = regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)
)

// Pipeline turns raw text into an annotated document.Doc. It is safe
// for concurrent use once constructed.
type Pipeline struct {
	lang         string
	tokenization string
	stops        *stopwords.Detector
	logger       logrus.FieldLogger
	segmenter    *segmenter
}

type Option func(*Pipeline)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

func WithStopwords(d *stopwords.Detector) Option {
	return func(p *Pipeline) { p.stops = d }
}

// WithTokenization overrides the language default tokenization mode.
func WithTokenization(tokenization string) Option {
	return func(p *Pipeline) { p.tokenization = tokenization }
}

// defaultTokenization picks the mode for languages whose scripts have
// no word boundaries and need dictionary segmentation.
func defaultTokenization(lang string) string {
	switch lang {
	case "ja":
		return TokenizationKagomeJa
	case "ko":
		return TokenizationKagomeKr
	case "zh":
		return TokenizationGse
	default:
		return TokenizationWord
	}
}

// New builds a pipeline for a two-letter language code. Languages
// without a stopword preset get an empty detector.
func New(lang string, opts ...Option) (*Pipeline, error) {
	if lang == "" {
		return nil, errors.New("language must not be empty")
	}

	p := &Pipeline{
		lang:      lang,
		logger:    logrus.StandardLogger(),
		segmenter: newSegmenter(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.tokenization == "" {
		p.tokenization = defaultTokenization(lang)
	}
	known := false
	for _, mode := range Tokenizations {
		if p.tokenization == mode {
			known = true
			break
		}
	}
	if !known {
		return nil, errors.Errorf("tokenization %q not recognized", p.tokenization)
	}

	if p.stops == nil {
		preset := stopwords.NoPreset
		if _, ok := stopwords.Presets[lang]; ok {
			preset = lang
		}
		detector, err := stopwords.NewDetectorFromPreset(preset)
		if err != nil {
			return nil, errors.Wrap(err, "init stopword detector")
		}
		p.stops = detector
	}

	return p, nil
}

func (p *Pipeline) Lang() string {
	return p.lang
}

func (p *Pipeline) Tokenization() string {
	return p.tokenization
}

// Process annotates text with tokens and sentence boundaries.
func (p *Pipeline) Process(text string) *document.Doc {
	doc := &document.Doc{
		Text: text,
		Lang: p.lang,
	}
	doc.Tokens = p.scan(text)
	doc.Sentences = p.segmenter.segment(doc.Tokens)
	return doc
}

// ProcessRecord annotates a dataset record, carrying its metadata over.
func (p *Pipeline) ProcessRecord(rec document.Record) *document.Doc {
	doc := p.Process(rec.Text)
	doc.Meta = rec.Meta
	return doc
}

// scan walks the text byte-wise and emits tokens with exact offsets.
// URLs and emails are matched up front so they survive as single tokens.
func (p *Pipeline) scan(text string) []document.Token {
	protected := protectedSpans(text)

	var tokens []document.Token
	i := 0
	for i < len(text) {
		if span, ok := protected[i]; ok {
			surface := text[i:span.end]
			tokens = append(tokens, p.classify(surface, i, span.end, span.kind))
			i = span.end
			continue
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			end := scanWord(text, i)
			surface := text[i:end]
			if subs := segmentRun(p.tokenization, surface); len(subs) > 0 {
				tokens = append(tokens, p.classifyRun(subs, text, i, end)...)
			} else {
				tokens = append(tokens, p.classify(surface, i, end, spanWord))
			}
			i = end
		default:
			tokens = append(tokens, p.classify(text[i:i+size], i, i+size, spanPunct))
			i += size
		}
	}
	return tokens
}

type spanKind int

const (
	spanWord spanKind = iota
	spanPunct
	spanURL
	spanEmail
)

type span struct {
	end  int
	kind spanKind
}

func protectedSpans(text string) map[int]span {
	out := map[int]span{}
	for _, loc := range urlRe.FindAllStringIndex(text, -1) {
		end := loc[1]
		// trailing sentence punctuation is not part of the URL
		for end > loc[0] && strings.ContainsRune(".,;:!?)'\"", rune(text[end-1])) {
			end--
		}
		out[loc[0]] = span{end: end, kind: spanURL}
	}
	for _, loc := range emailRe.FindAllStringIndex(text, -1) {
		if _, taken := out[loc[0]]; !taken {
			out[loc[0]] = span{end: loc[1], kind: spanEmail}
		}
	}
	return out
}

// classifyRun maps dictionary sub-surfaces of the run text[start:end]
// back to byte offsets and classifies each as a word token.
func (p *Pipeline) classifyRun(subs []string, text string, start, end int) []document.Token {
	tokens := make([]document.Token, 0, len(subs))
	pos := start
	for _, sub := range subs {
		rel := strings.Index(text[pos:end], sub)
		if rel < 0 {
			continue
		}
		subStart := pos + rel
		tokens = append(tokens, p.classify(sub, subStart, subStart+len(sub), spanWord))
		pos = subStart + len(sub)
	}
	return tokens
}

// scanWord advances from start over letters and digits, allowing a
// single '.' or ',' between digits (3.14, 10,000) and an apostrophe
// between letters (don't).
func scanWord(text string, start int) int {
	i := start
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			i += size
			continue
		}
		if r == '.' || r == ',' || r == '\'' || r == '’' {
			next, nextSize := utf8.DecodeRuneInString(text[i+size:])
			if nextSize == 0 {
				break
			}
			prev, _ := utf8.DecodeLastRuneInString(text[:i])
			numericJoin := (r == '.' || r == ',') && unicode.IsNumber(prev) && unicode.IsNumber(next)
			apostropheJoin := (r == '\'' || r == '’') && unicode.IsLetter(prev) && unicode.IsLetter(next)
			if numericJoin || apostropheJoin {
				i += size
				continue
			}
		}
		break
	}
	return i
}

func (p *Pipeline) classify(surface string, start, end int, kind spanKind) document.Token {
	lower := strings.ToLower(surface)
	tok := document.Token{
		Surface: surface,
		Lower:   lower,
		Start:   start,
		End:     end,
	}

	switch kind {
	case spanURL:
		tok.LikeURL = true
		return tok
	case spanEmail:
		tok.LikeEmail = true
		return tok
	case spanPunct:
		tok.IsPunct = true
		return tok
	}

	alpha, digit := true, true
	for _, r := range surface {
		if !unicode.IsLetter(r) && r != '\'' && r != '’' {
			alpha = false
		}
		if !unicode.IsNumber(r) && r != '.' && r != ',' {
			digit = false
		}
	}
	tok.IsAlpha = alpha
	tok.IsDigit = digit
	tok.LikeNumber = digit
	tok.IsStopword = p.stops.IsStopword(lower)
	return tok
}
