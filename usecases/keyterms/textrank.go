//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package keyterms

import (
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/textkit/textkit/entities/document"
)

const (
	defaultTopN       = 10
	defaultWindowSize = 2

	pageRankDamping   = 0.85
	pageRankTolerance = 1e-6
)

type TextRankOptions struct {
	// TopN caps the number of returned keyterms.
	TopN int
	// WindowSize is the token distance within which two candidates
	// co-occur. 2 means adjacent candidates only.
	WindowSize int
	// PositionBias weighs terms appearing early in the doc higher,
	// which suits title-led prose like news articles.
	PositionBias bool
}

type TextRankOption func(*TextRankOptions)

func WithTopN(n int) TextRankOption {
	return func(o *TextRankOptions) { o.TopN = n }
}

func WithWindowSize(w int) TextRankOption {
	return func(o *TextRankOptions) { o.WindowSize = w }
}

func WithPositionBias() TextRankOption {
	return func(o *TextRankOptions) { o.PositionBias = true }
}

// TextRank ranks candidate terms by PageRank over their co-occurrence
// graph, then collapses adjacent top-ranked terms into phrases.
func TextRank(doc *document.Doc, opts ...TextRankOption) ([]Keyterm, error) {
	options := TextRankOptions{TopN: defaultTopN, WindowSize: defaultWindowSize}
	for _, opt := range opts {
		opt(&options)
	}
	if options.TopN < 1 {
		return nil, errors.Errorf("topN must be at least 1, got: %d", options.TopN)
	}
	if options.WindowSize < 2 {
		return nil, errors.Errorf("window size must be at least 2, got: %d",
			options.WindowSize)
	}

	cands := extractCandidates(doc)
	if len(cands) == 0 {
		return nil, errors.New("doc has no keyterm candidates")
	}

	ids := map[string]int64{}
	terms := map[int64]string{}
	for _, cand := range cands {
		if _, ok := ids[cand.term]; !ok {
			id := int64(len(ids))
			ids[cand.term] = id
			terms[id] = cand.term
		}
	}

	g := simple.NewWeightedDirectedGraph(0, 0)
	for _, id := range ids {
		g.AddNode(simple.Node(id))
	}
	for i := range cands {
		for j := i + 1; j < len(cands); j++ {
			if cands[j].position-cands[i].position >= options.WindowSize {
				break
			}
			a, b := ids[cands[i].term], ids[cands[j].term]
			if a == b {
				continue
			}
			addWeight(g, a, b, 1)
			addWeight(g, b, a, 1)
		}
	}

	var ranks map[int64]float64
	if options.PositionBias {
		ranks = biasedPageRank(g, cands, ids)
	} else {
		ranks = network.PageRank(g, pageRankDamping, pageRankTolerance)
	}

	scores := make(map[string]float64, len(ids))
	for id, rank := range ranks {
		scores[terms[id]] = rank
	}

	phrases := collapsePhrases(doc, scores, len(ids))
	sortKeyterms(phrases)
	if len(phrases) > options.TopN {
		phrases = phrases[:options.TopN]
	}
	return phrases, nil
}

func addWeight(g *simple.WeightedDirectedGraph, from, to int64, w float64) {
	if existing := g.WeightedEdge(from, to); existing != nil {
		w += existing.Weight()
	}
	g.SetWeightedEdge(simple.WeightedEdge{
		F: simple.Node(from), T: simple.Node(to), W: w,
	})
}

// biasedPageRank runs the power iteration by hand with a teleport
// distribution favoring early positions, since the library ranker has
// no personalization hook.
func biasedPageRank(g *simple.WeightedDirectedGraph, cands []candidate, ids map[string]int64) map[int64]float64 {
	n := len(ids)
	bias := make(map[int64]float64, n)
	var total float64
	for _, cand := range cands {
		// first occurrence dominates; 1/(pos+1) decays smoothly
		w := 1 / float64(cand.position+1)
		bias[ids[cand.term]] += w
		total += w
	}
	for id := range bias {
		bias[id] /= total
	}

	ranks := make(map[int64]float64, n)
	for id := range bias {
		ranks[id] = 1 / float64(n)
	}

	for iter := 0; iter < 100; iter++ {
		next := make(map[int64]float64, n)
		var delta float64
		for id := range ranks {
			sum := 0.0
			to := g.To(id)
			for to.Next() {
				from := to.Node().ID()
				out := outWeight(g, from)
				if out > 0 {
					sum += ranks[from] * g.WeightedEdge(from, id).Weight() / out
				}
			}
			next[id] = (1-pageRankDamping)*bias[id] + pageRankDamping*sum
		}
		for id := range next {
			d := next[id] - ranks[id]
			if d < 0 {
				d = -d
			}
			delta += d
		}
		ranks = next
		if delta < pageRankTolerance {
			break
		}
	}
	return ranks
}

func outWeight(g *simple.WeightedDirectedGraph, id int64) float64 {
	var sum float64
	from := g.From(id)
	for from.Next() {
		sum += g.WeightedEdge(id, from.Node().ID()).Weight()
	}
	return sum
}

// collapsePhrases merges runs of top-ranked candidate tokens into
// phrases scored by the sum of their member scores.
func collapsePhrases(doc *document.Doc, scores map[string]float64, nTerms int) []Keyterm {
	// consider the better-scoring third of terms as phrase material
	topK := nTerms / 3
	if topK < 1 {
		topK = 1
	}
	ranked := make([]Keyterm, 0, len(scores))
	for term, score := range scores {
		ranked = append(ranked, Keyterm{Text: term, Score: score})
	}
	sortKeyterms(ranked)
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	topTerms := make(map[string]float64, len(ranked))
	for _, kt := range ranked {
		topTerms[kt.Text] = kt.Score
	}

	seen := map[string]struct{}{}
	var out []Keyterm
	var run []string
	var runScore float64

	flush := func() {
		if len(run) == 0 {
			return
		}
		phrase := strings.Join(run, " ")
		if _, dup := seen[phrase]; !dup {
			seen[phrase] = struct{}{}
			out = append(out, Keyterm{Text: phrase, Score: runScore})
		}
		run = nil
		runScore = 0
	}

	for _, tok := range doc.Tokens {
		score, ok := topTerms[tok.Lower]
		if ok && tok.IsAlpha && !tok.IsStopword {
			run = append(run, tok.Lower)
			runScore += score
			continue
		}
		flush()
	}
	flush()
	return out
}
