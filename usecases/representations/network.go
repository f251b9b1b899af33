//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package representations

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/textkit/textkit/usecases/similarity"
)

// TermNetwork is a weighted undirected graph over string labels, with
// the label/node-id mapping kept alongside the gonum graph so callers
// can run any of gonum's graph algorithms on it.
type TermNetwork struct {
	Graph  *simple.WeightedUndirectedGraph
	IDs    map[string]int64
	Labels map[int64]string
}

func newTermNetwork() *TermNetwork {
	return &TermNetwork{
		Graph:  simple.NewWeightedUndirectedGraph(0, 0),
		IDs:    map[string]int64{},
		Labels: map[int64]string{},
	}
}

func (n *TermNetwork) node(label string) int64 {
	if id, ok := n.IDs[label]; ok {
		return id
	}
	id := int64(len(n.IDs))
	n.IDs[label] = id
	n.Labels[id] = label
	n.Graph.AddNode(simple.Node(id))
	return id
}

func (n *TermNetwork) addWeight(a, b int64, w float64) {
	if a == b {
		return
	}
	if existing := n.Graph.WeightedEdge(a, b); existing != nil {
		w += existing.Weight()
	}
	n.Graph.SetWeightedEdge(simple.WeightedEdge{
		F: simple.Node(a), T: simple.Node(b), W: w,
	})
}

// Weight returns the edge weight between two labels, zero if absent.
func (n *TermNetwork) Weight(a, b string) float64 {
	idA, okA := n.IDs[a]
	idB, okB := n.IDs[b]
	if !okA || !okB {
		return 0
	}
	edge := n.Graph.WeightedEdge(idA, idB)
	if edge == nil {
		return 0
	}
	return edge.Weight()
}

// CooccurrenceNetwork links terms that appear within window tokens of
// each other, edge weights counting the co-occurrences.
func CooccurrenceNetwork(terms []string, window int) (*TermNetwork, error) {
	if window < 2 {
		return nil, errors.Errorf("window must be at least 2, got: %d", window)
	}
	if len(terms) == 0 {
		return nil, errors.New("no terms given")
	}

	net := newTermNetwork()
	for i, term := range terms {
		a := net.node(term)
		for j := i + 1; j < len(terms) && j < i+window; j++ {
			b := net.node(terms[j])
			net.addWeight(a, b, 1)
		}
	}
	return net, nil
}

// SimilarityNetwork links docs (identified by their given labels) whose
// token-level Jaccard similarity reaches threshold.
func SimilarityNetwork(docs [][]string, labels []string, threshold float64) (*TermNetwork, error) {
	if len(docs) != len(labels) {
		return nil, errors.Errorf("docs and labels lengths don't match: %d vs %d",
			len(docs), len(labels))
	}
	if threshold <= 0 || threshold > 1 {
		return nil, errors.Errorf("threshold must be in (0, 1], got: %f", threshold)
	}

	net := newTermNetwork()
	for _, label := range labels {
		net.node(label)
	}
	for i := range docs {
		for j := i + 1; j < len(docs); j++ {
			sim := similarity.Jaccard(docs[i], docs[j])
			if sim >= threshold {
				net.addWeight(net.node(labels[i]), net.node(labels[j]), sim)
			}
		}
	}
	return net, nil
}
