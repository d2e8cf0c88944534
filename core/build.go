// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: One-shot, atomic construction of a Graph from raw edge pairs.

package core

import "fmt"

// Build validates edges against [0, nodeCount) and returns the resulting
// immutable Graph.
//
// Implementation:
//   - Stage 1: CheckCounts (negative counts, node count above the limit).
//   - Stage 2: Allocate nodeCount empty neighbor lists.
//   - Stage 3: For each edge, validate both endpoints and insert it in both
//     directions unless its canonical pair was already seen.
//   - Stage 4: Apply the optional edge-count check.
//
// Errors:
//   - ErrNegativeCount or ErrCountTooLarge (wrapped with ErrMalformedGraph).
//   - *EdgeError with ErrEndpointOutOfRange or ErrSelfLoop.
//   - ErrEdgeCountMismatch (wrapped with ErrMalformedGraph).
//
// Nothing is returned on failure: a partially built Graph is never observable.
//
// Complexity: O(V + E) time and space.
func Build(nodeCount, declaredEdges int, edges []Edge, opts ...BuildOption) (*Graph, error) {
	cfg := newBuildConfig(opts)
	if err := cfg.checkCounts(nodeCount, declaredEdges); err != nil {
		return nil, err
	}

	g := &Graph{
		nodeCount:     nodeCount,
		declaredEdges: declaredEdges,
		adjacency:     make([][]int, nodeCount),
		edges:         make([]Edge, 0, len(edges)),
	}
	seen := make(map[Edge]struct{}, len(edges))

	for i, e := range edges {
		if !g.HasVertex(e.From) || !g.HasVertex(e.To) {
			return nil, &EdgeError{Index: i, From: e.From, To: e.To, Reason: ErrEndpointOutOfRange}
		}
		if e.From == e.To && cfg.rejectSelfLoops {
			return nil, &EdgeError{Index: i, From: e.From, To: e.To, Reason: ErrSelfLoop}
		}

		key := e.canonical()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		g.edges = append(g.edges, key)

		g.adjacency[e.From] = append(g.adjacency[e.From], e.To)
		if e.From != e.To {
			g.adjacency[e.To] = append(g.adjacency[e.To], e.From)
		}
	}

	if cfg.rejectCountMismatch && len(g.edges) != declaredEdges {
		return nil, fmt.Errorf("%w: %w: declared %d, distinct %d",
			ErrMalformedGraph, ErrEdgeCountMismatch, declaredEdges, len(g.edges))
	}

	return g, nil
}

// CheckCounts validates a header before any allocation sized by it. Build
// runs the same check, so callers that read edges from untrusted input can
// fail early on a bad header.
func CheckCounts(nodeCount, declaredEdges int, opts ...BuildOption) error {
	cfg := newBuildConfig(opts)
	return cfg.checkCounts(nodeCount, declaredEdges)
}

func (c buildConfig) checkCounts(nodeCount, declaredEdges int) error {
	if nodeCount < 0 {
		return fmt.Errorf("%w: %w: node count %d", ErrMalformedGraph, ErrNegativeCount, nodeCount)
	}
	if declaredEdges < 0 {
		return fmt.Errorf("%w: %w: declared edge count %d", ErrMalformedGraph, ErrNegativeCount, declaredEdges)
	}
	if nodeCount > c.maxNodes {
		return fmt.Errorf("%w: %w: node count %d exceeds limit %d", ErrMalformedGraph, ErrCountTooLarge, nodeCount, c.maxNodes)
	}
	return nil
}
