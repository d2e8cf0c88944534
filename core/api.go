// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters on a built Graph.
// Policy:
//   - Every slice handed out is a fresh copy; callers may mutate it freely.
//   - Invalid ids never panic: they yield zero values.

package core

// NodeCount returns the size of the id space [0, NodeCount()).
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return g.nodeCount
}

// DeclaredEdgeCount returns the edge count stated by the input header.
// It is advisory and may differ from EdgeCount().
func (g *Graph) DeclaredEdgeCount() int {
	return g.declaredEdges
}

// EdgeCount returns the number of distinct undirected friendships stored.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// HasVertex reports whether id lies in [0, NodeCount()).
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < g.nodeCount
}

// NeighborIDs returns the neighbors of id in first-insertion order.
// The result is nil for an invalid id and a non-nil empty slice for an
// isolated vertex.
//
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id int) []int {
	if !g.HasVertex(id) {
		return nil
	}
	out := make([]int, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out
}

// Degree returns the number of distinct neighbors of id, or 0 if id is invalid.
func (g *Graph) Degree(id int) int {
	if !g.HasVertex(id) {
		return 0
	}
	return len(g.adjacency[id])
}

// Edges returns each distinct friendship once, with From <= To, in
// first-insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// ForEachNeighbor calls fn for every neighbor of id in adjacency order
// without copying. Invalid ids visit nothing. Traversals use it on the hot path.
func (g *Graph) ForEachNeighbor(id int, fn func(nbr int)) {
	if !g.HasVertex(id) {
		return
	}
	for _, nbr := range g.adjacency[id] {
		fn(nbr)
	}
}
