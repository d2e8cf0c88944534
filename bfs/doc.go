// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over a core.Graph: unweighted
// shortest paths with parent-link reconstruction, single-source reachability
// and whole-graph connected components.
//
// What
//
//   - Walk explores every vertex reachable from a start vertex in
//     non-decreasing distance and returns a Result with:
//   - Order:  visit sequence (start first)
//   - Depth:  distance in edges from start, -1 if unreached
//   - Parent: predecessor in the BFS tree, -1 for the root and unreached vertices
//   - ShortestPath stops as soon as the target is dequeued and returns the
//     reconstructed start→target path, or nil if the target is unreachable.
//   - Reach returns the visit order of Walk (start included).
//   - Components seeds a BFS from every not-yet-visited vertex in ascending id
//     order and returns one component per seed.
//
// Determinism
//
//	core.Graph keeps each neighbor list in first-insertion order and BFS
//	enqueues neighbors in that order, so among equally short paths the one
//	through the first-discovered predecessor wins. Results are reproducible
//	for a given edge list.
//
// Failure semantics
//
//	The engine never returns errors and never panics. Invalid start or target
//	ids simply produce empty results; validation belongs to the caller.
//
// Concurrency
//
//	Every call allocates its own queue, depth and parent state and only reads
//	the immutable Graph, so calls may run in parallel on one Graph.
//
// Complexity (V = NodeCount, E = distinct edges)
//
//   - Time:   O(V + E) per Walk/ShortestPath, O(V + E) total for Components
//   - Memory: O(V)
//
// Usage
//
//	path := bfs.ShortestPath(g, 0, 2)   // [0 1 2] or nil
//	comps := bfs.Components(g)          // [[0 1 2] [3]]
//	res := bfs.Walk(g, 0, bfs.WithOnVisit(func(id, depth int) { /* ... */ }))
package bfs
