// SPDX-License-Identifier: MIT

// Package core provides the immutable, undirected friendship Graph that every
// other friendgraph package reads from.
//
// A Graph covers the contiguous account id space [0, NodeCount()). It is built
// exactly once by Build from a list of Edge pairs and never changes afterwards,
// so any number of goroutines may read it without locking.
//
// Construction guarantees:
//
//   - Every endpoint lies in [0, NodeCount()); the first out-of-range edge aborts
//     the whole build with an *EdgeError (errors.Is(err, ErrMalformedGraph)).
//   - Adjacency is symmetric: b ∈ NeighborIDs(a) ⇔ a ∈ NeighborIDs(b).
//   - Duplicate edges collapse; each neighbor list keeps first-insertion order,
//     which is what makes BFS tie-breaking reproducible.
//   - The declared edge count is stored for diagnostics only, unless the
//     caller opts into WithRejectEdgeCountMismatch.
//
// Strictness options:
//
//	– WithRejectSelfLoops()
//	    An edge (v,v) fails with ErrSelfLoop. Without it, a self-loop is kept
//	    as a single entry of v in its own neighbor list.
//
//	– WithRejectEdgeCountMismatch()
//	    After deduplication, EdgeCount() != declared fails with ErrEdgeCountMismatch.
//
// Complexity:
//
//   - Build:        O(V + E) time, O(V + E) space.
//   - NeighborIDs:  O(deg(v)) (fresh copy).
//   - HasVertex:    O(1).
package core
