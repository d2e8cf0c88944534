// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/friendgraph/core"

// Components partitions every vertex of g into connected components.
// Seeds are taken in ascending id order; each component lists its vertices
// in BFS discovery order from its seed. Isolated vertices form singleton
// components.
//
// Time:   O(V + E) in total, since discovery marks are shared across seeds.
// Memory: O(V).
func Components(g *core.Graph, opts ...Option) [][]int {
	n := g.NodeCount()
	w := newWalker(g, noVertex, opts)
	var comps [][]int

	for seed := 0; seed < n; seed++ {
		if w.res.Depth[seed] != noVertex {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(seed, 0, noVertex)
		w.loop(noVertex)

		comp := make([]int, len(w.res.Order)-from)
		copy(comp, w.res.Order[from:])
		comps = append(comps, comp)
	}
	return comps
}
