// SPDX-License-Identifier: MIT

package social

import "github.com/katalvlaran/friendgraph/bfs"

// Stats summarizes a Network for diagnostics.
type Stats struct {
	Nodes            int
	DeclaredEdges    int
	Edges            int
	Components       int
	LargestComponent int
	Isolated         int
}

// Stats computes summary counts in O(V + E).
// DeclaredEdges and Edges differ when the input repeated friendships.
// Stats is not counted as a components query.
func (n *Network) Stats() Stats {
	g := n.graph
	st := Stats{
		Nodes:         g.NodeCount(),
		DeclaredEdges: g.DeclaredEdgeCount(),
		Edges:         g.EdgeCount(),
	}
	for id := 0; id < g.NodeCount(); id++ {
		if g.Degree(id) == 0 {
			st.Isolated++
		}
	}
	comps := bfs.Components(n.graph)
	st.Components = len(comps)
	for _, c := range comps {
		st.LargestComponent = max(st.LargestComponent, len(c))
	}
	return st
}
