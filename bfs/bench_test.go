// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/friendgraph/bfs"
	"github.com/katalvlaran/friendgraph/core"
)

// BenchmarkShortestPath_Chain measures a worst-case end-to-end query on a chain.
func BenchmarkShortestPath_Chain(b *testing.B) {
	const N = 10000
	edges := make([]core.Edge, 0, N-1)
	for i := 0; i+1 < N; i++ {
		edges = append(edges, core.Edge{From: i, To: i + 1})
	}
	g := mustBuild(b, N, edges)

	b.ReportAllocs()
	b.SetBytes(int64(N + len(edges)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = bfs.ShortestPath(g, 0, N-1)
	}
}

// BenchmarkComponents_Random runs whole-graph enumeration on a sparse random graph.
func BenchmarkComponents_Random(b *testing.B) {
	g := randomGraph(b, 7, 20000, 15000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = bfs.Components(g)
	}
}
