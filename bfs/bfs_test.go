// SPDX-License-Identifier: MIT

package bfs_test

import (
	"math/rand"
	"reflect"
	"sync"
	"testing"

	"github.com/katalvlaran/friendgraph/bfs"
	"github.com/katalvlaran/friendgraph/core"
)

// mustBuild builds a graph or fails the test.
func mustBuild(t testing.TB, n int, edges []core.Edge) *core.Graph {
	t.Helper()
	g, err := core.Build(n, len(edges), edges)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

// randomGraph builds a deterministic sparse graph with n vertices and m raw edges.
func randomGraph(t testing.TB, seed int64, n, m int) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	edges := make([]core.Edge, 0, m)
	for i := 0; i < m; i++ {
		edges = append(edges, core.Edge{From: rng.Intn(n), To: rng.Intn(n)})
	}
	return mustBuild(t, n, edges)
}

func isEdge(g *core.Graph, a, b int) bool {
	for _, n := range g.NeighborIDs(a) {
		if n == b {
			return true
		}
	}
	return false
}

// TestShortestPath_Scenario covers the 0–1–2 plus isolated 3 reference graph.
func TestShortestPath_Scenario(t *testing.T) {
	g := mustBuild(t, 4, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}})

	if got, want := bfs.ShortestPath(g, 0, 2), []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("ShortestPath(0,2) = %v; want %v", got, want)
	}
	if got := bfs.ShortestPath(g, 0, 3); got != nil {
		t.Errorf("ShortestPath(0,3) = %v; want nil", got)
	}
	if got, want := bfs.ShortestPath(g, 2, 0), []int{2, 1, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("ShortestPath(2,0) = %v; want %v", got, want)
	}
}

// TestShortestPath_InvalidIDs returns nil instead of failing.
func TestShortestPath_InvalidIDs(t *testing.T) {
	g := mustBuild(t, 2, []core.Edge{{From: 0, To: 1}})
	for _, pair := range [][2]int{{-1, 0}, {0, 2}, {5, 5}} {
		if got := bfs.ShortestPath(g, pair[0], pair[1]); got != nil {
			t.Errorf("ShortestPath(%d,%d) = %v; want nil", pair[0], pair[1], got)
		}
	}
	if got := bfs.ShortestPath(g, 1, 1); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("ShortestPath(1,1) = %v; want [1]", got)
	}
}

// TestShortestPath_TieBreak picks the route through the first-inserted neighbor.
func TestShortestPath_TieBreak(t *testing.T) {
	// Square 0–1–3 and 0–2–3: both routes have two hops.
	g := mustBuild(t, 4, []core.Edge{{From: 0, To: 2}, {From: 0, To: 1}, {From: 1, To: 3}, {From: 2, To: 3}})
	if got, want := bfs.ShortestPath(g, 0, 3), []int{0, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("tie-break: got %v; want %v", got, want)
	}

	g = mustBuild(t, 4, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 3}})
	if got, want := bfs.ShortestPath(g, 0, 3), []int{0, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("tie-break: got %v; want %v", got, want)
	}
}

// TestShortestPath_PrefersFewerHops picks the 3-hop route over the 4-hop one.
func TestShortestPath_PrefersFewerHops(t *testing.T) {
	// Route1: 0–1–2–3–10 (4 hops); Route2: 0–4–5–10 (3 hops).
	g := mustBuild(t, 11, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 10}, {From: 0, To: 4}, {From: 4, To: 5}, {From: 5, To: 10}})
	if got, want := bfs.ShortestPath(g, 0, 10), []int{0, 4, 5, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

// TestShortestPath_StopsAtTarget verifies the search stops once target is dequeued.
func TestShortestPath_StopsAtTarget(t *testing.T) {
	g := mustBuild(t, 5, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}})
	var visited []int
	bfs.ShortestPath(g, 0, 2, bfs.WithOnVisit(func(id, _ int) { visited = append(visited, id) }))
	if want := []int{0, 1, 2}; !reflect.DeepEqual(visited, want) {
		t.Errorf("visited = %v; want %v", visited, want)
	}
}

// TestWalk_DepthsAndParents covers a cycle 0–1–2–3–0.
func TestWalk_DepthsAndParents(t *testing.T) {
	g := mustBuild(t, 5, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0}})
	res := bfs.Walk(g, 0)

	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1, -1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := []int{-1, 0, 1, 0, -1}; !reflect.DeepEqual(res.Parent, want) {
		t.Errorf("Parent = %v; want %v", res.Parent, want)
	}
	if res.Reached(4) || !res.Reached(2) || res.Reached(-3) || res.Reached(99) {
		t.Errorf("Reached mismatch")
	}
	if p, ok := res.PathTo(0); !ok || !reflect.DeepEqual(p, []int{0}) {
		t.Errorf("PathTo(start) = %v,%v; want [0],true", p, ok)
	}
	if _, ok := res.PathTo(4); ok {
		t.Errorf("PathTo(unreached) should report false")
	}
}

// TestWalk_InvalidStart yields an empty order.
func TestWalk_InvalidStart(t *testing.T) {
	g := mustBuild(t, 2, nil)
	if res := bfs.Walk(g, 7); len(res.Order) != 0 {
		t.Errorf("Order = %v; want empty", res.Order)
	}
	if got := bfs.Reach(g, -1); got != nil {
		t.Errorf("Reach(-1) = %v; want nil", got)
	}
}

// TestWalk_SelfLoopAndDuplicates ensures loops and duplicates do not enqueue twice.
func TestWalk_SelfLoopAndDuplicates(t *testing.T) {
	g := mustBuild(t, 2, []core.Edge{{From: 0, To: 0}, {From: 0, To: 1}, {From: 1, To: 0}})
	if got, want := bfs.Reach(g, 0), []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Reach = %v; want %v", got, want)
	}
}

// TestWalk_Hooks asserts hooks fire in the expected sequence.
func TestWalk_Hooks(t *testing.T) {
	g := mustBuild(t, 3, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	var enq, vis [][2]int
	bfs.Walk(g, 0,
		bfs.WithOnEnqueue(func(id, d int) { enq = append(enq, [2]int{id, d}) }),
		bfs.WithOnVisit(func(id, d int) { vis = append(vis, [2]int{id, d}) }),
		bfs.WithOnVisit(nil),
		nil,
	)
	want := [][2]int{{0, 0}, {1, 1}, {2, 2}}
	if !reflect.DeepEqual(enq, want) {
		t.Errorf("OnEnqueue = %v; want %v", enq, want)
	}
	if !reflect.DeepEqual(vis, want) {
		t.Errorf("OnVisit = %v; want %v", vis, want)
	}
}

// TestComponents_Scenario covers the reference graph.
func TestComponents_Scenario(t *testing.T) {
	g := mustBuild(t, 4, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	if got, want := bfs.Components(g), [][]int{{0, 1, 2}, {3}}; !reflect.DeepEqual(got, want) {
		t.Errorf("Components = %v; want %v", got, want)
	}
	empty := mustBuild(t, 0, nil)
	if got := bfs.Components(empty); len(got) != 0 {
		t.Errorf("Components(empty) = %v; want none", got)
	}
}

// TestComponents_DiscoveryOrder orders components by smallest seed and members by BFS.
func TestComponents_DiscoveryOrder(t *testing.T) {
	g := mustBuild(t, 6, []core.Edge{{From: 5, To: 1}, {From: 4, To: 0}, {From: 3, To: 5}, {From: 0, To: 2}})
	want := [][]int{{0, 4, 2}, {1, 5, 3}}
	if got := bfs.Components(g); !reflect.DeepEqual(got, want) {
		t.Errorf("Components = %v; want %v", got, want)
	}
}

// TestProperties checks minimality, validity, partition and reachability
// consistency on deterministic random graphs.
func TestProperties(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		const n = 40
		g := randomGraph(t, seed, n, 45)

		comps := bfs.Components(g)
		owner := make([]int, n)
		for i := range owner {
			owner[i] = -1
		}
		for ci, comp := range comps {
			for _, v := range comp {
				if owner[v] != -1 {
					t.Fatalf("seed %d: vertex %d in two components", seed, v)
				}
				owner[v] = ci
			}
		}
		for v, o := range owner {
			if o == -1 {
				t.Fatalf("seed %d: vertex %d in no component", seed, v)
			}
		}

		for s := 0; s < n; s++ {
			levels := bfs.Walk(g, s)
			reach := make(map[int]bool)
			for _, v := range bfs.Reach(g, s) {
				reach[v] = true
			}
			for tgt := 0; tgt < n; tgt++ {
				if s == tgt {
					continue
				}
				path := bfs.ShortestPath(g, s, tgt)
				if reach[tgt] != (path != nil) {
					t.Fatalf("seed %d: reach/path disagree for (%d,%d)", seed, s, tgt)
				}
				if (owner[s] == owner[tgt]) != (path != nil) {
					t.Fatalf("seed %d: component/path disagree for (%d,%d)", seed, s, tgt)
				}
				if path == nil {
					continue
				}
				if path[0] != s || path[len(path)-1] != tgt {
					t.Fatalf("seed %d: path %v does not run %d→%d", seed, path, s, tgt)
				}
				if len(path)-1 != levels.Depth[tgt] {
					t.Fatalf("seed %d: path %v has %d hops; level is %d", seed, path, len(path)-1, levels.Depth[tgt])
				}
				for i := 0; i+1 < len(path); i++ {
					if !isEdge(g, path[i], path[i+1]) {
						t.Fatalf("seed %d: %d-%d is not an edge", seed, path[i], path[i+1])
					}
				}
			}
		}
	}
}

// TestConcurrentQueries runs traversals in parallel on one graph.
func TestConcurrentQueries(t *testing.T) {
	g := randomGraph(t, 42, 200, 300)
	want := bfs.Components(g)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := bfs.Components(g); !reflect.DeepEqual(got, want) {
				errs <- "components differ under concurrency"
			}
			bfs.ShortestPath(g, 0, 199)
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}
