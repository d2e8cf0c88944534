// SPDX-License-Identifier: MIT

package bfs

// noVertex marks "no parent" and "no target". Vertex ids are never negative.
const noVertex = -1

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks that observe a traversal. Hooks cannot abort a
// search: the engine always runs to completion.
type Options struct {
	// OnEnqueue is called when a vertex is discovered and enqueued.
	// Receives the vertex id and its depth from the start.
	OnEnqueue func(id, depth int)

	// OnVisit is called when a vertex is dequeued and visited.
	OnVisit func(id, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal. Depth and Parent are indexed
// by vertex id and sized to the graph's NodeCount.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether id was discovered by the traversal.
func (r *Result) Reached(id int) bool {
	return id >= 0 && id < len(r.Depth) && r.Depth[id] >= 0
}

// PathTo reconstructs the path from Start to dest by following Parent links
// back to the root and reversing. Returns false if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, bool) {
	if !r.Reached(dest) {
		return nil, false
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != noVertex; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// newResult allocates a Result for n vertices with every vertex unreached.
func newResult(start, n int) *Result {
	r := &Result{
		Start:  start,
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		r.Depth[i] = noVertex
		r.Parent[i] = noVertex
	}
	return r
}
