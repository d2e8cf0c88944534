// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/friendgraph/core"

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	head  int
	res   *Result
}

func newWalker(g *core.Graph, start int, opts []Option) *walker {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	n := g.NodeCount()
	return &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res:   newResult(start, n),
	}
}

// Walk runs a full breadth-first search from start and returns the visit
// order, depths and parent links of every reachable vertex.
// An invalid start yields a Result with an empty Order.
func Walk(g *core.Graph, start int, opts ...Option) *Result {
	w := newWalker(g, start, opts)
	if g.HasVertex(start) {
		w.enqueue(start, 0, noVertex)
		w.loop(noVertex)
	}
	return w.res
}

// ShortestPath returns a fewest-hop path from start to target, both included,
// or nil if target is unreachable or either id is invalid. The search stops
// the first time target is dequeued. start == target yields [start].
func ShortestPath(g *core.Graph, start, target int, opts ...Option) []int {
	if !g.HasVertex(start) || !g.HasVertex(target) {
		return nil
	}
	w := newWalker(g, start, opts)
	w.enqueue(start, 0, noVertex)
	if !w.loop(target) {
		return nil
	}
	path, _ := w.res.PathTo(target)

	return path
}

// Reach returns every vertex reachable from start, start first, in discovery
// order. An invalid start yields nil.
func Reach(g *core.Graph, start int, opts ...Option) []int {
	if !g.HasVertex(start) {
		return nil
	}
	return Walk(g, start, opts...).Order
}

// enqueue marks id discovered at depth d with the given parent, calls
// OnEnqueue and appends it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it is empty or target is dequeued.
// Reports whether target was reached.
func (w *walker) loop(target int) bool {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.id)
		w.opts.OnVisit(item.id, item.depth)
		if item.id == target {
			return true
		}
		w.enqueueNeighbors(item)
	}
	return false
}

// enqueueNeighbors enqueues each undiscovered neighbor in adjacency order.
func (w *walker) enqueueNeighbors(item queueItem) {
	w.graph.ForEachNeighbor(item.id, func(nbr int) {
		if w.res.Depth[nbr] == noVertex {
			w.enqueue(nbr, item.depth+1, item.id)
		}
	})
}
