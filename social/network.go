// SPDX-License-Identifier: MIT

package social

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/friendgraph/bfs"
	"github.com/katalvlaran/friendgraph/core"
)

// DefaultConcurrency bounds Connections when WithConcurrency is not given.
const DefaultConcurrency = 4

// Option configures a Network.
type Option func(*settings)

type settings struct {
	logger         *slog.Logger
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	concurrency    int
}

// WithLogger sets the logger used for query diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *settings) {
		if mp != nil {
			s.meterProvider = mp
		}
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *settings) {
		if tp != nil {
			s.tracerProvider = tp
		}
	}
}

// WithConcurrency bounds the number of parallel queries in Connections.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.concurrency = n
		}
	}
}

// Network answers friend and connection queries over an immutable Graph.
type Network struct {
	graph       *core.Graph
	logger      *slog.Logger
	inst        *instruments
	concurrency int
}

// Connection is the answer to a ShortestPath query. A Connection with an
// empty Path is the "no connection" outcome.
type Connection struct {
	From int
	To   int
	Path []int
}

// Found reports whether a path exists.
func (c Connection) Found() bool {
	return len(c.Path) > 0
}

// Hops returns the number of friendships on the path, or -1 if none exists.
func (c Connection) Hops() int {
	if !c.Found() {
		return -1
	}
	return len(c.Path) - 1
}

// Links returns consecutive friend pairs along the path, in path order.
func (c Connection) Links() []core.Edge {
	if len(c.Path) < 2 {
		return nil
	}
	out := make([]core.Edge, 0, len(c.Path)-1)
	for i := 0; i+1 < len(c.Path); i++ {
		out = append(out, core.Edge{From: c.Path[i], To: c.Path[i+1]})
	}
	return out
}

// New wraps g in a Network.
func New(g *core.Graph, opts ...Option) (*Network, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := settings{
		logger:         slog.Default(),
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
		concurrency:    DefaultConcurrency,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	inst, err := newInstruments(s.meterProvider, s.tracerProvider)
	if err != nil {
		return nil, err
	}

	return &Network{
		graph:       g,
		logger:      s.logger,
		inst:        inst,
		concurrency: s.concurrency,
	}, nil
}

// Graph returns the underlying graph.
func (n *Network) Graph() *core.Graph {
	return n.graph
}

// checkID returns an *IDError for ids outside the graph.
func (n *Network) checkID(id int) error {
	if n.graph.HasVertex(id) {
		return nil
	}
	return &IDError{ID: id, NodeCount: n.graph.NodeCount()}
}

// Friends returns the neighbor list of id in first-insertion order.
// The slice is a fresh copy.
func (n *Network) Friends(id int) ([]int, error) {
	start := time.Now()
	ctx, span := n.inst.startQuery(context.Background(), queryFriends, attribute.Int("friendgraph.id", id))

	if err := n.checkID(id); err != nil {
		n.logger.Debug("friends: rejected id", "id", id)
		n.inst.record(ctx, span, queryFriends, outcomeInvalidID, start, 0)
		return nil, err
	}
	friends := n.graph.NeighborIDs(id)

	n.logger.Debug("friends", "id", id, "count", len(friends))
	n.inst.record(ctx, span, queryFriends, outcomeOK, start, 0)
	return friends, nil
}

// ShortestPath finds a fewest-hop chain of friendships from start to target.
//
// Errors:
//   - *IDError (ErrInvalidID) if either id is out of range; start is checked first.
//   - ErrSamePerson if start == target.
//
// When no path exists the returned Connection has Found() == false and the
// error is nil.
func (n *Network) ShortestPath(start, target int) (Connection, error) {
	return n.shortestPath(context.Background(), start, target)
}

// shortestPath runs ShortestPath with its span parented on ctx.
func (n *Network) shortestPath(ctx context.Context, start, target int) (Connection, error) {
	began := time.Now()
	ctx, span := n.inst.startQuery(ctx, queryPath,
		attribute.Int("friendgraph.from", start),
		attribute.Int("friendgraph.to", target),
	)
	conn := Connection{From: start, To: target}

	for _, id := range []int{start, target} {
		if err := n.checkID(id); err != nil {
			n.logger.Debug("shortest path: rejected id", "id", id)
			n.inst.record(ctx, span, queryPath, outcomeInvalidID, began, 0)
			return conn, err
		}
	}
	if start == target {
		n.logger.Debug("shortest path: same person", "id", start)
		n.inst.record(ctx, span, queryPath, outcomeSamePerson, began, 0)
		return conn, ErrSamePerson
	}

	visited := 0
	conn.Path = bfs.ShortestPath(n.graph, start, target,
		bfs.WithOnVisit(func(int, int) { visited++ }),
	)

	outcome := outcomeOK
	if !conn.Found() {
		outcome = outcomeNoConnection
	}
	n.logger.Debug("shortest path", "from", start, "to", target, "found", conn.Found(), "hops", conn.Hops(), "visited", visited)
	n.inst.record(ctx, span, queryPath, outcome, began, visited)
	return conn, nil
}

// ReachableFrom returns every account reachable from id through any chain of
// friendships, excluding id itself, in BFS discovery order.
func (n *Network) ReachableFrom(id int) ([]int, error) {
	start := time.Now()
	ctx, span := n.inst.startQuery(context.Background(), queryReachable, attribute.Int("friendgraph.id", id))

	if err := n.checkID(id); err != nil {
		n.logger.Debug("reachable: rejected id", "id", id)
		n.inst.record(ctx, span, queryReachable, outcomeInvalidID, start, 0)
		return nil, err
	}
	order := bfs.Reach(n.graph, id)
	out := make([]int, len(order)-1)
	copy(out, order[1:])

	n.logger.Debug("reachable", "id", id, "count", len(out))
	n.inst.record(ctx, span, queryReachable, outcomeOK, start, len(order))
	return out, nil
}

// Components partitions every account into its friend circle. Circles are
// ordered by their smallest member; members follow BFS discovery order.
func (n *Network) Components() [][]int {
	start := time.Now()
	ctx, span := n.inst.startQuery(context.Background(), queryComponents)

	comps := bfs.Components(n.graph)

	n.logger.Debug("components", "count", len(comps))
	n.inst.record(ctx, span, queryComponents, outcomeOK, start, n.graph.NodeCount())
	return comps
}
