// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Graph, BuildOption and the sentinel errors of the graph store.
// Policy:
//   - Graph fields are unexported; the value is read-only after Build returns.
//   - Callers branch on errors with errors.Is / errors.As, never on strings.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrMalformedGraph is the umbrella class for every construction failure.
	// All errors returned by Build match it under errors.Is.
	ErrMalformedGraph = errors.New("core: malformed graph")

	// ErrNegativeCount indicates a negative node count or declared edge count.
	ErrNegativeCount = errors.New("core: negative count")

	// ErrEndpointOutOfRange indicates an edge endpoint outside [0, nodeCount).
	ErrEndpointOutOfRange = errors.New("core: endpoint out of range")

	// ErrSelfLoop indicates an edge (v,v) while WithRejectSelfLoops is set.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEdgeCountMismatch indicates the distinct edge count differs from the
	// declared one while WithRejectEdgeCountMismatch is set.
	ErrEdgeCountMismatch = errors.New("core: edge count mismatch")

	// ErrCountTooLarge indicates a node count above the configured limit
	// (DefaultMaxNodes unless WithMaxNodes is given).
	ErrCountTooLarge = errors.New("core: count too large")
)

// DefaultMaxNodes bounds the node count accepted by Build and CheckCounts.
const DefaultMaxNodes = 1 << 24

// Edge is one raw friendship pair as read from input. Direction carries no
// meaning: (a,b) and (b,a) describe the same friendship.
type Edge struct {
	From int
	To   int
}

// String renders the pair as "from-to".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.From, e.To)
}

// canonical orders the endpoints so that (a,b) and (b,a) share one key.
func (e Edge) canonical() Edge {
	if e.From > e.To {
		return Edge{From: e.To, To: e.From}
	}
	return e
}

// EdgeError reports the offending edge of a failed Build.
// It unwraps to both ErrMalformedGraph and the specific Reason.
type EdgeError struct {
	// Index is the zero-based position of the edge in the input list.
	Index int

	// From and To are the endpoints exactly as supplied.
	From, To int

	// Reason is ErrEndpointOutOfRange or ErrSelfLoop.
	Reason error
}

// Error implements the error interface.
func (e *EdgeError) Error() string {
	return fmt.Sprintf("core: edge #%d (%d,%d): %v", e.Index, e.From, e.To, e.Reason)
}

// Unwrap exposes ErrMalformedGraph and the concrete reason to errors.Is.
func (e *EdgeError) Unwrap() []error {
	return []error{ErrMalformedGraph, e.Reason}
}

// BuildOption configures strictness of Build.
type BuildOption func(*buildConfig)

// buildConfig is the resolved option set for one Build call.
type buildConfig struct {
	rejectSelfLoops     bool
	rejectCountMismatch bool
	maxNodes            int
}

func newBuildConfig(opts []BuildOption) buildConfig {
	cfg := buildConfig{maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithRejectSelfLoops makes Build fail with ErrSelfLoop on any edge (v,v).
func WithRejectSelfLoops() BuildOption {
	return func(c *buildConfig) { c.rejectSelfLoops = true }
}

// WithRejectEdgeCountMismatch makes Build fail with ErrEdgeCountMismatch when
// the number of distinct edges differs from the declared count.
func WithRejectEdgeCountMismatch() BuildOption {
	return func(c *buildConfig) { c.rejectCountMismatch = true }
}

// WithMaxNodes sets the largest node count Build accepts. Values below 1 are
// ignored.
func WithMaxNodes(n int) BuildOption {
	return func(c *buildConfig) {
		if n >= 1 {
			c.maxNodes = n
		}
	}
}

// Graph is the immutable undirected friendship graph.
//
// adjacency[v] lists the distinct neighbors of v in first-insertion order.
// edges lists each distinct friendship once (canonical From <= To), in
// first-insertion order.
type Graph struct {
	nodeCount     int
	declaredEdges int
	adjacency     [][]int
	edges         []Edge
}
