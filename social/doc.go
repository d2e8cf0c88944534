// SPDX-License-Identifier: MIT

// Package social is the query surface of friendgraph: the thin layer a driver
// calls after loading a core.Graph.
//
// A Network validates caller-supplied account ids, rejects meaningless
// queries, and delegates traversal to package bfs:
//
//	Friends(id)               neighbor list, ErrInvalidID for unknown ids
//	ShortestPath(a, b)        Connection; ErrInvalidID, ErrSamePerson
//	ReachableFrom(id)         id's friend circle minus id itself
//	Components()              every account in exactly one circle
//	Connections(ctx, pairs)   many ShortestPath queries in parallel
//	Stats()                   summary counts for diagnostics
//
// "No connection" is not an error: ShortestPath returns a Connection whose
// Found() is false together with a nil error.
//
// Every query is traced and counted through OpenTelemetry and logged at Debug
// level through log/slog. The Graph is immutable, so a Network is safe for
// concurrent use.
package social
