// SPDX-License-Identifier: MIT

// Package friendgraph answers friend-list and connection queries over an
// undirected social network loaded from a plain text edge file.
//
// The module is organized in layers, each usable on its own:
//
//	core/    immutable adjacency-list Graph built once from an edge list
//	loader/  parser for the "<accounts> <friendships>" + pairs file format
//	bfs/     breadth-first traversal: Walk, ShortestPath, Reach, Components
//	social/  query façade: id validation, Connection results, batch queries,
//	         stats, structured logs and OpenTelemetry instruments
//	config/  YAML configuration (input path, strictness, logging, concurrency)
//	cmd/friendgraph/  cobra CLI with one-shot subcommands and an interactive menu
//
// Quick example:
//
//	0───1───2     3
//
//	friendgraph connect 0 2 -f network.txt
//	There is a connection from 0 to 2!
//	0 is friends with 1
//	1 is friends with 2
//
// A Graph never changes after Build, so every query is safe to run from
// many goroutines at once.
package friendgraph
