// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/friendgraph/bfs"
	"github.com/katalvlaran/friendgraph/core"
)

// ExampleShortestPath finds the fewest-hop chain of friends between two accounts.
func ExampleShortestPath() {
	g, _ := core.Build(6, 6, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 5}, {From: 0, To: 3}, {From: 3, To: 4}, {From: 4, To: 5}})

	fmt.Println(bfs.ShortestPath(g, 0, 5))
	fmt.Println(bfs.ShortestPath(g, 5, 0))
	// Output:
	// [0 1 2 5]
	// [5 2 1 0]
}

// ExampleComponents lists friend circles in first-discovery order.
func ExampleComponents() {
	g, _ := core.Build(7, 4, []core.Edge{{From: 6, To: 2}, {From: 0, To: 3}, {From: 3, To: 5}, {From: 1, To: 4}})

	for _, comp := range bfs.Components(g) {
		fmt.Println(comp)
	}
	// Output:
	// [0 3 5]
	// [1 4]
	// [2 6]
}

// ExampleWalk prints BFS layers around account 0.
func ExampleWalk() {
	g, _ := core.Build(5, 4, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 3, To: 4}})

	res := bfs.Walk(g, 0)
	for _, id := range res.Order {
		fmt.Printf("%d@%d ", id, res.Depth[id])
	}
	fmt.Println()
	// Output:
	// 0@0 1@1 2@1 3@2 4@3
}
