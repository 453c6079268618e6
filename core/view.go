// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read-only derived graphs built from an existing Graph.
// Policy:
//   - Inputs are never mutated; outputs own fresh *Node/*Arc instances.

package core

// InducedSubgraph returns a new Graph holding copies of the nodes whose IDs
// are in keep, and of every arc whose two endpoints are both kept. Header
// values are carried over unchanged, so NodeCount may exceed NodeLen().
//
// Short nodes whose only long neighbour was dropped may no longer resolve
// their sequence in the subgraph.
//
// Complexity: O(V + E + R).
func InducedSubgraph(g *Graph, keep map[int]bool) *Graph {
	out := NewGraph(g.NodeCount, g.SequenceCount, g.HashLength)
	g.nodes.Each(func(n *Node) bool {
		if keep[n.ID] {
			_ = out.AddNode(n.copyDetached())
		}
		return true
	})
	g.arcs.Each(func(a *Arc) bool {
		if !keep[a.FromID] || !keep[a.ToID] {
			return true
		}
		cp := *a
		_ = out.AddArc(&cp)
		return true
	})

	return out
}
