// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies and resets of a velvet Graph.
// Determinism:
//   - Clone() re-inserts arcs in the source's Arcs() order, so pair buckets in
//     the clone keep their relative insertion order.
// AI-HINT (file):
//   - Clones never share *Node/*Arc instances with the source; memoised
//     sequences are not copied and are recomputed on demand.

package core

// CloneEmpty returns a Graph with the same header values and copies of every
// node (tails, coverages, tracked reads) but no arcs.
//
// Complexity: O(V + R) where R is the number of tracked reads.
func (g *Graph) CloneEmpty() *Graph {
	clone := NewGraph(g.NodeCount, g.SequenceCount, g.HashLength)
	g.nodes.Each(func(n *Node) bool {
		// IDs are unique in the source, so Insert cannot fail.
		_ = clone.AddNode(n.copyDetached())
		return true
	})

	return clone
}

// Clone returns a deep copy of g: header, nodes and arcs.
//
// Complexity: O(V + E + R)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.arcs.Each(func(a *Arc) bool {
		cp := *a
		// Both endpoints were copied by CloneEmpty.
		_ = clone.AddArc(&cp)
		return true
	})

	return clone
}

// Clear drops every node and arc while keeping the header values. Dropped
// nodes are detached.
//
// Complexity: O(V)
func (g *Graph) Clear() {
	g.nodes.Each(func(n *Node) bool {
		n.graph = nil
		return true
	})
	// Bump past the old versions so that any memo computed before Clear is
	// stale if a node is re-attached.
	nv, av := g.nodes.version, g.arcs.version
	g.nodes = NewNodeStore()
	g.arcs = NewArcIndex()
	g.nodes.version = nv + 1
	g.arcs.version = av + 1
}

func (n *Node) copyDetached() *Node {
	cp := &Node{
		ID:             n.ID,
		Length:         n.Length,
		ShortReadCount: n.ShortReadCount,
		forwardTail:    n.forwardTail,
		reverseTail:    n.reverseTail,
	}
	if n.Coverages != nil {
		cp.Coverages = append([]int(nil), n.Coverages...)
	}
	if n.ShortReads != nil {
		cp.ShortReads = append([]NodedRead(nil), n.ShortReads...)
	}

	return cp
}
