// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary facade over a Graph.
// Policy:
//   - No mutation here; Stats() is an O(V+E) snapshot for diagnostics.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	// Header values as parsed.
	NodeCount     int
	SequenceCount int
	HashLength    int

	// Catalog sizes.
	Nodes int
	Arcs  int

	// SelfLoops counts arcs whose endpoints coincide.
	SelfLoops int

	// ShortNodes counts nodes whose forward tail is shorter than k−1 and
	// therefore need a neighbour to spell their sequence.
	ShortNodes int

	// TotalLengthAlone sums LengthAlone over all nodes.
	TotalLengthAlone int

	// TrackedReads counts NodedRead records kept across all nodes.
	TrackedReads int
}

// Stats produces a deterministic snapshot of header values and catalog sizes.
//
// Complexity:
//   - Time O(V + E), Space O(1) beyond the sorted ID cache.
func (g *Graph) Stats() GraphStats {
	st := GraphStats{
		NodeCount:     g.NodeCount,
		SequenceCount: g.SequenceCount,
		HashLength:    g.HashLength,
		Nodes:         g.nodes.Len(),
		Arcs:          g.arcs.Len(),
	}
	g.nodes.Each(func(n *Node) bool {
		st.TotalLengthAlone += n.LengthAlone()
		st.TrackedReads += len(n.ShortReads)
		if n.LengthAlone() < g.HashLength-1 {
			st.ShortNodes++
		}
		return true
	})
	g.arcs.Each(func(a *Arc) bool {
		if a.IsSelfLoop() {
			st.SelfLoops++
		}
		return true
	})

	return st
}
