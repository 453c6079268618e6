// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Side-aware neighbour queries over the bidirected graph.
// Determinism:
//   - Results follow ArcIndex touching order (insertion order), NOT node ID order.
//   - A neighbour joined by two arcs appears twice.

package core

import "strconv"

// Side names which end of a node is met first when walking through it.
type Side int

const (
	// StartIsFirst walks the node on its forward strand.
	StartIsFirst Side = iota
	// EndIsFirst walks the node on its twin strand.
	EndIsFirst
)

// Reverse returns the opposite side.
func (s Side) Reverse() Side {
	if s == StartIsFirst {
		return EndIsFirst
	}
	return StartIsFirst
}

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == StartIsFirst {
		return "start_is_first"
	}
	return "end_is_first"
}

// OrientedNode is a node together with the side it is entered from.
type OrientedNode struct {
	Node      *Node
	FirstSide Side
}

// StartsAtStart reports whether the node is walked on its forward strand.
func (o OrientedNode) StartsAtStart() bool { return o.FirstSide == StartIsFirst }

// StartsAtEnd reports whether the node is walked on its twin strand.
func (o OrientedNode) StartsAtEnd() bool { return o.FirstSide == EndIsFirst }

// Strand returns the value key of o.
func (o OrientedNode) Strand() Strand { return Strand{ID: o.Node.ID, Side: o.FirstSide} }

// Strand identifies one strand of a node by value: the node walked
// start-first (forward strand) or end-first (twin strand). It is
// comparable and usable as a map key.
type Strand struct {
	ID   int
	Side Side
}

// Twin returns the other strand of the same node.
func (s Strand) Twin() Strand { return Strand{ID: s.ID, Side: s.Side.Reverse()} }

// String renders "5+" for start-first and "5-" for end-first.
func (s Strand) String() string {
	if s.Side == StartIsFirst {
		return strconv.Itoa(s.ID) + "+"
	}
	return strconv.Itoa(s.ID) + "-"
}

// Less orders strands by node ID, forward strand first.
func (s Strand) Less(o Strand) bool {
	if s.ID != o.ID {
		return s.ID < o.ID
	}
	return s.Side < o.Side
}

// NeighboursOffEnd returns the nodes joined to the end side of n.
//
// An arc qualifies when it leaves n's forward strand (From == n, FromForward)
// or arrives on n's twin strand (To == n, !ToForward); the node at the other
// end is reported.
//
// Complexity: O(deg(n)).
func (g *Graph) NeighboursOffEnd(n *Node) []*Node {
	var out []*Node
	for _, a := range g.arcs.Touching(n.ID) {
		if a.FromID == n.ID && a.FromForward {
			out = g.appendNode(out, a.ToID)
		} else if a.ToID == n.ID && !a.ToForward {
			out = g.appendNode(out, a.FromID)
		}
	}

	return out
}

// NeighboursIntoStart returns the nodes joined to the start side of n.
//
// An arc qualifies when it arrives on n's forward strand (To == n, ToForward)
// or leaves n's twin strand (From == n, !FromForward).
//
// Complexity: O(deg(n)).
func (g *Graph) NeighboursIntoStart(n *Node) []*Node {
	var out []*Node
	for _, a := range g.arcs.Touching(n.ID) {
		if a.ToID == n.ID && a.ToForward {
			out = g.appendNode(out, a.FromID)
		} else if a.FromID == n.ID && !a.FromForward {
			out = g.appendNode(out, a.ToID)
		}
	}

	return out
}

// OrientedNeighbours returns the oriented nodes reachable in one step when
// leaving from. A node walked start-first is left through its end side, and
// one walked end-first through its start side. Each result carries the side
// on which the neighbour is entered.
//
// Complexity: O(deg(from.Node)).
func (g *Graph) OrientedNeighbours(from OrientedNode) []OrientedNode {
	id := from.Node.ID
	var out []OrientedNode
	push := func(other int, forward bool) {
		n := g.nodes.Get(other)
		if n == nil {
			return
		}
		side := EndIsFirst
		if forward {
			side = StartIsFirst
		}
		out = append(out, OrientedNode{Node: n, FirstSide: side})
	}

	for _, a := range g.arcs.Touching(id) {
		if from.StartsAtStart() {
			// leaving the end side: id(+) -> To(±), or the mirror of From(±) -> id(-)
			if a.FromID == id && a.FromForward {
				push(a.ToID, a.ToForward)
			} else if a.ToID == id && !a.ToForward {
				push(a.FromID, !a.FromForward)
			}
			continue
		}
		// leaving the start side: id(-) -> To(±), or the mirror of From(±) -> id(+)
		if a.FromID == id && !a.FromForward {
			push(a.ToID, a.ToForward)
		} else if a.ToID == id && a.ToForward {
			push(a.FromID, !a.FromForward)
		}
	}

	return out
}

func (g *Graph) appendNode(out []*Node, id int) []*Node {
	if n := g.nodes.Get(id); n != nil {
		out = append(out, n)
	}
	return out
}
