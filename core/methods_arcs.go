// SPDX-License-Identifier: MIT
//
// File: methods_arcs.go
// Role: Arc lifecycle & queries on Graph, forwarding to the ArcIndex.
// Determinism:
//   - ArcsBetween/ArcsTouching follow insertion order.
//   - Arcs() follows ascending (min ID, max ID) pairs, then insertion order.

package core

import "fmt"

// AddArc indexes a. Both endpoints must already be stored.
//
// Errors:
//   - ErrNilArc: a == nil.
//   - ErrDanglingArc: an endpoint is missing.
//
// Complexity: O(1) amortized.
func (g *Graph) AddArc(a *Arc) error {
	if a == nil {
		return ErrNilArc
	}
	if !g.nodes.Has(a.FromID) || !g.nodes.Has(a.ToID) {
		return fmt.Errorf("%w: %s", ErrDanglingArc, a)
	}

	return g.arcs.Insert(a)
}

// DeleteArc removes the given arc instance.
//
// Errors:
//   - ErrNilArc, ErrArcNotFound.
func (g *Graph) DeleteArc(a *Arc) error {
	return g.arcs.Delete(a)
}

// ArcsBetween returns the arcs joining two node IDs, in either file order.
func (g *Graph) ArcsBetween(id1, id2 int) []*Arc {
	return g.arcs.Between(id1, id2)
}

// ArcsBetweenNodes is ArcsBetween for node values.
func (g *Graph) ArcsBetweenNodes(n1, n2 *Node) []*Arc {
	return g.arcs.Between(n1.ID, n2.ID)
}

// ArcsTouching returns every arc with id as an endpoint, each once.
func (g *Graph) ArcsTouching(id int) []*Arc {
	return g.arcs.Touching(id)
}

// ArcLen returns the number of arc records.
func (g *Graph) ArcLen() int { return g.arcs.Len() }

// Arcs returns every arc in deterministic order.
// Complexity: O(E + P log P) where P is the number of node pairs.
func (g *Graph) Arcs() []*Arc {
	out := make([]*Arc, 0, g.arcs.Len())
	g.arcs.Each(func(a *Arc) bool {
		out = append(out, a)
		return true
	})

	return out
}

// ArcIndex exposes the underlying index for read-only queries.
// Insert/Delete through it skip endpoint validation; prefer AddArc/DeleteArc.
func (g *Graph) ArcIndex() *ArcIndex { return g.arcs }
