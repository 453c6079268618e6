// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries on Graph: AddNode/Node/Nodes/DeleteNode/
//       DeleteNodesIf, plus read tracking via AddNodedRead.
// Determinism:
//   - Nodes() and DeleteNodesIf() enumerate in ascending ID order.
// Invariant:
//   - At every observable point, no indexed arc references a node absent
//     from the node store: deletions remove arcs before the node.

package core

import "fmt"

// AddNode stores n and attaches it to g.
//
// Implementation:
//   - Stage 1: Reject nil and already-attached nodes.
//   - Stage 2: Insert into the node store (ErrDuplicateNode on collision).
//   - Stage 3: Set the navigational back-reference.
//
// Errors:
//   - ErrNilNode, ErrDuplicateNode.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.graph != nil && n.graph != g {
		return fmt.Errorf("%w: node %d belongs to another graph", ErrDuplicateNode, n.ID)
	}
	if err := g.nodes.Insert(n.ID, n); err != nil {
		return fmt.Errorf("%w: %d", err, n.ID)
	}
	n.graph = g

	return nil
}

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id int) *Node { return g.nodes.Get(id) }

// HasNode reports whether id is stored.
func (g *Graph) HasNode(id int) bool { return g.nodes.Has(id) }

// NodeLen returns the number of stored nodes (not the header's NodeCount).
func (g *Graph) NodeLen() int { return g.nodes.Len() }

// Nodes returns all nodes in ascending ID order.
// Complexity: O(V) (plus O(V log V) after a mutation).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, g.nodes.Len())
	g.nodes.Each(func(n *Node) bool {
		out = append(out, n)
		return true
	})

	return out
}

// NodeStore exposes the underlying store for read-only queries. Deleting
// through it bypasses arc cleanup; use DeleteNode or DeleteNodesIf instead.
func (g *Graph) NodeStore() *NodeStore { return g.nodes }

// DeleteNode removes every arc touching id, then the node itself, and
// detaches the node. The removed arcs are returned in touching order.
//
// Errors:
//   - ErrNodeNotFound: id is absent.
//
// Complexity: O(deg(id) * bucket).
func (g *Graph) DeleteNode(id int) (*Node, []*Arc, error) {
	if !g.nodes.Has(id) {
		return nil, nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	arcs := g.arcs.Touching(id)
	for _, a := range arcs {
		// Touching only yields indexed instances, so Delete cannot fail here.
		_ = g.arcs.Delete(a)
	}
	n := g.nodes.Delete(id)
	n.graph = nil

	return n, arcs, nil
}

// DeleteNodesIf deletes every node for which pred returns true, together
// with its arcs.
//
// Implementation:
//   - Stage 1: Snapshot node IDs in ascending order.
//   - Stage 2: For each ID still present, evaluate pred once.
//   - Stage 3: On true, delete its arcs from the index, then the node.
//
// Behavior highlights:
//   - pred must not mutate the graph; it sees deletions made earlier in the pass.
//   - Returned slices are in enumeration order; sort them if order matters.
//
// Complexity: O(V + Σ deg(deleted)).
func (g *Graph) DeleteNodesIf(pred func(n *Node) bool) (deletedNodes []*Node, deletedArcs []*Arc) {
	for _, id := range g.nodes.IDs() {
		n := g.nodes.Get(id)
		if n == nil || !pred(n) {
			continue
		}
		// id is present, so DeleteNode cannot fail.
		node, arcs, _ := g.DeleteNode(id)
		deletedNodes = append(deletedNodes, node)
		deletedArcs = append(deletedArcs, arcs...)
	}

	return deletedNodes, deletedArcs
}

// AddNodedRead appends a tracked read to node id.
//
// Errors:
//   - ErrNodeNotFound: id is absent.
func (g *Graph) AddNodedRead(id int, r NodedRead) error {
	n := g.nodes.Get(id)
	if n == nil {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	n.ShortReads = append(n.ShortReads, r)

	return nil
}
