// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: Node construction, tail accessors, coverage.
// Policy:
//   - Tail writes on an attached node bump the owning graph's epoch so that
//     memoised sequences (of this node and of its neighbours) are recomputed.

package core

import "fmt"

// NewNode returns a detached node. Attach it with Graph.AddNode.
func NewNode(id, length int, coverages []int, forwardTail, reverseTail string) *Node {
	return &Node{
		ID:          id,
		Length:      length,
		Coverages:   coverages,
		forwardTail: forwardTail,
		reverseTail: reverseTail,
	}
}

// ForwardTail returns the ends of k-mers of the forward strand.
func (n *Node) ForwardTail() string { return n.forwardTail }

// ReverseTail returns the ends of k-mers of the twin strand.
func (n *Node) ReverseTail() string { return n.reverseTail }

// SetTails replaces both tails.
func (n *Node) SetTails(forwardTail, reverseTail string) {
	n.forwardTail = forwardTail
	n.reverseTail = reverseTail
	n.touch()
}

// SetForwardTail replaces the forward tail. During parsing the twin tail is
// set on the following line, so the two may briefly differ in length.
func (n *Node) SetForwardTail(tail string) {
	n.forwardTail = tail
	n.touch()
}

// SetReverseTail replaces the twin tail.
func (n *Node) SetReverseTail(tail string) {
	n.reverseTail = tail
	n.touch()
}

func (n *Node) touch() {
	if n.graph != nil {
		n.graph.tailVersion++
	}
}

// Graph returns the owning graph, or nil for a detached node.
func (n *Node) Graph() *Graph { return n.graph }

// LengthAlone is the number of bases this node adds when appended to an
// overlapping predecessor: the length of the forward tail.
func (n *Node) LengthAlone() int { return len(n.forwardTail) }

// CorrespondingContigLength is the length of the contig made from this node
// alone: LengthAlone + k − 1.
func (n *Node) CorrespondingContigLength() (int, error) {
	if n.graph == nil {
		return 0, ErrDetachedNode
	}
	return len(n.forwardTail) + n.graph.HashLength - 1, nil
}

// HasSequence reports whether the node's own tails are enough to spell its
// sequence, i.e. the forward tail is at least k − 1 bases long.
func (n *Node) HasSequence() bool {
	if n.graph == nil {
		return false
	}
	return len(n.forwardTail) >= n.graph.HashLength-1
}

// Coverage sums the coverage columns at even indices (skipping the interleaved
// observed-coverage columns) and divides by Length.
//
// Errors:
//   - ErrZeroLength: Length == 0.
func (n *Node) Coverage() (float64, error) {
	if n.Length == 0 {
		return 0, ErrZeroLength
	}
	total := 0
	for i := 0; i < len(n.Coverages); i += 2 {
		total += n.Coverages[i]
	}

	return float64(total) / float64(n.Length), nil
}

// String renders "Node 3: TTG / ACA".
func (n *Node) String() string {
	return fmt.Sprintf("Node %d: %s / %s", n.ID, n.forwardTail, n.reverseTail)
}
