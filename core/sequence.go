// SPDX-License-Identifier: MIT
//
// File: sequence.go
// Role: Node sequence reconstruction from k-mer tails, splicing from one
//       adjacent node when the node's own tails are shorter than k−1.
//
// Notation (k = HashLength, L = len(forward tail), S = forward-strand sequence):
//   - len(S) = L + k − 1.
//   - forward tail = S[k−1:], reverse tail = revcomp(S)[k−1:], so
//     revcomp(reverse tail) = S[:L].
//   - L ≥ k−1: S = revcomp(reverse tail) + forward tail[L−(k−1):].
//   - L < k−1: S[L:k−1] (deficit = k−1−L bases) is known to nobody locally.
//     A predecessor's oriented sequence ends with S[:k−1]; a successor's
//     oriented sequence begins with S[L:]. Either supplies the gap.

package core

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/velvet/seqcodec"
)

// sequenceMemo caches a resolved sequence for one graph, epoch and hash length.
type sequenceMemo struct {
	graph *Graph
	epoch uint64
	k     int
	seq   string
}

// Sequence returns the forward-strand sequence of the contig made from this
// node alone, in upper case whatever the case of the tails.
//
// Implementation:
//   - Stage 1: Validate attachment, hash length and tail lengths.
//   - Stage 2: Serve the memo if neither the graph nor k changed since.
//   - Stage 3: Long node: splice the two tails.
//   - Stage 4: Short node: borrow the gap from the longest predecessor,
//     falling back to the longest successor.
//
// Errors:
//   - ErrDetachedNode, ErrBadHashLength, ErrTailMismatch.
//   - ErrInsufficientContext: no single neighbour has enough bases. Other
//     nodes are unaffected; callers typically skip this one.
//
// Complexity: O(L + k + deg(n)) on a miss, O(1) on a hit.
func (n *Node) Sequence() (string, error) {
	g := n.graph
	if g == nil {
		return "", ErrDetachedNode
	}
	k := g.HashLength
	if k < 1 {
		return "", fmt.Errorf("%w: %d", ErrBadHashLength, k)
	}
	if len(n.forwardTail) != len(n.reverseTail) {
		return "", fmt.Errorf("%w: node %d (%d vs %d)",
			ErrTailMismatch, n.ID, len(n.forwardTail), len(n.reverseTail))
	}

	epoch := g.epoch()
	if n.memo.graph == g && n.memo.epoch == epoch && n.memo.k == k {
		return n.memo.seq, nil
	}

	seq, err := n.resolve(g, k)
	if err != nil {
		return "", err
	}
	seq = strings.ToUpper(seq)
	n.memo = sequenceMemo{graph: g, epoch: epoch, k: k, seq: seq}

	return seq, nil
}

// ReverseSequence returns the reverse complement of Sequence.
func (n *Node) ReverseSequence() (string, error) {
	seq, err := n.Sequence()
	if err != nil {
		return "", err
	}
	return seqcodec.ReverseComplement(seq), nil
}

// OrientedSequence returns Sequence for StartIsFirst and ReverseSequence otherwise.
func (n *Node) OrientedSequence(side Side) (string, error) {
	if side == StartIsFirst {
		return n.Sequence()
	}
	return n.ReverseSequence()
}

func (n *Node) resolve(g *Graph, k int) (string, error) {
	overlap := k - 1
	l := len(n.forwardTail)
	head := seqcodec.ReverseComplement(n.reverseTail) // S[:L]

	if l >= overlap {
		return head + n.forwardTail[l-overlap:], nil
	}

	deficit := overlap - l
	if gap, ok := g.gapFromPredecessor(n, deficit); ok {
		return head + gap + n.forwardTail, nil
	}
	if gap, ok := g.gapFromSuccessor(n, deficit); ok {
		return head + gap + n.forwardTail, nil
	}

	return "", fmt.Errorf("%w: node %d needs %d more bases (k=%d, tail=%d)",
		ErrInsufficientContext, n.ID, deficit, k, l)
}

// gapFromPredecessor returns the last deficit bases of the longest node
// entering n's start, read on the strand that abuts n.
func (g *Graph) gapFromPredecessor(n *Node, deficit int) (string, bool) {
	p := longest(g.NeighboursIntoStart(n))
	if p == nil || p.LengthAlone() < deficit {
		return "", false
	}
	forward, ok := g.predecessorStrand(p, n)
	if !ok {
		return "", false
	}
	// The predecessor's oriented sequence ends with its oriented tail.
	tail := p.reverseTail
	if forward {
		tail = p.forwardTail
	}
	if len(tail) < deficit {
		return "", false
	}

	return tail[len(tail)-deficit:], true
}

// gapFromSuccessor returns the first deficit bases of the longest node
// leaving n's end, read on the strand that abuts n.
func (g *Graph) gapFromSuccessor(n *Node, deficit int) (string, bool) {
	q := longest(g.NeighboursOffEnd(n))
	if q == nil || q.LengthAlone() < deficit {
		return "", false
	}
	forward, ok := g.successorStrand(n, q)
	if !ok {
		return "", false
	}
	// The successor's oriented sequence begins with revcomp of its opposite tail.
	tail := q.forwardTail
	if forward {
		tail = q.reverseTail
	}
	if len(tail) < deficit {
		return "", false
	}

	return seqcodec.ReverseComplement(tail[len(tail)-deficit:]), true
}

// predecessorStrand finds the arc bringing p into n's start and reports
// whether p is traversed on its forward strand (end-to-beginning) or its
// twin (beginning-to-beginning).
func (g *Graph) predecessorStrand(p, n *Node) (forward, ok bool) {
	for _, a := range g.arcs.Between(p.ID, n.ID) {
		switch {
		case a.FromID == p.ID && a.ToID == n.ID && a.ToForward:
			return a.FromForward, true
		case a.FromID == n.ID && a.ToID == p.ID && !a.FromForward:
			// mirror of n(-) -> p(s) is p(-s) -> n(+)
			return !a.ToForward, true
		}
	}
	return false, false
}

// successorStrand finds the arc taking n's end into q and reports whether q
// is traversed on its forward strand (end-to-beginning) or its twin
// (end-to-end).
func (g *Graph) successorStrand(n, q *Node) (forward, ok bool) {
	for _, a := range g.arcs.Between(n.ID, q.ID) {
		switch {
		case a.FromID == n.ID && a.ToID == q.ID && a.FromForward:
			return a.ToForward, true
		case a.FromID == q.ID && a.ToID == n.ID && !a.ToForward:
			// mirror of q(s) -> n(-) is n(+) -> q(-s)
			return !a.FromForward, true
		}
	}
	return false, false
}

// longest picks the node with the greatest LengthAlone; the first wins ties.
func longest(nodes []*Node) *Node {
	var best *Node
	for _, c := range nodes {
		if best == nil || c.LengthAlone() > best.LengthAlone() {
			best = c
		}
	}
	return best
}
