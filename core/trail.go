// SPDX-License-Identifier: MIT

package core

import "strings"

// OrientedTrail is an ordered walk of oriented nodes. It is built by the
// caller and is not owned by any Graph.
type OrientedTrail struct {
	trail []OrientedNode
}

// Add appends node, entered on firstSide.
func (t *OrientedTrail) Add(node *Node, firstSide Side) {
	t.trail = append(t.trail, OrientedNode{Node: node, FirstSide: firstSide})
}

// Len returns the number of steps.
func (t *OrientedTrail) Len() int { return len(t.trail) }

// At returns step i.
func (t *OrientedTrail) At(i int) OrientedNode { return t.trail[i] }

// Each calls fn for every step in order until fn returns false.
func (t *OrientedTrail) Each(fn func(i int, o OrientedNode) bool) {
	for i, o := range t.trail {
		if !fn(i, o) {
			return
		}
	}
}

// Sequence spells the walk. Consecutive nodes overlap by k−1 bases, so after
// the first node only each node's oriented tail is appended: the forward tail
// for start-first steps and the twin tail for end-first steps. The result is
// upper case.
//
// The trail is assumed to be a legitimate walk; adjacency is not checked.
//
// Errors:
//   - Any error from resolving the first node's sequence.
func (t *OrientedTrail) Sequence() (string, error) {
	if len(t.trail) == 0 {
		return "", nil
	}
	first, err := t.trail[0].Node.OrientedSequence(t.trail[0].FirstSide)
	if err != nil {
		return "", err
	}
	if len(t.trail) == 1 {
		return first, nil
	}

	var b strings.Builder
	size := len(first)
	for _, o := range t.trail[1:] {
		size += o.Node.LengthAlone()
	}
	b.Grow(size)
	b.WriteString(first)
	for _, o := range t.trail[1:] {
		if o.StartsAtStart() {
			b.WriteString(o.Node.forwardTail)
		} else {
			b.WriteString(o.Node.reverseTail)
		}
	}

	return strings.ToUpper(b.String()), nil
}
