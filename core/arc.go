// SPDX-License-Identifier: MIT
//
// File: arc.go
// Role: Side arithmetic for a single arc.
//
// An arc "a b" joins the END of strand a to the START of strand b. On the
// node level that means:
//   - FromForward: leaves From's end side; otherwise From's start side.
//   - ToForward:   enters To's start side;  otherwise To's end side.
// All helpers below are derived from these two rules.

package core

import "strconv"

// NewArc builds an arc from the signed IDs used in ARC rows: the absolute
// value is the node ID and a negative sign selects the twin strand.
func NewArc(from, to, multiplicity int) *Arc {
	return &Arc{
		FromID:       abs(from),
		ToID:         abs(to),
		FromForward:  from > 0,
		ToForward:    to > 0,
		Multiplicity: multiplicity,
	}
}

// IsSelfLoop reports whether both endpoints are the same node.
func (a *Arc) IsSelfLoop() bool { return a.FromID == a.ToID }

// Other returns the endpoint opposite to id. For a self-loop it returns id.
func (a *Arc) Other(id int) int {
	if a.FromID == id {
		return a.ToID
	}
	return a.FromID
}

// Touches reports whether id is an endpoint.
func (a *Arc) Touches(id int) bool { return a.FromID == id || a.ToID == id }

// DirectionsOpposing reports whether exactly one endpoint uses the twin strand.
func (a *Arc) DirectionsOpposing() bool { return a.FromForward != a.ToForward }

// ConnectsToEnd reports whether the arc is attached to the end side of node id.
func (a *Arc) ConnectsToEnd(id int) bool {
	return (a.FromID == id && a.FromForward) || (a.ToID == id && !a.ToForward)
}

// ConnectsToBeginning reports whether the arc is attached to the start side of node id.
func (a *Arc) ConnectsToBeginning(id int) bool {
	return (a.ToID == id && a.ToForward) || (a.FromID == id && !a.FromForward)
}

// ConnectsEndToBeginning reports whether the arc joins the end of first to the start of second.
func (a *Arc) ConnectsEndToBeginning(first, second int) bool {
	return (a.FromID == first && a.ToID == second && a.FromForward && a.ToForward) ||
		(a.ToID == first && a.FromID == second && !a.FromForward && !a.ToForward)
}

// ConnectsEndToEnd reports whether the arc joins the end of first to the end of second.
func (a *Arc) ConnectsEndToEnd(first, second int) bool {
	return (a.FromID == first && a.ToID == second && a.FromForward && !a.ToForward) ||
		(a.ToID == first && a.FromID == second && a.FromForward && !a.ToForward)
}

// ConnectsBeginningToBeginning reports whether the arc joins the starts of first and second.
func (a *Arc) ConnectsBeginningToBeginning(first, second int) bool {
	return (a.FromID == first && a.ToID == second && !a.FromForward && a.ToForward) ||
		(a.ToID == first && a.FromID == second && !a.FromForward && a.ToForward)
}

// ConnectsBeginningToEnd reports whether the arc joins the start of first to the end of second.
func (a *Arc) ConnectsBeginningToEnd(first, second int) bool {
	return (a.FromID == first && a.ToID == second && !a.FromForward && !a.ToForward) ||
		(a.ToID == first && a.FromID == second && a.FromForward && a.ToForward)
}

// String renders the arc as in an ARC row without the keyword: "-3 7 4".
func (a *Arc) String() string {
	buf := make([]byte, 0, 24)
	if !a.FromForward {
		buf = append(buf, '-')
	}
	buf = strconv.AppendInt(buf, int64(a.FromID), 10)
	buf = append(buf, ' ')
	if !a.ToForward {
		buf = append(buf, '-')
	}
	buf = strconv.AppendInt(buf, int64(a.ToID), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(a.Multiplicity), 10)

	return string(buf)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
