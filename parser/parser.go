// SPDX-License-Identifier: MIT
//
// File: parser.go
// Role: Streaming state machine turning a velvet graph file into a core.Graph.
//
// Row grammar (tab separated):
//
//	header        NodeCount SequenceCount HashLength [Categories]
//	node triplet  NODE id length cov obs_cov ...
//	              forward tail
//	              reverse tail
//	arc           ARC ±from ±to multiplicity
//	read tracking NR ±id count
//	              readID offset startCoord
//	stop          SEQ ...
//
// Policy:
//   - Any structural error aborts the parse; no partial graph is returned.
//   - The first row that does not open a node is re-read as an arc row, and
//     the first row that is not an arc is re-read as read tracking.

package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/velvet/core"
)

// state is the position of the machine within the row grammar.
type state int

const (
	stateHeader state = iota
	stateNodeHeader
	stateNodeForwardTail
	stateNodeReverseTail
	stateArc
	stateReadTracking
)

func (s state) String() string {
	switch s {
	case stateHeader:
		return "header"
	case stateNodeHeader:
		return "node_header"
	case stateNodeForwardTail:
		return "node_forward_tail"
	case stateNodeReverseTail:
		return "node_reverse_tail"
	case stateArc:
		return "arc"
	case stateReadTracking:
		return "read_tracking"
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Row keywords.
const (
	keywordNode = "NODE"
	keywordArc  = "ARC"
	keywordNR   = "NR"
	keywordSeq  = "SEQ"
)

// machine carries the mutable parse state of one input.
type machine struct {
	opts       *Options
	log        *slog.Logger
	g          *core.Graph
	st         state
	categories int
	node       *core.Node
}

// Parse reads a velvet Graph, Graph2 or LastGraph stream.
//
// Implementation:
//   - Stage 1: Resolve options (ErrOptionViolation, ErrPrefilterWithoutFilter).
//   - Stage 2: Feed rows through the header, node and arc states.
//   - Stage 3: Hand the read tracking section to the plain or prefiltered
//     reader, or stop there when read tracking is skipped.
//   - Stage 4: Warn when the header's node count disagrees with the file.
//
// Errors:
//   - *ParseError (matches ErrMalformedRow) for structural problems; its cause
//     may be core.ErrDuplicateNode, core.ErrDanglingArc or core.ErrNodeNotFound.
//   - ErrAmbiguousFilter from a prefiltered read tracking section.
//   - Any read error of r.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	m := &machine{opts: &o, log: o.Logger, st: stateHeader}
	src := newReaderSource(r)

	for {
		row, no, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parser: read: %w", err)
		}

		done, err := m.step(src, row, no)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	switch m.st {
	case stateHeader:
		return nil, &ParseError{Err: errors.New("missing header")}
	case stateNodeForwardTail, stateNodeReverseTail:
		return nil, &ParseError{Err: fmt.Errorf("input ends inside node %d", m.node.ID)}
	}
	if m.g.NodeCount != m.g.NodeLen() {
		m.log.Warn("velvet graph node count mismatch",
			slog.Int("header", m.g.NodeCount), slog.Int("parsed", m.g.NodeLen()))
	}
	m.log.Debug("finished parsing velvet graph",
		slog.Int("nodes", m.g.NodeLen()), slog.Int("arcs", m.g.ArcLen()))

	return m.g, nil
}

// step consumes one row. It reports done once the rest of the input is
// either irrelevant or has been drained by the read tracking reader.
func (m *machine) step(src *readerSource, row string, no int) (bool, error) {
	f := fields(row)

	switch m.st {
	case stateHeader:
		return false, m.header(f, row, no)

	case stateNodeForwardTail, stateNodeReverseTail:
		if len(f) != 1 {
			return false, malformed(no, row, "%s row must have exactly one field, got %d", m.st, len(f))
		}
		if m.st == stateNodeForwardTail {
			m.node.SetForwardTail(f[0])
			m.st = stateNodeReverseTail
			return false, nil
		}
		m.node.SetReverseTail(f[0])
		m.st = stateNodeHeader
		return false, nil
	}

	if m.st == stateNodeHeader {
		if f[0] == keywordNode {
			return false, m.nodeRow(f, row, no)
		}
		m.transition(stateArc)
	}

	if m.st == stateArc {
		if f[0] == keywordArc {
			return false, m.arcRow(f, row, no)
		}
		m.transition(stateReadTracking)
	}

	// stateReadTracking: the current row is the first of the section.
	if m.opts.SkipReadTracking {
		m.log.Debug("skipping read tracking", slog.Int("line", no))
		return true, nil
	}
	src.unread(row, no)
	if m.opts.Prefilter != nil {
		return true, readTrackingFiltered(m.g, src, m.opts)
	}
	return true, readTracking(m.g, src, m.opts)
}

func (m *machine) transition(to state) {
	m.log.Debug("velvet graph parser state", slog.String("from", m.st.String()), slog.String("to", to.String()))
	m.st = to
}

func (m *machine) header(f []string, row string, no int) error {
	if len(f) < 3 {
		return malformed(no, row, "header needs at least 3 fields, got %d", len(f))
	}
	var vals [4]int
	for i := 0; i < len(f) && i < 4; i++ {
		v, err := strconv.Atoi(f[i])
		if err != nil || v < 0 {
			return malformed(no, row, "header field %d is not a non-negative integer", i+1)
		}
		vals[i] = v
	}
	if vals[2] < 1 {
		return malformed(no, row, "%w: %d", core.ErrBadHashLength, vals[2])
	}
	m.g = core.NewGraph(vals[0], vals[1], vals[2])
	m.categories = vals[3]
	m.transition(stateNodeHeader)

	return nil
}

func (m *machine) nodeRow(f []string, row string, no int) error {
	if len(f) < 3 {
		return malformed(no, row, "NODE row needs id and length")
	}
	id, err := strconv.Atoi(f[1])
	if err != nil || id <= 0 {
		return malformed(no, row, "NODE id must be a positive integer")
	}
	length, err := strconv.Atoi(f[2])
	if err != nil {
		return malformed(no, row, "NODE length is not an integer")
	}

	cols := f[3:]
	if m.categories > 0 {
		need := 2 * m.categories
		if len(cols) < need {
			return malformed(no, row, "NODE row has %d coverage columns, header declares %d categories", len(cols), m.categories)
		}
		cols = cols[:need]
	}
	covs := make([]int, len(cols))
	for i, c := range cols {
		if covs[i], err = strconv.Atoi(c); err != nil {
			return malformed(no, row, "coverage column %d is not an integer", i+1)
		}
	}

	n := core.NewNode(id, length, covs, "", "")
	if err = m.g.AddNode(n); err != nil {
		return &ParseError{Line: no, Row: row, Err: err}
	}
	m.node = n
	m.st = stateNodeForwardTail

	return nil
}

func (m *machine) arcRow(f []string, row string, no int) error {
	if len(f) != 4 {
		return malformed(no, row, "ARC row must have 4 fields, got %d", len(f))
	}
	var vals [3]int
	for i := range vals {
		v, err := strconv.Atoi(f[i+1])
		if err != nil {
			return malformed(no, row, "ARC field %d is not an integer", i+2)
		}
		vals[i] = v
	}
	if vals[0] == 0 || vals[1] == 0 {
		return malformed(no, row, "ARC node id cannot be 0")
	}
	if err := m.g.AddArc(core.NewArc(vals[0], vals[1], vals[2])); err != nil {
		return &ParseError{Line: no, Row: row, Err: err}
	}

	return nil
}
