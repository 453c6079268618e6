// SPDX-License-Identifier: MIT
//
// File: reads.go
// Role: Read tracking section (NR blocks), plain and prefiltered, plus
//       ParseAdditionalNodedReads for graphs parsed without read tracking.
// Policy:
//   - Uninteresting read records are still checked structurally, then dropped.
//   - ShortReadCount accumulates over every NR header seen. Under a prefilter
//     only headers that survived filtering are seen, so counts of other
//     nodes stay untouched.

package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/velvet/core"
)

// nrHeader is a parsed "NR ±id count" row.
type nrHeader struct {
	node    *core.Node
	forward bool
	count   int
}

func parseNRHeader(g *core.Graph, f []string, row string, no int) (nrHeader, error) {
	if len(f) != 3 {
		return nrHeader{}, malformed(no, row, "NR row must have 3 fields, got %d", len(f))
	}
	signed, err := strconv.Atoi(f[1])
	if err != nil || signed == 0 {
		return nrHeader{}, malformed(no, row, "NR node id must be a non-zero integer")
	}
	count, err := strconv.Atoi(f[2])
	if err != nil {
		return nrHeader{}, malformed(no, row, "NR read count is not an integer")
	}
	id := signed
	if id < 0 {
		id = -id
	}
	n := g.Node(id)
	if n == nil {
		return nrHeader{}, &ParseError{Line: no, Row: row, Err: fmt.Errorf("%w: %d", core.ErrNodeNotFound, id)}
	}

	return nrHeader{node: n, forward: signed > 0, count: count}, nil
}

func parseReadRow(f []string, row string, no int) (readID, offset, start int, err error) {
	if len(f) != 3 {
		return 0, 0, 0, malformed(no, row, "read row must have 3 fields, got %d", len(f))
	}
	var vals [3]int
	for i := range vals {
		if vals[i], err = strconv.Atoi(f[i]); err != nil {
			return 0, 0, 0, malformed(no, row, "read field %d is not an integer", i+1)
		}
	}

	return vals[0], vals[1], vals[2], nil
}

func isSeqRow(f []string) bool { return f[0] == keywordSeq }

func warnSeq(log *slog.Logger, no int) {
	log.Warn("velvet graph SEQ section is not parsed; read tracking stops here", slog.Int("line", no))
}

// readTracking consumes NR blocks until EOF or a SEQ row.
func readTracking(g *core.Graph, src LineSource, o *Options) error {
	var cur nrHeader
	for {
		row, no, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parser: read: %w", err)
		}
		f := fields(row)

		switch {
		case isSeqRow(f):
			warnSeq(o.Logger, no)
			return nil

		case f[0] == keywordNR:
			if cur, err = parseNRHeader(g, f, row, no); err != nil {
				return err
			}
			cur.node.ShortReadCount += cur.count

		default:
			readID, offset, start, err := parseReadRow(f, row, no)
			if err != nil {
				return err
			}
			if cur.node == nil {
				return malformed(no, row, "read row before any NR row")
			}
			if !o.keepRead(cur.node.ID, readID) {
				continue
			}
			if err = g.AddNodedRead(cur.node.ID, core.NodedRead{
				ReadID:          readID,
				OffsetFromStart: offset,
				StartCoord:      start,
				Direction:       cur.forward,
			}); err != nil {
				return &ParseError{Line: no, Row: row, Err: err}
			}
		}
	}
}

// matchRow selects the rows a prefilter must keep: NR headers of
// interesting nodes, records of interesting reads, and SEQ rows so that
// the early stop is seen at the same place as without a prefilter.
func (o *Options) matchRow(row string) bool {
	f := strings.SplitN(row, "\t", 3)
	if f[0] == keywordSeq {
		return true
	}
	if f[0] == keywordNR {
		if len(f) < 2 || o.InterestingNodeIDs == nil {
			return false
		}
		id, err := strconv.Atoi(f[1])
		if err != nil {
			return false
		}
		if id < 0 {
			id = -id
		}
		_, ok := o.InterestingNodeIDs[id]
		return ok
	}
	if o.InterestingReadIDs == nil {
		return false
	}
	id, err := strconv.Atoi(f[0])
	if err != nil {
		return false
	}
	_, ok := o.InterestingReadIDs[id]
	return ok
}

// readTrackingFiltered runs the prefilter over the rest of src and parses
// the kept lines.
//
// Implementation:
//   - Stage 1: Filter the remaining lines.
//   - Stage 2: Parse NR headers and read rows as in readTracking; a group
//     separator forgets the current header.
//   - Stage 3: Fail with ErrAmbiguousFilter when
//     (a) an interesting read appears without its NR header, or
//     (b) with node-only filtering, a group ends before the block of an
//     interesting node has delivered all of its reads.
func readTrackingFiltered(g *core.Graph, src LineSource, o *Options) error {
	kept, err := o.Prefilter.Filter(src, o.matchRow)
	if err != nil {
		return fmt.Errorf("parser: prefilter: %w", err)
	}
	o.Logger.Debug("prefiltered read tracking", slog.Int("kept_lines", len(kept)))

	nodeOnly := len(o.InterestingReadIDs) == 0
	var (
		cur       nrHeader
		remaining int
		lastNo    int
	)
	cut := func(no int) error {
		if !nodeOnly || cur.node == nil || remaining <= 0 {
			return nil
		}
		if _, ok := o.InterestingNodeIDs[cur.node.ID]; !ok {
			return nil
		}
		return fmt.Errorf("%w: NR block of node %d cut after line %d with %d reads missing",
			ErrAmbiguousFilter, cur.node.ID, no, remaining)
	}

	kept = append(kept, Line{}) // sentinel: end of input closes the last group
	for _, l := range kept {
		if l.No == 0 {
			if err = cut(lastNo); err != nil {
				return err
			}
			cur, remaining = nrHeader{}, 0
			continue
		}
		lastNo = l.No
		f := fields(l.Text)

		switch {
		case isSeqRow(f):
			warnSeq(o.Logger, l.No)
			return nil

		case f[0] == keywordNR:
			if cur, err = parseNRHeader(g, f, l.Text, l.No); err != nil {
				return err
			}
			remaining = cur.count
			cur.node.ShortReadCount += cur.count

		default:
			readID, offset, start, err := parseReadRow(f, l.Text, l.No)
			if err != nil {
				return err
			}
			if cur.node == nil {
				if _, ok := o.InterestingReadIDs[readID]; ok {
					return fmt.Errorf("%w: read %d on line %d has no NR header in context",
						ErrAmbiguousFilter, readID, l.No)
				}
				continue
			}
			remaining--
			if !o.keepRead(cur.node.ID, readID) {
				continue
			}
			if err = g.AddNodedRead(cur.node.ID, core.NodedRead{
				ReadID:          readID,
				OffsetFromStart: offset,
				StartCoord:      start,
				Direction:       cur.forward,
			}); err != nil {
				return &ParseError{Line: l.No, Row: l.Text, Err: err}
			}
		}
	}

	return nil
}

// ParseAdditionalNodedReads adds read tracking from the same velvet graph
// file to an already parsed g, typically one parsed with
// WithSkipReadTracking. Header, node and arc rows are skipped.
//
// Errors:
//   - ErrPrefilterRequired without WithPrefilter.
//   - ErrPrefilterWithoutFilter without interesting IDs.
//   - ErrAmbiguousFilter, *ParseError as for Parse.
func ParseAdditionalNodedReads(r io.Reader, g *core.Graph, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	if o.Prefilter == nil {
		return ErrPrefilterRequired
	}

	src := newReaderSource(r)
	for {
		row, no, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parser: read: %w", err)
		}
		if f := fields(row); f[0] == keywordNR || isSeqRow(f) {
			src.unread(row, no)
			break
		}
	}

	return readTrackingFiltered(g, src, &o)
}
