// SPDX-License-Identifier: MIT
//
// File: prefilter.go
// Role: Prefilter strategy and the grep-style ContextFilter.
// Policy:
//   - A prefilter only narrows the read tracking section; it never sees the
//     header, NODE or ARC rows.
//   - Safety is checked downstream (see reads.go): a filtered parse either
//     matches the unfiltered one on kept reads or fails with ErrAmbiguousFilter.

package parser

import (
	"errors"
	"fmt"
	"io"
)

// DefaultContext is a context width that covers the NR blocks of typical
// velvet runs.
const DefaultContext = 500

// groupSeparator separates non-adjacent groups of kept lines.
const groupSeparator = "--"

// Prefilter reduces a line stream to the lines plausibly relevant to match.
type Prefilter interface {
	// Filter drains src and returns the kept lines in input order. Runs of
	// kept lines that are not adjacent in the input are separated by a
	// Line{No: 0, Text: "--"}.
	Filter(src LineSource, match func(row string) bool) ([]Line, error)
}

// ContextFilter keeps every matching line plus Context lines before and
// after it, like grep -B n -A n.
type ContextFilter struct {
	Context int
}

// Filter implements Prefilter.
//
// Implementation:
//   - Stage 1: Keep up to Context unmatched lines in a ring.
//   - Stage 2: On a match flush the ring, emit the line, and arm Context
//     lines of trailing context.
//   - Stage 3: Emit a separator whenever a kept line does not follow the
//     previously kept one.
//
// Complexity: O(lines) time, O(Context + kept) memory.
func (f ContextFilter) Filter(src LineSource, match func(row string) bool) ([]Line, error) {
	if f.Context < 0 {
		return nil, fmt.Errorf("%w: context cannot be negative (%d)", ErrOptionViolation, f.Context)
	}

	var (
		out    []Line
		ring   = make([]Line, 0, f.Context)
		after  int
		lastNo int
	)
	emit := func(l Line) {
		if lastNo != 0 && l.No != lastNo+1 {
			out = append(out, Line{Text: groupSeparator})
		}
		out = append(out, l)
		lastNo = l.No
	}

	for {
		text, no, err := src.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		l := Line{No: no, Text: text}

		switch {
		case match(text):
			for _, r := range ring {
				emit(r)
			}
			ring = ring[:0]
			emit(l)
			after = f.Context
		case after > 0:
			emit(l)
			after--
		case f.Context > 0:
			if len(ring) == f.Context {
				copy(ring, ring[1:])
				ring = ring[:len(ring)-1]
			}
			ring = append(ring, l)
		}
	}
}

// TrailingContextFilter keeps every matching line plus Context lines after
// it, like grep -A n. Records that start at a matching line and continue
// downwards are best served by it.
type TrailingContextFilter struct {
	Context int
}

// Filter implements Prefilter.
func (f TrailingContextFilter) Filter(src LineSource, match func(row string) bool) ([]Line, error) {
	if f.Context < 0 {
		return nil, fmt.Errorf("%w: context cannot be negative (%d)", ErrOptionViolation, f.Context)
	}

	var (
		out    []Line
		after  int
		lastNo int
	)
	for {
		text, no, err := src.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		switch {
		case match(text):
			after = f.Context
		case after > 0:
			after--
		default:
			continue
		}
		if lastNo != 0 && no != lastNo+1 {
			out = append(out, Line{Text: groupSeparator})
		}
		out = append(out, Line{No: no, Text: text})
		lastNo = no
	}
}
