// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Result types, sentinel errors and functional options.

package sequences

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/katalvlaran/velvet/parser"
)

// LineWidth is the width velveth wraps sequence lines at.
const LineWidth = 60

// Sentinel errors.
var (
	// ErrAmbiguousFilter is returned when a prefilter may have cut an
	// interesting sequence short.
	ErrAmbiguousFilter = errors.New("sequences: prefilter context too narrow")

	// ErrPrefilterWithoutFilter is returned when a prefilter is configured
	// without interesting read IDs.
	ErrPrefilterWithoutFilter = errors.New("sequences: prefilter requires interesting read ids")
)

// Sequences maps read IDs to their nucleotide sequence.
type Sequences map[int]string

// ReadIDs returns the IDs in ascending order.
func (s Sequences) ReadIDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// NameEntry is one row of a CnyUnifiedSeq.names file.
type NameEntry struct {
	Name     string
	ReadID   int
	Category int
}

// Option configures Parse.
type Option func(*Options)

// Options holds the effective configuration of Parse.
type Options struct {
	// InterestingReadIDs, when non-nil, keeps only these reads.
	InterestingReadIDs map[int]struct{}

	// Prefilter narrows the file to the headers of interesting reads and
	// the lines following them.
	Prefilter parser.Prefilter

	// Logger receives the summary record.
	Logger *slog.Logger
}

// WithInterestingReadIDs keeps only the listed reads. The IDs are copied.
func WithInterestingReadIDs(ids ...int) Option {
	ids = append([]int(nil), ids...)
	return func(o *Options) {
		if o.InterestingReadIDs == nil {
			o.InterestingReadIDs = make(map[int]struct{}, len(ids))
		}
		for _, id := range ids {
			o.InterestingReadIDs[id] = struct{}{}
		}
	}
}

// WithPrefilter scans the file through p first. Use
// parser.TrailingContextFilter with a context of at least
// (longest read / LineWidth) + 2 lines.
func WithPrefilter(p parser.Prefilter) Option {
	return func(o *Options) {
		if p != nil {
			o.Prefilter = p
		}
	}
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func (o *Options) interesting(readID int) bool {
	if o.InterestingReadIDs == nil {
		return true
	}
	_, ok := o.InterestingReadIDs[readID]
	return ok
}
