// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, ParseError, and functional options for the parser.

package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

// Sentinel errors for parsing.
var (
	// ErrMalformedRow is matched by every *ParseError.
	ErrMalformedRow = errors.New("parser: malformed row")

	// ErrAmbiguousFilter is returned when a prefilter cannot prove that it
	// kept every record the unfiltered parse would have kept. Widen the
	// prefilter context and retry.
	ErrAmbiguousFilter = errors.New("parser: prefilter context too narrow")

	// ErrPrefilterWithoutFilter is returned when a prefilter is configured
	// but no interesting read or node IDs are.
	ErrPrefilterWithoutFilter = errors.New("parser: prefilter requires interesting read or node ids")

	// ErrPrefilterRequired is returned by ParseAdditionalNodedReads without a prefilter.
	ErrPrefilterRequired = errors.New("parser: additional read tracking requires a prefilter")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("parser: invalid option supplied")
)

// ParseError locates a structural problem in the input.
type ParseError struct {
	// Line is the 1-based line number, 0 when the input ended early.
	Line int
	// Row is the raw row, without its line terminator.
	Row string
	// Err is the underlying cause; it may wrap a core sentinel.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return "parser: " + e.Err.Error()
	}
	return "parser: line " + strconv.Itoa(e.Line) + ": " + e.Err.Error() + ": " + strconv.Quote(e.Row)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrMalformedRow.
func (e *ParseError) Is(target error) bool { return target == ErrMalformedRow }

func malformed(line int, row string, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Row: row, Err: fmt.Errorf(format, args...)}
}

// Option configures a parse via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// the parse starts.
type Option func(*Options)

// Options holds the effective parse configuration.
type Options struct {
	// SkipReadTracking stops at the first NR row; no NodedRead is built.
	SkipReadTracking bool

	// InterestingReadIDs, when non-nil, keeps only reads with these IDs.
	InterestingReadIDs map[int]struct{}

	// InterestingNodeIDs, when non-nil, keeps only reads placed on these nodes.
	InterestingNodeIDs map[int]struct{}

	// Prefilter, when set, narrows the read tracking section before the
	// state machine sees it.
	Prefilter Prefilter

	// Logger receives debug and warning records.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options that parse everything and log to slog.Default().
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithSkipReadTracking stops parsing at the read tracking section.
func WithSkipReadTracking() Option {
	return func(o *Options) { o.SkipReadTracking = true }
}

// WithInterestingReadIDs keeps only NodedReads whose read ID is listed.
// The IDs are copied.
func WithInterestingReadIDs(ids ...int) Option {
	ids = append([]int(nil), ids...)
	return func(o *Options) {
		o.InterestingReadIDs = toSet(o.InterestingReadIDs, ids)
	}
}

// WithInterestingNodeIDs keeps only NodedReads placed on the listed nodes.
// The IDs are copied.
func WithInterestingNodeIDs(ids ...int) Option {
	ids = append([]int(nil), ids...)
	return func(o *Options) {
		for _, id := range ids {
			if id <= 0 {
				o.err = fmt.Errorf("%w: node id must be positive (%d)", ErrOptionViolation, id)
				return
			}
		}
		o.InterestingNodeIDs = toSet(o.InterestingNodeIDs, ids)
	}
}

// WithPrefilter installs a read tracking prefilter.
//
// The parser only sees the NR headers the prefilter kept, so
// ShortReadCount stays 0 for a node whose header was filtered out, where
// the same parse without a prefilter would count its reads. Counts are
// exact for every node whose block held an interesting record.
func WithPrefilter(p Prefilter) Option {
	return func(o *Options) {
		if p != nil {
			o.Prefilter = p
		}
	}
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func toSet(dst map[int]struct{}, ids []int) map[int]struct{} {
	if dst == nil {
		dst = make(map[int]struct{}, len(ids))
	}
	for _, id := range ids {
		dst[id] = struct{}{}
	}
	return dst
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Prefilter != nil && len(o.InterestingReadIDs) == 0 && len(o.InterestingNodeIDs) == 0 {
		return o, ErrPrefilterWithoutFilter
	}

	return o, nil
}

// keepRead applies the interesting-ID filters to one read record.
func (o *Options) keepRead(nodeID, readID int) bool {
	if o.InterestingNodeIDs != nil {
		if _, ok := o.InterestingNodeIDs[nodeID]; !ok {
			return false
		}
	}
	if o.InterestingReadIDs != nil {
		if _, ok := o.InterestingReadIDs[readID]; !ok {
			return false
		}
	}
	return true
}
