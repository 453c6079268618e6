// SPDX-License-Identifier: MIT
//
// File: sequences.go
// Role: Sequences file parsing, plain and prefiltered.
// Policy:
//   - Lines are joined per record; blank lines are ignored.
//   - A prefiltered parse either returns exactly the sequences of the plain
//     parse for the interesting reads, or fails with ErrAmbiguousFilter.

package sequences

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/velvet/parser"
)

// Parse reads a velvet Sequences file from r.
//
// Implementation:
//   - Stage 1: Resolve options; a prefilter needs interesting read IDs.
//   - Stage 2: Without a prefilter, stream every line through the record
//     assembler.
//   - Stage 3: With a prefilter, keep only headers of interesting reads and
//     their trailing context, then assemble. A record cut at a group
//     separator or at the end, whose last line is a full LineWidth, may
//     continue beyond the context and yields ErrAmbiguousFilter.
//
// Errors: *parser.ParseError (matches parser.ErrMalformedRow) for bad
// headers or sequence data before the first header; ErrAmbiguousFilter;
// read errors from r.
func Parse(r io.Reader, opts ...Option) (Sequences, error) {
	o := Options{Logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Prefilter != nil && len(o.InterestingReadIDs) == 0 {
		return nil, ErrPrefilterWithoutFilter
	}

	src := parser.NewLineSource(r)
	a := &assembler{opts: &o, out: Sequences{}, filtered: o.Prefilter != nil}
	if a.filtered {
		kept, err := o.Prefilter.Filter(src, a.matchHeader)
		if err != nil {
			return nil, err
		}
		for _, l := range kept {
			if err := a.line(l.Text, l.No); err != nil {
				return nil, err
			}
		}
	} else {
		for {
			text, no, err := src.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, err
			}
			if err := a.line(text, no); err != nil {
				return nil, err
			}
		}
	}
	if err := a.finish(); err != nil {
		return nil, err
	}

	o.Logger.Info("read velvet stored sequences", slog.Int("count", len(a.out)))
	return a.out, nil
}

// ParseFile opens path with parser.Open, so compressed files work, and
// parses it.
func ParseFile(path string, opts ...Option) (Sequences, error) {
	rc, err := parser.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	s, err := Parse(rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// assembler joins wrapped sequence lines into records.
type assembler struct {
	opts     *Options
	out      Sequences
	filtered bool

	current  int // read ID of the record being assembled, 0 when skipping
	started  bool
	seq      strings.Builder
	lastLine int // length of the last sequence line of current
}

// matchHeader selects header rows of interesting reads for a prefilter.
func (a *assembler) matchHeader(row string) bool {
	if !strings.HasPrefix(row, ">") {
		return false
	}
	_, id, _, err := parseHeader(row)
	return err == nil && a.opts.interesting(id)
}

func (a *assembler) line(text string, no int) error {
	switch {
	case a.filtered && no == 0:
		// group separator: whatever followed is out of sight
		if err := a.checkCut(); err != nil {
			return err
		}
		a.flush()
		a.current = 0

	case strings.HasPrefix(text, ">"):
		a.flush()
		_, id, _, err := parseHeader(text)
		if err != nil {
			return &parser.ParseError{Line: no, Row: text, Err: err}
		}
		a.started = true
		a.current = 0
		if a.opts.interesting(id) {
			a.current = id
		}
		a.seq.Reset()
		a.lastLine = 0

	case text == "":
		// blank

	case !a.started && !a.filtered:
		return &parser.ParseError{Line: no, Row: text, Err: errors.New("sequence data before the first header")}

	case a.current != 0:
		a.seq.WriteString(text)
		a.lastLine = len(text)
	}
	return nil
}

func (a *assembler) finish() error {
	if a.filtered {
		if err := a.checkCut(); err != nil {
			return err
		}
	}
	a.flush()
	return nil
}

func (a *assembler) checkCut() error {
	if a.current != 0 && a.lastLine == LineWidth {
		return fmt.Errorf("%w: read %d may continue beyond the kept lines", ErrAmbiguousFilter, a.current)
	}
	return nil
}

func (a *assembler) flush() {
	if a.current != 0 {
		a.out[a.current] = a.seq.String()
	}
	a.current = 0
	a.seq.Reset()
	a.lastLine = 0
}

// parseHeader splits ">name\treadID\tcategory". The category is optional.
func parseHeader(row string) (name string, readID, category int, err error) {
	f := strings.Split(strings.TrimPrefix(row, ">"), "\t")
	if len(f) < 2 {
		return "", 0, 0, fmt.Errorf("header needs name and read id, got %d fields", len(f))
	}
	readID, err = strconv.Atoi(f[1])
	if err != nil || readID <= 0 {
		return "", 0, 0, fmt.Errorf("read id %q is not a positive integer", f[1])
	}
	if len(f) > 2 && f[2] != "" {
		category, err = strconv.Atoi(f[2])
		if err != nil {
			return "", 0, 0, fmt.Errorf("category %q is not an integer", f[2])
		}
	}
	return f[0], readID, category, nil
}
