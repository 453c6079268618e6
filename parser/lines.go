// SPDX-License-Identifier: MIT
//
// File: lines.go
// Role: Line sources feeding the state machine.
// Policy:
//   - Lines are returned without "\n" or "\r\n".
//   - Line numbers are 1-based and refer to the original input, also after
//     a prefilter dropped lines in between.

package parser

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineSource yields numbered lines. Next returns io.EOF after the last line.
type LineSource interface {
	Next() (line string, no int, err error)
}

// readerSource reads lines of any length from an io.Reader.
type readerSource struct {
	br *bufio.Reader
	no int

	// pushed holds one line handed back by unread.
	pushed    string
	pushedNo  int
	hasPushed bool
}

func newReaderSource(r io.Reader) *readerSource {
	return &readerSource{br: bufio.NewReaderSize(r, 64*1024)}
}

// Next implements LineSource.
func (s *readerSource) Next() (string, int, error) {
	if s.hasPushed {
		s.hasPushed = false
		return s.pushed, s.pushedNo, nil
	}
	line, err := s.br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", s.no, err
		}
		if line == "" {
			return "", s.no, io.EOF
		}
	}
	s.no++

	return trimEOL(line), s.no, nil
}

// unread hands one line back; the next call to Next returns it again.
func (s *readerSource) unread(line string, no int) {
	s.pushed, s.pushedNo, s.hasPushed = line, no, true
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Line is one line kept by a Prefilter. No is 0 for group separators.
type Line struct {
	No   int
	Text string
}

// sliceSource replays lines kept by a Prefilter.
type sliceSource struct {
	lines []Line
	pos   int
}

// Next implements LineSource.
func (s *sliceSource) Next() (string, int, error) {
	if s.pos >= len(s.lines) {
		return "", 0, io.EOF
	}
	l := s.lines[s.pos]
	s.pos++

	return l.Text, l.No, nil
}

// fields splits a row on tabs. An empty row yields one empty field.
func fields(row string) []string {
	return strings.Split(row, "\t")
}

// NewLineSource numbers the lines of r for a Prefilter. Line terminators
// are stripped and "\r\n" is accepted.
func NewLineSource(r io.Reader) LineSource {
	return newReaderSource(r)
}
