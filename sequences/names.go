// SPDX-License-Identifier: MIT
//
// File: names.go
// Role: Lookup of read names in a CnyUnifiedSeq.names file.

package sequences

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/velvet/parser"
)

// ExtractNames returns, for every requested name, the entries of the
// CnyUnifiedSeq.names file read from r that carry it. Every requested name
// is a key of the result, with an empty slice when absent. A name can occur
// more than once, e.g. for both mates of a pair.
func ExtractNames(r io.Reader, names ...string) (map[string][]NameEntry, error) {
	out := make(map[string][]NameEntry, len(names))
	for _, n := range names {
		out[n] = []NameEntry{}
	}

	src := parser.NewLineSource(r)
	for {
		row, no, err := src.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if row == "" {
			continue
		}
		if !strings.HasPrefix(row, ">") {
			return nil, &parser.ParseError{Line: no, Row: row, Err: errors.New("names row must start with '>'")}
		}

		// cheap reject before parsing numbers
		name, _, _ := strings.Cut(row[1:], "\t")
		if _, ok := out[name]; !ok {
			continue
		}
		_, id, cat, err := parseHeader(row)
		if err != nil {
			return nil, &parser.ParseError{Line: no, Row: row, Err: err}
		}
		out[name] = append(out[name], NameEntry{Name: name, ReadID: id, Category: cat})
	}
}

// ExtractNamesFile is ExtractNames over the file at path.
func ExtractNamesFile(path string, names ...string) (map[string][]NameEntry, error) {
	rc, err := parser.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	out, err := ExtractNames(rc, names...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
