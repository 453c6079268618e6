// SPDX-License-Identifier: MIT
//
// File: open.go
// Role: File entry points: transparent decompression, single and bulk parsing.
// Concurrency:
//   - ParseFiles parses each file on its own goroutine into its own Graph.

package parser

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/velvet/core"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// readCloser closes a decoder and the file underneath it.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (rc *readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open opens path for parsing. gzip and zstd content is detected by its
// magic bytes and decompressed on the fly; anything else is read as is.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReaderSize(f, 64*1024)
	head, _ := br.Peek(len(zstdMagic))

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("parser: gzip %s: %w", path, err)
		}
		return &readCloser{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil

	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("parser: zstd %s: %w", path, err)
		}
		closeZstd := func() error { zr.Close(); return nil }
		return &readCloser{Reader: zr, closers: []func() error{closeZstd, f.Close}}, nil
	}

	return &readCloser{Reader: br, closers: []func() error{f.Close}}, nil
}

// ParseFile opens path with Open and parses it.
func ParseFile(path string, opts ...Option) (*core.Graph, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	g, err := Parse(rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ctxReader fails reads once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// ParseFiles parses every path concurrently, at most GOMAXPROCS at a time.
// graphs[i] belongs to paths[i]. The first failure cancels the remaining
// parses and is returned.
func ParseFiles(ctx context.Context, paths []string, opts ...Option) ([]*core.Graph, error) {
	graphs := make([]*core.Graph, len(paths))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			rc, err := Open(path)
			if err != nil {
				return err
			}
			defer rc.Close()

			g, err := Parse(ctxReader{ctx: egCtx, r: rc}, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			graphs[i] = g
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return graphs, nil
}
