// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Executor contract, Result, errors and options.

package runner

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/katalvlaran/velvet/core"
	"github.com/katalvlaran/velvet/parser"
)

// Sentinel errors.
var (
	// ErrCommandFailed is returned when a binary exits with a non-zero status.
	ErrCommandFailed = errors.New("runner: command failed")

	// ErrBadKmer is returned for a hash length velveth cannot use.
	ErrBadKmer = errors.New("runner: kmer length must be a positive odd number")

	// ErrNoVersion is returned when velveth does not print a version.
	ErrNoVersion = errors.New("runner: velveth printed no version")

	// ErrBadDir is returned for a result directory containing white space;
	// it could not survive the argument string split.
	ErrBadDir = errors.New("runner: result directory must not contain white space")
)

// Output file names inside a result directory.
const (
	LastGraphFile = "LastGraph"
	ContigsFile   = "contigs.fa"
	StatsFile     = "stats.txt"
)

// Result describes one assembly directory.
type Result struct {
	// RunID tags every log record of the run.
	RunID uuid.UUID
	// Dir is the result directory handed to velveth and velvetg.
	Dir string
	// Temporary reports that Dir was created by the runner; Cleanup removes it.
	Temporary bool

	VelvethStdout, VelvethStderr string
	VelvetgStdout, VelvetgStderr string
}

// LastGraphPath is the LastGraph written by velvetg.
func (r *Result) LastGraphPath() string { return filepath.Join(r.Dir, LastGraphFile) }

// ContigsPath is the contigs.fa written by velvetg.
func (r *Result) ContigsPath() string { return filepath.Join(r.Dir, ContigsFile) }

// StatsPath is the stats.txt written by velvetg.
func (r *Result) StatsPath() string { return filepath.Join(r.Dir, StatsFile) }

// LastGraph parses LastGraphPath with opts.
func (r *Result) LastGraph(opts ...parser.Option) (*core.Graph, error) {
	return parser.ParseFile(r.LastGraphPath(), opts...)
}

// Cleanup removes Dir if the runner created it. Directories supplied by
// the caller are left alone.
func (r *Result) Cleanup() error {
	if !r.Temporary || r.Dir == "" {
		return nil
	}
	return os.RemoveAll(r.Dir)
}

// Option configures a Runner.
type Option func(*Runner)

// WithExecutor replaces ExecExecutor.
func WithExecutor(e Executor) Option {
	return func(r *Runner) {
		if e != nil {
			r.exec = e
		}
	}
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithBinaries overrides the velveth and velvetg program names or paths.
// Empty values keep the defaults.
func WithBinaries(velveth, velvetg string) Option {
	return func(r *Runner) {
		if velveth != "" {
			r.velveth = velveth
		}
		if velvetg != "" {
			r.velvetg = velvetg
		}
	}
}

// WithTempRoot sets where temporary result directories are created;
// "" uses os.TempDir().
func WithTempRoot(dir string) Option {
	return func(r *Runner) { r.tempRoot = dir }
}
