// SPDX-License-Identifier: MIT
//
// File: runner.go
// Role: velveth / velvetg invocation.
// Policy:
//   - Arguments are passed as one string, split on white space; quoting is
//     not interpreted. Result directories containing white space are
//     rejected with ErrBadDir before anything is created or run.
//   - A failed velveth leaves no temporary directory behind.

package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Runner invokes the velvet binaries through an Executor.
type Runner struct {
	exec     Executor
	logger   *slog.Logger
	velveth  string
	velvetg  string
	tempRoot string
}

// New returns a Runner using ExecExecutor and the binaries found on PATH.
func New(opts ...Option) *Runner {
	r := &Runner{
		exec:    ExecExecutor,
		logger:  slog.Default(),
		velveth: "velveth",
		velvetg: "velvetg",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Velvet runs velveth then velvetg. outDir "" assembles in a fresh
// temporary directory.
func (r *Runner) Velvet(ctx context.Context, kmer int, velvethArgs, velvetgArgs, outDir string) (*Result, error) {
	res, err := r.Velveth(ctx, kmer, velvethArgs, outDir)
	if err != nil {
		return nil, err
	}
	if err := r.Velvetg(ctx, res, velvetgArgs); err != nil {
		_ = res.Cleanup()
		return nil, err
	}
	return res, nil
}

// Velveth runs "velveth <dir> <kmer> <args>".
//
// Implementation:
//   - Stage 1: Validate kmer; velvet hashes need an odd length.
//   - Stage 2: Use outDir, creating it if missing, or a new temporary dir.
//     Either must be free of white space.
//   - Stage 3: Execute and capture output; a non-zero exit wraps
//     ErrCommandFailed with velveth's stderr.
func (r *Runner) Velveth(ctx context.Context, kmer int, args, outDir string) (*Result, error) {
	if kmer <= 0 || kmer%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadKmer, kmer)
	}

	root := r.tempRoot
	if root == "" {
		root = os.TempDir()
	}
	if outDir != "" {
		root = outDir
	}
	if err := checkDir(root); err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.New(), Dir: outDir}
	if outDir == "" {
		dir, err := os.MkdirTemp(r.tempRoot, "velvet-")
		if err != nil {
			return nil, fmt.Errorf("runner: create result directory: %w", err)
		}
		res.Dir, res.Temporary = dir, true
	} else if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("runner: create result directory: %w", err)
	}

	full := res.Dir + " " + strconv.Itoa(kmer) + " " + args
	stdout, stderr, err := r.run(ctx, res, r.velveth, full)
	if err != nil {
		_ = res.Cleanup()
		return nil, err
	}
	res.VelvethStdout, res.VelvethStderr = stdout, stderr

	return res, nil
}

// Velvetg runs "velvetg <res.Dir> <args>" and records its output in res.
func (r *Runner) Velvetg(ctx context.Context, res *Result, args string) error {
	if err := checkDir(res.Dir); err != nil {
		return err
	}
	stdout, stderr, err := r.run(ctx, res, r.velvetg, res.Dir+" "+args)
	if err != nil {
		return err
	}
	res.VelvetgStdout, res.VelvetgStderr = stdout, stderr
	return nil
}

// checkDir rejects directories that strings.Fields would split apart.
func checkDir(dir string) error {
	if strings.ContainsFunc(dir, unicode.IsSpace) {
		return fmt.Errorf("%w: %q", ErrBadDir, filepath.Clean(dir))
	}
	return nil
}

var versionRE = regexp.MustCompile(`Version\s+(\d+\.\S+)`)

// BinaryVersion runs velveth without arguments and returns the version
// it prints, e.g. "1.2.10".
func (r *Runner) BinaryVersion(ctx context.Context) (string, error) {
	// velveth exits non-zero when called bare, so the status is not checked.
	_, stdout, stderr, err := r.exec(ctx, "", r.velveth, "")
	if err != nil {
		return "", fmt.Errorf("runner: %s: %w", r.velveth, err)
	}
	m := versionRE.FindStringSubmatch(stdout + "\n" + stderr)
	if m == nil {
		return "", ErrNoVersion
	}
	return m[1], nil
}

func (r *Runner) run(ctx context.Context, res *Result, program, args string) (string, string, error) {
	log := r.logger.With(slog.String("run_id", res.RunID.String()), slog.String("program", program))
	log.Info("running velvet", slog.String("args", args))

	status, stdout, stderr, err := r.exec(ctx, "", program, args)
	if err != nil {
		return "", "", fmt.Errorf("runner: %s: %w", program, err)
	}
	if status != 0 {
		log.Warn("velvet failed", slog.Int("status", status))
		return "", "", fmt.Errorf("%w: %s exited with status %d: %s", ErrCommandFailed, program, status, stderr)
	}
	log.Debug("velvet finished", slog.Int("stdout_bytes", len(stdout)))
	return stdout, stderr, nil
}
