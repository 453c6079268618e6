// SPDX-License-Identifier: MIT

package runner_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/velvet/runner"
)

const lastGraphFixture = "../parser/testdata/short_node.LastGraph"

type call struct {
	program string
	args    string
}

// fakeVelvet stands in for the binaries: velvetg copies a LastGraph into
// the result directory named by its first argument.
type fakeVelvet struct {
	mu       sync.Mutex
	calls    []call
	statuses map[string]int
}

func (f *fakeVelvet) exec(_ context.Context, _ string, program, args string) (int, string, string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{program, args})
	f.mu.Unlock()

	if st := f.statuses[program]; st != 0 {
		return st, "", program + ": boom", nil
	}
	if program == "velvetg" {
		dir := strings.Fields(args)[0]
		data, err := os.ReadFile(lastGraphFixture)
		if err != nil {
			return 0, "", "", err
		}
		for name, body := range map[string][]byte{
			runner.LastGraphFile: data,
			runner.ContigsFile:   []byte(">NODE_1\nACGT\n"),
			runner.StatsFile:     []byte("ID\tlgth\n"),
		} {
			if err := os.WriteFile(filepath.Join(dir, name), body, 0o644); err != nil {
				return 0, "", "", err
			}
		}
		return 0, "Final graph has 4 nodes\n", "", nil
	}
	return 0, program + " ok\n", "", nil
}

func TestVelvet_TemporaryDirectory(t *testing.T) {
	fake := &fakeVelvet{}
	var logs bytes.Buffer
	r := runner.New(
		runner.WithExecutor(fake.exec),
		runner.WithTempRoot(t.TempDir()),
		runner.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)

	res, err := r.Velvet(context.Background(), 29, "-short reads.fa", "-read_trkg yes", "")
	require.NoError(t, err)
	assert.True(t, res.Temporary)
	assert.NotEqual(t, uuid.Nil, res.RunID)
	assert.DirExists(t, res.Dir)

	require.Len(t, fake.calls, 2)
	assert.Equal(t, call{"velveth", res.Dir + " 29 -short reads.fa"}, fake.calls[0])
	assert.Equal(t, call{"velvetg", res.Dir + " -read_trkg yes"}, fake.calls[1])
	assert.Equal(t, "velveth ok\n", res.VelvethStdout)
	assert.Equal(t, "Final graph has 4 nodes\n", res.VelvetgStdout)

	assert.FileExists(t, res.ContigsPath())
	assert.FileExists(t, res.StatsPath())
	g, err := res.LastGraph()
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeLen())

	assert.Contains(t, logs.String(), "run_id="+res.RunID.String())

	require.NoError(t, res.Cleanup())
	assert.NoDirExists(t, res.Dir)
}

func TestVelvet_OutputDirectoryIsKept(t *testing.T) {
	fake := &fakeVelvet{}
	out := filepath.Join(t.TempDir(), "my_velvet_assembly")
	r := runner.New(runner.WithExecutor(fake.exec))

	res, err := r.Velvet(context.Background(), 31, "-short reads.fa", "", out)
	require.NoError(t, err)
	assert.Equal(t, out, res.Dir)
	assert.False(t, res.Temporary)
	assert.Equal(t, filepath.Join(out, "LastGraph"), res.LastGraphPath())

	require.NoError(t, res.Cleanup())
	assert.DirExists(t, out)
}

func TestVelveth_Failures(t *testing.T) {
	root := t.TempDir()
	fake := &fakeVelvet{statuses: map[string]int{"velveth": 1}}
	r := runner.New(runner.WithExecutor(fake.exec), runner.WithTempRoot(root))

	_, err := r.Velveth(context.Background(), 29, "-short reads.fa", "")
	assert.ErrorIs(t, err, runner.ErrCommandFailed)
	assert.Contains(t, err.Error(), "velveth: boom")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary directory must be removed")

	for _, k := range []int{0, -3, 30} {
		_, err = r.Velveth(context.Background(), k, "", "")
		assert.ErrorIs(t, err, runner.ErrBadKmer, "kmer %d", k)
	}
}

func TestVelvet_WhiteSpaceDirectoryRejected(t *testing.T) {
	fake := &fakeVelvet{}
	parent := t.TempDir()
	out := filepath.Join(parent, "my assembly")

	r := runner.New(runner.WithExecutor(fake.exec))
	_, err := r.Velvet(context.Background(), 31, "-short reads.fa", "", out)
	assert.ErrorIs(t, err, runner.ErrBadDir)
	assert.NoDirExists(t, out)

	spaced := filepath.Join(parent, "tmp root")
	require.NoError(t, os.Mkdir(spaced, 0o755))
	r = runner.New(runner.WithExecutor(fake.exec), runner.WithTempRoot(spaced))
	_, err = r.Velveth(context.Background(), 31, "", "")
	assert.ErrorIs(t, err, runner.ErrBadDir)
	entries, err := os.ReadDir(spaced)
	require.NoError(t, err)
	assert.Empty(t, entries)

	err = r.Velvetg(context.Background(), &runner.Result{Dir: "/data/my\tassembly\n"}, "")
	assert.ErrorIs(t, err, runner.ErrBadDir)
	err = r.Velvetg(context.Background(), &runner.Result{Dir: out}, "")
	assert.ErrorIs(t, err, runner.ErrBadDir)

	assert.Empty(t, fake.calls, "nothing may run")
}

func TestVelvet_VelvetgFailure(t *testing.T) {
	root := t.TempDir()
	fake := &fakeVelvet{statuses: map[string]int{"velvetg": 2}}
	r := runner.New(runner.WithExecutor(fake.exec), runner.WithTempRoot(root))

	_, err := r.Velvet(context.Background(), 29, "", "", "")
	assert.ErrorIs(t, err, runner.ErrCommandFailed)
	assert.Contains(t, err.Error(), "status 2")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunner_ExecutorError(t *testing.T) {
	missing := errors.New("executable file not found")
	r := runner.New(
		runner.WithTempRoot(t.TempDir()),
		runner.WithExecutor(func(context.Context, string, string, string) (int, string, string, error) {
			return -1, "", "", missing
		}),
	)
	_, err := r.Velveth(context.Background(), 21, "", "")
	assert.ErrorIs(t, err, missing)
	assert.NotErrorIs(t, err, runner.ErrCommandFailed)
}

func TestRunner_Binaries(t *testing.T) {
	fake := &fakeVelvet{}
	r := runner.New(runner.WithExecutor(fake.exec), runner.WithBinaries("/opt/velvet/velveth_de", ""))
	res, err := r.Velveth(context.Background(), 21, "", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/opt/velvet/velveth_de", fake.calls[0].program)

	require.NoError(t, r.Velvetg(context.Background(), res, "-cov_cutoff auto"))
	assert.Equal(t, "velvetg", fake.calls[1].program)
}

func TestBinaryVersion(t *testing.T) {
	banner := "velveth - simple hashing program\nVersion 1.2.10\n\nCopyright 2007, 2008 Daniel Zerbino\n"
	r := runner.New(runner.WithExecutor(func(context.Context, string, string, string) (int, string, string, error) {
		return 1, banner, "", nil
	}))
	v, err := r.BinaryVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.10", v)

	r = runner.New(runner.WithExecutor(func(context.Context, string, string, string) (int, string, string, error) {
		return 0, "nothing useful", "", nil
	}))
	_, err = r.BinaryVersion(context.Background())
	assert.ErrorIs(t, err, runner.ErrNoVersion)
}

func TestExecExecutor(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	status, stdout, _, err := runner.ExecExecutor(context.Background(), t.TempDir(), "/bin/sh", "-c pwd")
	require.NoError(t, err)
	assert.Zero(t, status)
	assert.NotEmpty(t, stdout)

	status, _, _, err = runner.ExecExecutor(context.Background(), "", "/bin/sh", "-c false")
	require.NoError(t, err)
	assert.Equal(t, 1, status)

	_, _, _, err = runner.ExecExecutor(context.Background(), "", filepath.Join(t.TempDir(), "velveth"), "")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, _, err = runner.ExecExecutor(ctx, "", "/bin/sh", "-c true")
	assert.ErrorIs(t, err, context.Canceled)
}
