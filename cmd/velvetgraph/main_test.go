package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/velvet/dijkstra"
)

const (
	lastGraph = "../../parser/testdata/short_node.LastGraph"
	seqsFile  = "../../sequences/testdata/reads.Sequences"
	namesFile = "../../sequences/testdata/CnyUnifiedSeq.names"
)

// run executes the command tree and returns stdout and stderr.
func run(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	a.out, a.errOut = &out, &errOut
	root := a.rootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestStats(t *testing.T) {
	out, _, err := run(t, &app{}, "stats", lastGraph, lastGraph)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "file\tnodes\tarcs\tk\tshort_nodes\tself_loops\tlength\treads", lines[0])
	assert.Equal(t, lastGraph+"\t4\t4\t7\t1\t0\t37\t3", lines[1])

	out, _, err = run(t, &app{}, "stats", "--skip-reads", lastGraph)
	require.NoError(t, err)
	assert.Contains(t, out, lastGraph+"\t4\t4\t7\t1\t0\t37\t0")

	out, _, err = run(t, &app{}, "stats", "--nodes", "4", "--prefilter", "10", lastGraph)
	require.NoError(t, err)
	assert.Contains(t, out, lastGraph+"\t4\t4\t7\t1\t0\t37\t2")
}

func TestNeighbours(t *testing.T) {
	out, _, err := run(t, &app{}, "neighbours", lastGraph, "--node", "4")
	require.NoError(t, err)
	assert.Equal(t, "4+\t2- 3-\n4-\t\n", out)

	_, _, err = run(t, &app{}, "neighbours", lastGraph, "--node", "9")
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	out, _, err := run(t, &app{}, "walk", lastGraph, "--from", "1+", "--to", "4-")
	require.NoError(t, err)
	assert.Equal(t, "1+ 2+ 4-\nGCTAAAGACAATTACATAACATACACGTCAGCACG\n", out)

	_, _, err = run(t, &app{}, "walk", lastGraph, "--from", "1+", "--to", "4-", "--max-depth", "1")
	assert.Error(t, err)

	out, _, err = run(t, &app{}, "walk", lastGraph, "--from", "4+", "--to", "1-", "--bases")
	require.NoError(t, err)
	assert.Equal(t, "4+ 2- 1-\nCGTGCTGACGTGTATGTTATGTAATTGTCTTTAGC\n", out)

	_, _, err = run(t, &app{}, "walk", lastGraph, "--from", "4+", "--to", "1-", "--bases", "--max-depth", "1")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, _, err = run(t, &app{}, "walk", lastGraph, "--from", "1", "--to", "4-")
	assert.ErrorIs(t, err, errBadKey)
}

func TestCycles(t *testing.T) {
	out, _, err := run(t, &app{}, "cycles", lastGraph, "--order")
	require.NoError(t, err)
	assert.Equal(t, "acyclic\n4+ 3- 2- 1- 1+ 3+ 2+ 4-\n", out)

	looped := filepath.Join(t.TempDir(), "LastGraph")
	require.NoError(t, os.WriteFile(looped, []byte("1\t1\t3\nNODE\t1\t2\t1\t1\nAC\nGT\nARC\t1\t1\t2\n"), 0o644))
	out, _, err = run(t, &app{}, "cycles", looped)
	require.NoError(t, err)
	assert.Equal(t, "1+ 1+\n", out)

	var b strings.Builder
	b.WriteString("4\t4\t3\n")
	for id := 1; id <= 4; id++ {
		b.WriteString("NODE\t" + strconv.Itoa(id) + "\t2\t1\t1\nAC\nGT\n")
	}
	b.WriteString("ARC\t1\t3\t1\nARC\t3\t-2\t1\nARC\t-2\t-4\t1\nARC\t3\t-4\t1\nARC\t-4\t1\t1\n")
	shared := filepath.Join(t.TempDir(), "LastGraph")
	require.NoError(t, os.WriteFile(shared, []byte(b.String()), 0o644))
	out, _, err = run(t, &app{}, "cycles", shared)
	require.NoError(t, err)
	assert.Equal(t, "1+ 3+ 4- 1+\n1+ 3+ 2- 4- 1+\n", out)
}

func TestSequencesAndNames(t *testing.T) {
	out, _, err := run(t, &app{}, "sequences", seqsFile, "--reads", "5,2", "--prefilter", "3")
	require.NoError(t, err)
	assert.Equal(t, ">2\nAAGTAAGTGTGATGCATACGCCTTTACTTG\n>5\nTGCGTTCGCTCTATTGACTACGACG\n", out)

	out, errOut, err := run(t, &app{}, "names", namesFile, "read2", "nobody")
	require.NoError(t, err)
	assert.Equal(t, "read2\t2\t0\n", out)
	assert.Contains(t, errOut, "read name not found")
}

func TestConfigAndFlags(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "velvetgraph.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log: {level: debug, format: json}\nparse: {skip_read_tracking: true}\n"), 0o644))

	out, errOut, err := run(t, &app{}, "--config", cfg, "stats", lastGraph)
	require.NoError(t, err)
	assert.Contains(t, out, "\t37\t0\n")
	assert.Contains(t, errOut, `"level":"DEBUG"`)

	// an explicit flag beats the file
	out, _, err = run(t, &app{}, "--config", cfg, "--skip-reads=false", "stats", lastGraph)
	require.NoError(t, err)
	assert.Contains(t, out, "\t37\t3\n")

	_, _, err = run(t, &app{}, "--log-level", "loud", "stats", lastGraph)
	assert.Error(t, err)

	_, _, err = run(t, &app{}, "--prefilter", "5", "stats", lastGraph)
	assert.Error(t, err, "a prefilter needs interesting ids")
}

func TestAssemble(t *testing.T) {
	fixture, err := os.ReadFile(lastGraph)
	require.NoError(t, err)

	var calls []string
	a := &app{executor: func(_ context.Context, _, program, args string) (int, string, string, error) {
		calls = append(calls, program+" "+args)
		if program == "velvetg" {
			dir := strings.Fields(args)[0]
			if err := os.WriteFile(filepath.Join(dir, "LastGraph"), fixture, 0o644); err != nil {
				return 0, "", "", err
			}
		}
		return 0, "", "", nil
	}}
	outDir := filepath.Join(t.TempDir(), "asm")

	out, _, err := run(t, a, "assemble", "--velveth-args", "-short reads.fa", "--out", outDir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"velveth " + outDir + " 31 -short reads.fa",
		"velvetg " + outDir + " ",
	}, calls)
	assert.Contains(t, out, "dir\t"+outDir+"\n")
	assert.Contains(t, out, "nodes\t4\n")
	assert.Contains(t, out, "contigs\t"+filepath.Join(outDir, "contigs.fa")+"\n")

	_, _, err = run(t, a, "assemble", "--kmer", "30")
	assert.Error(t, err)
}

func TestParseKey(t *testing.T) {
	k, err := parseKey("12-")
	require.NoError(t, err)
	assert.Equal(t, "12-", k.String())

	for _, bad := range []string{"", "+", "0+", "x+", "12", "-3+"} {
		_, err := parseKey(bad)
		assert.ErrorIs(t, err, errBadKey, bad)
	}
}
