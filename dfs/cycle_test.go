package dfs_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/velvet/core"
	"github.com/katalvlaran/velvet/dfs"
)

func TestDetectCycles_NilAndAcyclic(t *testing.T) {
	has, cycles := dfs.DetectCycles(nil)
	assert.False(t, has)
	assert.Nil(t, cycles)

	has, cycles = dfs.DetectCycles(buildBubble(t))
	assert.False(t, has)
	assert.Empty(t, cycles)
}

// TestDetectCycles_TwinReportedOnce builds 1→2→3→1; the twin loop
// 1-→3-→2-→1- is the same repeat read backwards.
func TestDetectCycles_TwinReportedOnce(t *testing.T) {
	g := buildGraph(t, 3, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1})

	has, cycles := dfs.DetectCycles(g)
	assert.True(t, has)
	assert.Equal(t, [][]core.Strand{{fwd(1), fwd(2), fwd(3), fwd(1)}}, cycles)
}

func TestDetectCycles_SelfLoopAndInversion(t *testing.T) {
	// 1 loops onto itself; 2→3→-2 turns around and is not a cycle.
	g := buildGraph(t, 3, [2]int{1, 1}, [2]int{2, 3}, [2]int{3, -2})

	has, cycles := dfs.DetectCycles(g)
	assert.True(t, has)
	assert.Equal(t, [][]core.Strand{{fwd(1), fwd(1)}}, cycles)
}

func TestDetectCycles_TwinRotationWins(t *testing.T) {
	// 2→-1 and -1→2 form the loop 2+ → 1- → 2+, whose twin 2- → 1+ → 2-
	// starts with the smaller strand 1+.
	g := buildGraph(t, 2, [2]int{2, -1}, [2]int{-1, 2})

	has, cycles := dfs.DetectCycles(g)
	assert.True(t, has)
	assert.Equal(t, [][]core.Strand{{fwd(1), rev(2), fwd(1)}}, cycles)
}

// TestDetectCycles_SharedStrands builds two loops through 1+ and 3+ that
// part at 3+: one via 2-, one straight to 4-. A search that only follows
// back edges reaches 4- through 2- first and misses the shorter loop.
func TestDetectCycles_SharedStrands(t *testing.T) {
	g := buildGraph(t, 4,
		[2]int{1, 3}, [2]int{3, -2}, [2]int{-2, -4}, [2]int{3, -4}, [2]int{-4, 1})

	has, cycles := dfs.DetectCycles(g)
	assert.True(t, has)
	assert.Equal(t, [][]core.Strand{
		{fwd(1), fwd(3), rev(4), fwd(1)},
		{fwd(1), fwd(3), rev(2), rev(4), fwd(1)},
	}, cycles)
}

func TestDetectCycles_ParallelArcsReportedOnce(t *testing.T) {
	g := buildGraph(t, 2, [2]int{1, 2}, [2]int{1, 2}, [2]int{2, 1})

	has, cycles := dfs.DetectCycles(g)
	assert.True(t, has)
	assert.Equal(t, [][]core.Strand{{fwd(1), fwd(2), fwd(1)}}, cycles)
}

// exhaustiveCycles lists every elementary strand cycle by trying all simple
// paths from each strand through larger strands only, folded like
// DetectCycles folds them.
func exhaustiveCycles(g *core.Graph) []string {
	var all []core.Strand
	for _, n := range g.Nodes() {
		all = append(all, fwd(n.ID), rev(n.ID))
	}
	step := func(s core.Strand) []core.Strand {
		var out []core.Strand
		for _, nb := range g.OrientedNeighbours(core.OrientedNode{Node: g.Node(s.ID), FirstSide: s.Side}) {
			out = append(out, nb.Strand())
		}
		return out
	}

	found := map[string]bool{}
	for _, start := range all {
		onPath := map[core.Strand]bool{start: true}
		var walk func(path []core.Strand)
		walk = func(path []core.Strand) {
			for _, nb := range step(path[len(path)-1]) {
				if nb == start {
					rotF := dfs.MinimalRotation(path)
					rotT := dfs.MinimalRotation(dfs.TwinWalk(path))
					if dfs.Compare(rotT, rotF) < 0 {
						rotF = rotT
					}
					found[dfs.JoinSig(append(rotF, rotF[0]))] = true
					continue
				}
				if nb.Less(start) || onPath[nb] {
					continue
				}
				onPath[nb] = true
				walk(append(path, nb))
				delete(onPath, nb)
			}
		}
		walk([]core.Strand{start})
	}

	out := make([]string, 0, len(found))
	for sig := range found {
		out = append(out, sig)
	}
	sort.Strings(out)
	return out
}

func TestDetectCycles_MatchesExhaustiveSearch(t *testing.T) {
	for seed := int64(1); seed <= 500; seed++ {
		rng := rand.New(rand.NewSource(seed))
		end := func() int {
			id := 1 + rng.Intn(4)
			if rng.Intn(2) == 0 {
				return -id
			}
			return id
		}
		var arcs [][2]int
		for i := rng.Intn(7); i > 0; i-- {
			arcs = append(arcs, [2]int{end(), end()})
		}
		g := buildGraph(t, 4, arcs...)

		has, cycles := dfs.DetectCycles(g)
		got := make([]string, 0, len(cycles))
		for _, c := range cycles {
			got = append(got, dfs.JoinSig(c))
		}
		sort.Strings(got)

		want := exhaustiveCycles(g)
		assert.Equal(t, want, got, "seed %d arcs %v", seed, arcs)
		assert.Equal(t, len(want) > 0, has, "seed %d", seed)
	}
}

func TestMinimalRotation(t *testing.T) {
	in := []core.Strand{fwd(3), rev(1), fwd(2), fwd(1)}
	assert.Equal(t, []core.Strand{fwd(1), fwd(3), rev(1), fwd(2)}, dfs.MinimalRotation(in))
	assert.Equal(t, []core.Strand{fwd(3), rev(1), fwd(2), fwd(1)}, in, "input untouched")

	assert.Equal(t, []core.Strand{rev(1), rev(2), fwd(1), rev(3)}, dfs.TwinWalk(in))
	assert.Equal(t, "3+,1-,2+,1+", dfs.JoinSig(in))
	assert.Equal(t, 2, dfs.IndexOf(in, fwd(2)))
	assert.Equal(t, -1, dfs.IndexOf(in, fwd(9)))
}
