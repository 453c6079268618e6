package dfs_test

import (
	"testing"

	"github.com/katalvlaran/velvet/core"
)

func fwd(id int) core.Strand { return core.Strand{ID: id, Side: core.StartIsFirst} }
func rev(id int) core.Strand { return core.Strand{ID: id, Side: core.EndIsFirst} }

// buildGraph creates nodes 1..n with placeholder tails and the given arcs,
// each written as {from, to} with velvet signs.
func buildGraph(t *testing.T, n int, arcs ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n, n, 5)
	for id := 1; id <= n; id++ {
		if err := g.AddNode(core.NewNode(id, 4, nil, "ACGT", "ACGT")); err != nil {
			t.Fatal(err)
		}
	}
	for _, a := range arcs {
		if err := g.AddArc(core.NewArc(a[0], a[1], 1)); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// buildBubble is the four-node bubble 1+ → {2+, 3+} → 4-.
func buildBubble(t *testing.T) *core.Graph {
	return buildGraph(t, 4, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, -4}, [2]int{3, -4})
}
