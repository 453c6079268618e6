// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.
//
// Purpose:
//   - Build small, hand-checked velvet graphs without going through the parser.
//   - Keep node IDs and expected sequences as named constants, not magic strings.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/velvet/core"
)

// Fixture A, k=7:
//
//	1(+) -> 2(+) -> 4(-)
//	1(+) -> 3(+) -> 4(-)
//
// Node 2 has a three-base tail and must borrow from a neighbour.
const (
	fixtureK = 7

	seqNode1 = "GCTAAAGACAATTACATAAC"
	seqNode2 = "CATAACATA"
	seqNode3 = "CATAACAAAACATA"
	seqNode4 = "CGTGCTGACGTGTATGTT"

	// walk 1(+) 2(+) 4(-)
	seqWalk124 = "GCTAAAGACAATTACATAACATACACGTCAGCACG"
)

type nodeRow struct {
	id        int
	length    int
	coverages []int
	fwd, rev  string
}

var fixtureANodes = []nodeRow{
	{1, 14, []int{70, 60}, "GACAATTACATAAC", "TAATTGTCTTTAGC"},
	{2, 3, []int{6, 6}, "ATA", "ATG"},
	{3, 8, []int{16, 12}, "AAAACATA", "TTGTTATG"},
	{4, 12, []int{48, 40}, "GACGTGTATGTT", "CACGTCAGCACG"},
}

// signed from, signed to, multiplicity
var fixtureAArcs = [][3]int{
	{1, 2, 3},
	{1, 3, 5},
	{2, -4, 3},
	{3, -4, 5},
}

// NewFixtureA RETURNS the four-node k=7 graph described above.
func NewFixtureA(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph(4, 10, fixtureK)
	for _, r := range fixtureANodes {
		require.NoError(t, g.AddNode(core.NewNode(r.id, r.length, r.coverages, r.fwd, r.rev)))
	}
	for _, a := range fixtureAArcs {
		require.NoError(t, g.AddArc(core.NewArc(a[0], a[1], a[2])))
	}

	return g
}

// NewGraphFromRows builds a k-mer graph from node rows and signed arcs.
func NewGraphFromRows(t *testing.T, k int, nodes []nodeRow, arcs [][3]int) *core.Graph {
	t.Helper()

	g := core.NewGraph(len(nodes), 1, k)
	for _, r := range nodes {
		require.NoError(t, g.AddNode(core.NewNode(r.id, r.length, r.coverages, r.fwd, r.rev)))
	}
	for _, a := range arcs {
		require.NoError(t, g.AddArc(core.NewArc(a[0], a[1], a[2])))
	}

	return g
}

// nodeIDs maps nodes to their IDs, keeping order.
func nodeIDs(nodes []*core.Node) []int {
	out := make([]int, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

// arcStrings renders arcs as "from to mult" rows, keeping order.
func arcStrings(arcs []*core.Arc) []string {
	out := make([]string, 0, len(arcs))
	for _, a := range arcs {
		out = append(out, a.String())
	}
	return out
}
