package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/velvet/core"
	"github.com/katalvlaran/velvet/dijkstra"
)

func fwd(id int) core.Strand { return core.Strand{ID: id, Side: core.StartIsFirst} }
func rev(id int) core.Strand { return core.Strand{ID: id, Side: core.EndIsFirst} }

// newShortNodeGraph builds the k=7 graph 1+ → {2+, 3+} → 4- with node
// lengths 14, 3, 8 and 12.
func newShortNodeGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(4, 10, 7)
	nodes := []*core.Node{
		core.NewNode(1, 14, nil, "GACAATTACATAAC", "TAATTGTCTTTAGC"),
		core.NewNode(2, 3, nil, "ATA", "ATG"),
		core.NewNode(3, 8, nil, "AAAACATA", "TTGTTATG"),
		core.NewNode(4, 12, nil, "GACGTGTATGTT", "CACGTCAGCACG"),
	}
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	for _, a := range [][3]int{{1, 2, 3}, {1, 3, 5}, {2, -4, 3}, {3, -4, 5}} {
		if err := g.AddArc(core.NewArc(a[0], a[1], a[2])); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := newShortNodeGraph(t)

	if _, _, err := dijkstra.Dijkstra(g); err != dijkstra.ErrEmptySource {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
	// An empty source has priority over a nil graph.
	if _, _, err := dijkstra.Dijkstra(nil); err != dijkstra.ErrEmptySource {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
	if _, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(fwd(1))); err != dijkstra.ErrNilGraph {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
	if _, _, err := dijkstra.Dijkstra(g, dijkstra.Source(fwd(9))); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}

	negative := dijkstra.WithWeight(func(_, to core.OrientedNode) int64 { return int64(2 - to.Node.ID) })
	if _, _, err := dijkstra.Dijkstra(g, dijkstra.Source(fwd(1)), negative); !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_OptionPanics(t *testing.T) {
	for name, opt := range map[string]func(){
		"max_distance":  func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) },
		"inf_threshold": func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			opt()
		})
	}
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestDijkstra_NodeLengthDistances(t *testing.T) {
	g := newShortNodeGraph(t)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(fwd(1)))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Errorf("prev should be nil without WithReturnPath")
	}

	want := map[core.Strand]int64{
		fwd(1): 0, fwd(2): 3, fwd(3): 8, rev(4): 15,
		rev(1): math.MaxInt64, rev(2): math.MaxInt64, rev(3): math.MaxInt64, fwd(4): math.MaxInt64,
	}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("dist = %v, want %v", dist, want)
	}
}

func TestDijkstra_TwinStrandPath(t *testing.T) {
	g := newShortNodeGraph(t)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(fwd(4)), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist[rev(1)] != 17 {
		t.Errorf("dist[1-] = %d, want 17", dist[rev(1)])
	}

	path, err := dijkstra.PathTo(prev, fwd(4), rev(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.Strand{fwd(4), rev(2), rev(1)}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v, want %v", path, want)
	}

	trail, err := dijkstra.Trail(g, path)
	if err != nil {
		t.Fatal(err)
	}
	seq, err := trail.Sequence()
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 6+12+3+14 {
		t.Errorf("len(seq) = %d, want %d", len(seq), 6+12+3+14)
	}

	if p, err := dijkstra.PathTo(prev, fwd(4), fwd(4)); err != nil || len(p) != 1 {
		t.Errorf("PathTo(self) = %v, %v", p, err)
	}
	if _, err := dijkstra.PathTo(prev, fwd(4), fwd(1)); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := newShortNodeGraph(t)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(fwd(1)), dijkstra.WithMaxDistance(5))
	if err != nil {
		t.Fatal(err)
	}
	if dist[fwd(2)] != 3 {
		t.Errorf("dist[2+] = %d, want 3", dist[fwd(2)])
	}
	for _, s := range []core.Strand{fwd(3), rev(4)} {
		if dist[s] != math.MaxInt64 {
			t.Errorf("dist[%s] = %d, want unreachable", s, dist[s])
		}
	}
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := newShortNodeGraph(t)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(fwd(1)), dijkstra.WithInfEdgeThreshold(8))
	if err != nil {
		t.Fatal(err)
	}
	if dist[fwd(2)] != 3 || dist[fwd(3)] != math.MaxInt64 || dist[rev(4)] != math.MaxInt64 {
		t.Errorf("dist = %v", dist)
	}
}

func TestDijkstra_CustomWeight(t *testing.T) {
	g := newShortNodeGraph(t)
	hops := dijkstra.WithWeight(func(_, _ core.OrientedNode) int64 { return 1 })
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(fwd(1)), hops, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist[rev(4)] != 2 {
		t.Errorf("dist[4-] = %d, want 2", dist[rev(4)])
	}
	// Ties are broken by the smaller strand, so 2+ is settled first.
	if prev[rev(4)] != fwd(2) {
		t.Errorf("prev[4-] = %s, want 2+", prev[rev(4)])
	}
}

func TestDijkstra_SelfLoop(t *testing.T) {
	g := core.NewGraph(1, 1, 3)
	if err := g.AddNode(core.NewNode(1, 2, nil, "AC", "GT")); err != nil {
		t.Fatal(err)
	}
	if err := g.AddArc(core.NewArc(1, 1, 1)); err != nil {
		t.Fatal(err)
	}
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(fwd(1)))
	if err != nil {
		t.Fatal(err)
	}
	if dist[fwd(1)] != 0 || dist[rev(1)] != math.MaxInt64 {
		t.Errorf("dist = %v", dist)
	}
}
