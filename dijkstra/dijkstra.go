// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Shortest oriented walks over strands, weighted by WeightFunc.
// Notes:
//   - Every step is scanned once up front so a negative weight fails fast.
//   - Lazy decrease-key: stale heap entries are skipped when popped.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/velvet/core"
)

// Dijkstra computes the cheapest distance from the source strand to every
// strand of g.
//
// Returns:
//
//   - dist: strand → minimum distance, math.MaxInt64 when unreachable.
//     Both strands of every node are present.
//   - prev: predecessor map when WithReturnPath is set, nil otherwise.
//     prev[v] == u means the cheapest walk to v enters it from u; the zero
//     Strand marks the source and unreachable strands.
//   - err: ErrEmptySource, ErrNilGraph, ErrVertexNotFound or ErrNegativeWeight.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[core.Strand]int64, map[core.Strand]core.Strand, error) {
	cfg := DefaultOptions(core.Strand{})
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source.ID == 0 {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if g.Node(cfg.Source.ID) == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrVertexNotFound, cfg.Source)
	}

	r := &runner{g: g, options: cfg}
	if err := r.scan(); err != nil {
		return nil, nil, err
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// PathTo rebuilds the walk from src to dst out of a predecessor map.
func PathTo(prev map[core.Strand]core.Strand, src, dst core.Strand) ([]core.Strand, error) {
	if dst == src {
		return []core.Strand{src}, nil
	}
	if prev[dst].ID == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPath, dst)
	}

	var rev []core.Strand
	for s := dst; s != src; s = prev[s] {
		if s.ID == 0 || len(rev) > len(prev) {
			return nil, fmt.Errorf("%w: %s", ErrNoPath, dst)
		}
		rev = append(rev, s)
	}
	rev = append(rev, src)

	path := make([]core.Strand, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}
	return path, nil
}

// Trail resolves a strand path against g into an OrientedTrail.
func Trail(g *core.Graph, path []core.Strand) (*core.OrientedTrail, error) {
	trail := &core.OrientedTrail{}
	for _, s := range path {
		n := g.Node(s.ID)
		if n == nil {
			return nil, fmt.Errorf("%w: %d", core.ErrNodeNotFound, s.ID)
		}
		trail.Add(n, s.Side)
	}
	return trail, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[core.Strand]int64
	prev    map[core.Strand]core.Strand
	visited map[core.Strand]bool
	pq      strandPQ
}

func oriented(n *core.Node, s core.Strand) core.OrientedNode {
	return core.OrientedNode{Node: n, FirstSide: s.Side}
}

// scan rejects weight functions that price any step below zero.
func (r *runner) scan() error {
	for _, n := range r.g.Nodes() {
		for _, side := range []core.Side{core.StartIsFirst, core.EndIsFirst} {
			from := core.OrientedNode{Node: n, FirstSide: side}
			for _, to := range r.g.OrientedNeighbours(from) {
				if w := r.options.Weight(from, to); w < 0 {
					return fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, from.Strand(), to.Strand(), w)
				}
			}
		}
	}
	return nil
}

// init sets every distance to +∞ except the source and seeds the heap.
func (r *runner) init() {
	nodes := r.g.Nodes()
	r.dist = make(map[core.Strand]int64, 2*len(nodes))
	r.prev = make(map[core.Strand]core.Strand, 2*len(nodes))
	r.visited = make(map[core.Strand]bool, 2*len(nodes))
	for _, n := range nodes {
		for _, side := range []core.Side{core.StartIsFirst, core.EndIsFirst} {
			s := core.Strand{ID: n.ID, Side: side}
			r.dist[s] = math.MaxInt64
			r.prev[s] = core.Strand{}
		}
	}

	r.dist[r.options.Source] = 0
	r.pq = make(strandPQ, 0, len(nodes))
	heap.Init(&r.pq)
	heap.Push(&r.pq, &strandItem{strand: r.options.Source, dist: 0})
}

// process pops the closest strand until the heap is empty or the closest
// distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*strandItem)
		u := item.strand
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve every strand one oriented step after u.
func (r *runner) relax(u core.Strand) {
	from := oriented(r.g.Node(u.ID), u)
	for _, to := range r.g.OrientedNeighbours(from) {
		w := r.options.Weight(from, to)
		if w >= r.options.InfEdgeThreshold || w > math.MaxInt64-r.dist[u] {
			continue
		}
		v := to.Strand()
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &strandItem{strand: v, dist: newDist})
	}
}

// strandItem is a heap entry: a strand and its tentative distance.
type strandItem struct {
	strand core.Strand
	dist   int64
}

// strandPQ is a min-heap of *strandItem ordered by distance, then strand.
type strandPQ []*strandItem

func (pq strandPQ) Len() int { return len(pq) }

func (pq strandPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].strand.Less(pq[j].strand)
}

func (pq strandPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *strandPQ) Push(x interface{}) { *pq = append(*pq, x.(*strandItem)) }

func (pq *strandPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
