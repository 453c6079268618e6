// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbour
// filtering, whole graph traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/velvet/core"
)

// Visitation states of a strand.
const (
	White = iota // White: the strand has not been visited yet.
	Gray         // Gray: the strand is on the recursion stack.
	Black        // Black: the strand and all its descendants are explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or
	// TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start node does not exist.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrCycleDetected indicates that TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a strand is discovered
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(s core.Strand) error

	// OnExit, if non-nil, is invoked after all descendants of a strand
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(s core.Strand) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start strand. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbour before
	// recursing. Return false to skip it.
	FilterNeighbor func(s core.Strand) bool

	// FullTraversal runs DFS from every unvisited strand in ascending
	// order, covering disconnected components.
	FullTraversal bool

	// SkippedNeighbors counts neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbour filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(s core.Strand) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(s core.Strand) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start strand is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbours for which fn returns false; they are
// counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(s core.Strand) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal makes DFS restart from each unvisited strand.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records strands in the sequence they finished (post-order).
	Order []core.Strand

	// Depth maps each strand to its distance (#arcs) from its tree root.
	Depth map[core.Strand]int

	// Parent maps each strand to the strand it was first discovered from.
	// Tree roots have no entry.
	Parent map[core.Strand]core.Strand

	// Visited flags which strands were reached.
	Visited map[core.Strand]bool

	// SkippedNeighbors reports how many neighbours FilterNeighbor rejected.
	SkippedNeighbors int
}

// strands lists both strands of every node in ascending order.
func strands(g *core.Graph) []core.Strand {
	nodes := g.Nodes()
	out := make([]core.Strand, 0, 2*len(nodes))
	for _, n := range nodes {
		out = append(out,
			core.Strand{ID: n.ID, Side: core.StartIsFirst},
			core.Strand{ID: n.ID, Side: core.EndIsFirst})
	}
	return out
}

// next returns the strands one oriented step after s.
func next(g *core.Graph, s core.Strand) []core.Strand {
	n := g.Node(s.ID)
	if n == nil {
		return nil
	}
	nbs := g.OrientedNeighbours(core.OrientedNode{Node: n, FirstSide: s.Side})
	out := make([]core.Strand, len(nbs))
	for i, nb := range nbs {
		out[i] = nb.Strand()
	}
	return out
}
