// Package bfs provides tunable options and error definitions
// for breadth-first search over the oriented nodes of a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/velvet/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start node is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo and Trail for unreached targets.
	ErrNoPath = errors.New("bfs: no path")
)

// Key identifies one strand of one node; see core.Strand.
type Key = core.Strand

// KeyOf returns the Key of an oriented node.
func KeyOf(o core.OrientedNode) Key { return o.Strand() }

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when an oriented node is enqueued, before visiting.
	OnEnqueue func(k Key, depth int)

	// OnDequeue is called immediately before visiting.
	OnDequeue func(k Key, depth int)

	// OnVisit is called when visiting. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(k Key, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip a step by returning false.
	FilterNeighbor func(curr, next Key) bool

	// BothStrands also seeds the twin of the start node, exploring what
	// lies on either side of it.
	BothStrands bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all steps allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - a single start strand.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(Key, int) {},
		OnDequeue:      func(Key, int) {},
		OnVisit:        func(Key, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ Key) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(k Key, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(k Key, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(k Key, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips steps when fn returns false.
func WithFilterNeighbor(fn func(curr, next Key) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithBothStrands explores from the start node's twin as well.
func WithBothStrands() Option {
	return func(o *BFSOptions) { o.BothStrands = true }
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: oriented nodes visited, in visit sequence.
//   - Depth: distance (in arcs) from the start.
//   - Parent: predecessor in the BFS tree; roots have none.
type BFSResult struct {
	Order  []Key
	Depth  map[Key]int
	Parent map[Key]Key
}

// PathTo reconstructs the path from a root to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest Key) ([]Key, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %s", ErrNoPath, dest)
	}
	// build reversed path
	path := []Key{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Trail turns the path to dest into an OrientedTrail over the nodes of g,
// ready for OrientedTrail.Sequence.
func (r *BFSResult) Trail(g *core.Graph, dest Key) (*core.OrientedTrail, error) {
	path, err := r.PathTo(dest)
	if err != nil {
		return nil, err
	}
	trail := &core.OrientedTrail{}
	for _, k := range path {
		n := g.Node(k.ID)
		if n == nil {
			return nil, fmt.Errorf("%w: %d", core.ErrNodeNotFound, k.ID)
		}
		trail.Add(n, k.Side)
	}

	return trail, nil
}
