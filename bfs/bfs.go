// Package bfs provides breadth-first search over the oriented nodes of a
// core.Graph, returning arc-count distances, parent links, and visit order.
//
// A search state is a node together with the strand it is walked on; the
// next states are those reachable by leaving that strand through its far
// side (see core.Graph.OrientedNeighbours).
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/velvet/core"
)

// queueItem pairs an oriented node with its BFS depth.
type queueItem struct {
	node  core.OrientedNode
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[Key]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from node startID walked on
// startSide, applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, startID int, startSide core.Side, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start := g.Node(startID)
	if start == nil {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, startID)
	}

	// Every node can be reached on each of its two strands.
	n := 2 * g.NodeLen()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[Key]bool, n),
		res: &BFSResult{
			Order:  make([]Key, 0, n),
			Depth:  make(map[Key]int, n),
			Parent: make(map[Key]Key, n),
		},
	}

	w.enqueue(core.OrientedNode{Node: start, FirstSide: startSide}, 0, nil)
	if o.BothStrands {
		w.enqueue(core.OrientedNode{Node: start, FirstSide: startSide.Reverse()}, 0, nil)
	}

	return w.res, w.loop()
}

// enqueue marks the node visited at depth d, calls OnEnqueue, records its
// parent, and adds it to the queue.
func (w *walker) enqueue(o core.OrientedNode, d int, parent *Key) {
	k := KeyOf(o)
	w.visited[k] = true
	w.res.Depth[k] = d
	if parent != nil {
		w.res.Parent[k] = *parent
	}
	w.opts.OnEnqueue(k, d)
	w.queue = append(w.queue, queueItem{node: o, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(KeyOf(item.node), item.depth)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	k := KeyOf(item.node)
	w.res.Order = append(w.res.Order, k)
	if err := w.opts.OnVisit(k, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", k, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth to every oriented
// neighbour and enqueues each unseen one. Neighbours follow arc touching
// order, so the visit sequence is reproducible.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	cur := KeyOf(item.node)
	for _, nb := range w.graph.OrientedNeighbours(item.node) {
		k := KeyOf(nb)
		if w.visited[k] || !w.opts.FilterNeighbor(cur, k) {
			continue
		}
		w.enqueue(nb, nextDepth, &cur)
	}
}
