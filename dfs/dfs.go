package dfs

import (
	"fmt"

	"github.com/katalvlaran/velvet/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on g from node startID walked on side.
// With WithFullTraversal it covers every strand and the start is ignored.
// Returns DFSResult or an error if aborted by context or hook.
func DFS(g *core.Graph, startID int, side core.Side, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify the start node
	if !dopts.FullTraversal && !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, startID)
	}

	// 4. Initialize result with capacity hint
	n := 2 * g.NodeLen()
	res := &DFSResult{
		Order:   make([]core.Strand, 0, n),
		Depth:   make(map[core.Strand]int, n),
		Parent:  make(map[core.Strand]core.Strand, n),
		Visited: make(map[core.Strand]bool, n),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, s := range strands(g) {
			if !res.Visited[s] {
				if err := walker.traverse(s, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(core.Strand{ID: startID, Side: side}, 0); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits strand s at the given depth, recursing to its neighbours.
func (w *dfsWalker) traverse(s core.Strand, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[s] = true
	w.res.Depth[s] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(s); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %s: %w", s, err)
		}
	}

	// 5. Explore each neighbour
	for _, nb := range next(w.graph, s) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nb] {
			w.res.Parent[nb] = s
			if err := w.traverse(nb, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(s); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %s: %w", s, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, s)

	return nil
}
