// TopologicalSort orders every strand so that each oriented step u→v puts
// u before v. A cycle makes this impossible and yields ErrCycleDetected.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/velvet/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[core.Strand]int
	order []core.Strand // post-order
}

// TopologicalSort computes a topological ordering of all strands of g.
// Twin strands are independent vertices: a linear chain 1→2 orders as
// 2- 1- 1+ 2+ or any other order respecting both 1+→2+ and 2-→1-.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]core.Strand, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	all := strands(g)
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[core.Strand]int, len(all)),
		order: make([]core.Strand, 0, len(all)),
	}
	for _, s := range all {
		if sorter.state[s] == White {
			if err := sorter.visit(s); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from s, marking states and detecting cycles.
func (t *topoSorter) visit(s core.Strand) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[s] {
	case Gray:
		return fmt.Errorf("%w at %s", ErrCycleDetected, s)
	case Black:
		return nil
	}
	t.state[s] = Gray

	for _, nb := range next(t.graph, s) {
		if err := t.visit(nb); err != nil {
			return err
		}
	}

	t.state[s] = Black
	t.order = append(t.order, s)

	return nil
}
