// Package dfs implements depth-first search, cycle detection and
// topological sort over the strands of a core.Graph.
//
// What:
//
//   - A strand (core.Strand) is a node walked start-first ("5+") or
//     end-first ("5-"). Strands are joined by the oriented neighbour relation
//     of core.Graph.OrientedNeighbours, so the bidirected velvet graph is
//     explored as an ordinary directed graph with twice as many vertices.
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbour filtering
//   - Whole graph traversal over every strand
//   - DetectCycles: enumerates every elementary strand cycle with Johnson's
//     algorithm. Every cycle of a velvet graph has a twin walking the reverse
//     strands backwards; the pair is reported once.
//   - TopologicalSort: orders all strands so that every oriented step goes
//     forward, or returns ErrCycleDetected.
//
// Why:
//   - Loops and tangles in an assembly graph show up as strand cycles
//   - A cycle-free graph can be laid out left to right
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O((V+E)*(C+1) + C*L), Memory O(V+E)
//     (C=#cycles, L=avg cycle length; C may be exponential in V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil
//   - ErrStartNodeNotFound   start node ID not in graph
//   - ErrCycleDetected       cycle discovered by TopologicalSort
//   - context.Canceled       traversal cancelled via context
//   - hook errors            propagated from OnVisit or OnExit
package dfs
