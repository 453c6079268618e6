// Package bfs provides breadth-first search over the bidirected velvet graph
// held by a core.Graph, returning arc-count distances, parent links, and
// visit order.
//
// What
//
//   - A search state is a Key: a node ID plus the strand it is walked on
//     (core.StartIsFirst for the forward strand, core.EndIsFirst for the twin).
//   - Leaving a strand goes through its far side, so a forward walk of node 5
//     continues with the nodes off its end and a twin walk with the nodes
//     into its start, each on the strand that arc dictates.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from Key → distance (arcs) from the start
//   - Parent: map from Key → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a state is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual steps via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - WithBothStrands seeds both strands of the start node.
//
// Why
//
//   - Collect the neighbourhood of a node of interest, e.g. to extract an
//     induced subgraph (core.InducedSubgraph) around a read's nodes.
//   - Find the shortest oriented walk between two nodes and spell it with
//     BFSResult.Trail and core.OrientedTrail.Sequence.
//
// Determinism
//
//	core.Graph.OrientedNeighbours follows arc insertion order, and BFS
//	enqueues neighbours in that order, so the visit sequence is reproducible
//	for a given input file.
//
// Complexity (V = |Nodes|, E = |Arcs|)
//
//   - Time:   O(V + E)   (each strand and arc seen at most once per side)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, 5, core.StartIsFirst,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(k bfs.Key, depth int) error { return nil }),
//	)
//	trail, err := res.Trail(g, bfs.Key{ID: 9, Side: core.EndIsFirst})
//	seq, err := trail.Sequence()
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartNodeNotFound    if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo/Trail for unreached targets.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
