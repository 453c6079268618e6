// SPDX-License-Identifier: MIT

// Package dijkstra finds the cheapest oriented walks from one strand of a
// velvet graph to every strand it reaches.
//
// Overview:
//
//   - A step from strand u to strand v costs Weight(u, v). The default
//     weight is the length of v's node, so a distance is the number of
//     bases the walk appends to the source node's sequence.
//   - Strands are processed in order of increasing distance using a
//     min-heap with lazy decrease-key.
//   - Options add predecessor tracking, a distance cap and an impassable
//     step threshold.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = 2·#nodes strands, E = #oriented steps.
//   - Space: O(V + E).
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source(core.Strand{ID: 1, Side: core.StartIsFirst}),
//	    dijkstra.WithReturnPath(),
//	)
//	path, err := dijkstra.PathTo(prev, src, dst)
package dijkstra
