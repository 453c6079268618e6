// Package velvet reads the de Bruijn graphs the velvet assembler leaves
// behind and lets you explore them: nodes on both strands, arcs between
// node sides, read placements, and the sequences any oriented walk spells.
//
// What is in the box?
//
//	• Parsing: the LastGraph state machine with read tracking filters,
//	  grep-style prefilters, gzip/zstd input and concurrent bulk parsing
//	• Model: nodes, arcs, strands and oriented trails with sequence splicing
//	• Traversals: BFS and DFS over strands, cycle detection, topological order
//	• Shortest paths: Dijkstra weighted by appended bases
//	• Reads: the Sequences file and CnyUnifiedSeq.names lookups
//	• Running velvet: velveth/velvetg in a scratch directory, graph re-parsed
//
// Subpackages:
//
//	core/           Graph, Node, Arc, Strand, OrientedNode, OrientedTrail
//	seqcodec/       reverse complement and base alphabet checks
//	parser/         LastGraph parsing, prefilters, Open/ParseFile/ParseFiles
//	bfs/            breadth-first walks between strands, paths and trails
//	dfs/            depth-first search, strand cycles, topological sort
//	dijkstra/       cheapest walks by node length or a custom step weight
//	sequences/      Sequences file parsing and read name extraction
//	runner/         velveth/velvetg execution with pluggable executors
//	cmd/velvetgraph command line front end for all of the above
//
// Quick ASCII example, the bubble used throughout the tests:
//
//	        ┌── 2+ ──┐
//	  1+ ───┤        ├─── 4-
//	        └── 3+ ──┘
//
//	go install github.com/katalvlaran/velvet/cmd/velvetgraph@latest
package velvet
